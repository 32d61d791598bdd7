package warrantysvc

import (
	"errors"
	"testing"
	"time"

	models "github.com/silmemobile104/smilecare/internal/api/warranty/models"
	"github.com/silmemobile104/smilecare/internal/common"
)

func installmentWarranty(price int64) *models.Warranty {
	return &models.Warranty{
		Package: models.WarrantyPackage{PlanID: models.PlanFullA, Price: price},
		Payment: models.WarrantyPayment{
			Method:   models.PaymentMethodInstallment,
			Status:   models.PaymentStatusPending,
			Schedule: BuildSchedule(price, date(2024, time.January, 15)),
		},
	}
}

func TestAmountDueInstallmentAllPending(t *testing.T) {
	w := installmentWarranty(799)
	due := AmountDue(w)

	if due.AmountDue != 799 {
		t.Errorf("amountDue=%d, muốn 799", due.AmountDue)
	}
	if len(due.PayableInstallments) != 3 {
		t.Errorf("payableInstallments=%v, muốn [1 2 3]", due.PayableInstallments)
	}
	if !due.PayAllOffered {
		t.Error("còn 3 kỳ chưa trả thì phải chào payAllRemaining")
	}
}

func TestAmountDueInstallmentPartiallyPaid(t *testing.T) {
	w := installmentWarranty(799)
	w.Payment.Schedule[0].Status = models.PaymentStatusPaid

	due := AmountDue(w)
	if due.AmountDue != 532 { // 266 + 266
		t.Errorf("amountDue=%d, muốn 532", due.AmountDue)
	}
	if len(due.PayableInstallments) != 2 || due.PayableInstallments[0] != 2 || due.PayableInstallments[1] != 3 {
		t.Errorf("payableInstallments=%v, muốn [2 3]", due.PayableInstallments)
	}
	if !due.PayAllOffered {
		t.Error("còn 2 kỳ thì vẫn chào payAllRemaining")
	}
}

func TestAmountDueLastInstallmentNoPayAll(t *testing.T) {
	w := installmentWarranty(799)
	w.Payment.Schedule[0].Status = models.PaymentStatusPaid
	w.Payment.Schedule[1].Status = models.PaymentStatusPaid

	due := AmountDue(w)
	if due.AmountDue != 266 {
		t.Errorf("amountDue=%d, muốn 266", due.AmountDue)
	}
	// Chỉ còn 1 kỳ: không chào trả gộp nữa
	if due.PayAllOffered {
		t.Error("còn 1 kỳ thì không chào payAllRemaining")
	}
}

func TestAmountDueAllPaid(t *testing.T) {
	w := installmentWarranty(799)
	for i := range w.Payment.Schedule {
		w.Payment.Schedule[i].Status = models.PaymentStatusPaid
	}

	due := AmountDue(w)
	if due.AmountDue != 0 {
		t.Errorf("amountDue=%d, muốn 0", due.AmountDue)
	}
	if len(due.PayableInstallments) != 0 {
		t.Errorf("payableInstallments=%v, muốn rỗng", due.PayableInstallments)
	}
}

func TestAmountDueFullPayment(t *testing.T) {
	w := &models.Warranty{
		Package: models.WarrantyPackage{Price: 2399},
		Payment: models.WarrantyPayment{
			Method: models.PaymentMethodFull,
			Status: models.PaymentStatusPending,
		},
	}

	due := AmountDue(w)
	if due.AmountDue != 2399 {
		t.Errorf("amountDue=%d, muốn 2399", due.AmountDue)
	}
	if len(due.PayableInstallments) != 0 || due.PayAllOffered {
		t.Errorf("full payment không có kỳ trả góp: %+v", due)
	}

	w.Payment.Status = models.PaymentStatusPaid
	due = AmountDue(w)
	if due.AmountDue != 0 {
		t.Errorf("đã trả đủ: amountDue=%d, muốn 0", due.AmountDue)
	}
}

func TestResolvePlanClosedSet(t *testing.T) {
	cases := map[models.PlanID]int64{
		models.PlanFullA:   799,
		models.PlanFullB:   1499,
		models.PlanFullC:   1699,
		models.PlanFullD:   2399,
		models.PlanScreenA: 599,
		models.PlanScreenB: 999,
		models.PlanScreenC: 1299,
	}
	for id, price := range cases {
		info, ok := models.ResolvePlan(id)
		if !ok {
			t.Errorf("plan %s phải có trong catalogue", id)
			continue
		}
		if info.Price != price {
			t.Errorf("plan %s: price=%d, muốn %d", id, info.Price, price)
		}
	}

	// Tập đóng: tên tự do kiểu cũ không tra được
	for _, bad := range []models.PlanID{"Plan A", "Plan a", "Plan 1", "FULL_E", ""} {
		if _, ok := models.ResolvePlan(bad); ok {
			t.Errorf("plan %q không được có trong catalogue", bad)
		}
	}

	// Loại gói đúng theo catalogue
	if info, _ := models.ResolvePlan(models.PlanFullA); info.Category != models.PlanCategoryFull {
		t.Errorf("FULL_A category=%q", info.Category)
	}
	if info, _ := models.ResolvePlan(models.PlanScreenC); info.Category != models.PlanCategoryScreen {
		t.Errorf("SCREEN_C category=%q", info.Category)
	}
}

func TestCheckApprovalGate(t *testing.T) {
	cases := []struct {
		status string
		want   error
	}{
		{models.ApprovalStatusApproved, nil},
		{models.ApprovalStatusRejected, common.ErrApprovalRejected},
		{models.ApprovalStatusPending, common.ErrApprovalPending},
		// Trạng thái trống hoặc lạ coi như chưa duyệt
		{"", common.ErrApprovalPending},
	}

	for _, tc := range cases {
		w := installmentWarranty(799)
		w.ApprovalStatus = tc.status

		err := checkApprovalGate(w)
		if tc.want == nil {
			if err != nil {
				t.Errorf("approvalStatus=%q: err=%v, muốn cho qua", tc.status, err)
			}
			continue
		}
		if !errors.Is(err, tc.want) {
			t.Errorf("approvalStatus=%q: err=%v, muốn %v", tc.status, err, tc.want)
		}
	}
}

func TestInstallmentDueAlreadyPaid(t *testing.T) {
	w := installmentWarranty(799)
	w.Payment.Schedule[1].Status = models.PaymentStatusPaid

	// Settle lại kỳ đã trả phải báo lỗi rõ ràng, không no-op im lặng
	if _, err := installmentDue(w, 2); !errors.Is(err, common.ErrAlreadyPaid) {
		t.Errorf("settle lại kỳ 2 đã trả: err=%v, muốn AlreadyPaid", err)
	}

	due, err := installmentDue(w, 3)
	if err != nil {
		t.Fatalf("kỳ 3 còn pending: %v", err)
	}
	if due != 266 {
		t.Errorf("kỳ 3 due=%d, muốn 266", due)
	}

	if _, err := installmentDue(w, 9); err == nil || errors.Is(err, common.ErrAlreadyPaid) {
		t.Errorf("kỳ không tồn tại: err=%v, muốn lỗi validation", err)
	}
}

func TestFullPaymentDueAlreadyPaid(t *testing.T) {
	w := &models.Warranty{
		Package: models.WarrantyPackage{Price: 1499},
		Payment: models.WarrantyPayment{
			Method: models.PaymentMethodFull,
			Status: models.PaymentStatusPending,
		},
	}

	due, err := fullPaymentDue(w)
	if err != nil {
		t.Fatalf("hợp đồng pending: %v", err)
	}
	if due != 1499 {
		t.Errorf("due=%d, muốn 1499", due)
	}

	w.Payment.Status = models.PaymentStatusPaid
	if _, err := fullPaymentDue(w); !errors.Is(err, common.ErrAlreadyPaid) {
		t.Errorf("settle lại hợp đồng đã trả: err=%v, muốn AlreadyPaid", err)
	}

	// Hợp đồng trả góp không đi qua nhánh full payment
	if _, err := fullPaymentDue(installmentWarranty(799)); err == nil {
		t.Error("hợp đồng trả góp phải bị từ chối ở nhánh full payment")
	}
}

func TestPendingInstallmentsOrder(t *testing.T) {
	w := installmentWarranty(999)
	w.Payment.Schedule[1].Status = models.PaymentStatusPaid

	pending := pendingInstallments(w)
	if len(pending) != 2 {
		t.Fatalf("muốn 2 kỳ pending, có %d", len(pending))
	}
	if pending[0].InstallmentNo != 1 || pending[1].InstallmentNo != 3 {
		t.Errorf("thứ tự kỳ pending: %d, %d; muốn 1, 3", pending[0].InstallmentNo, pending[1].InstallmentNo)
	}
}
