// Package warrantysvc - Phần thanh toán của hợp đồng.
// Mọi mutation đều là conditional atomic update trên Mongo (filter trên trạng
// thái trước đó đóng vai trò CAS), không read-modify-save cả document: hai
// request settle cùng một kỳ chỉ có một request khớp filter, request thua
// nhận AlreadyPaid.
package warrantysvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	dto "github.com/silmemobile104/smilecare/internal/api/warranty/dto"
	models "github.com/silmemobile104/smilecare/internal/api/warranty/models"
	"github.com/silmemobile104/smilecare/internal/common"
)

// AmountDue tính số tiền còn phải trả và các kỳ có thể thanh toán.
// Thuần tính toán trên document đã load, không chạm DB.
func AmountDue(w *models.Warranty) dto.AmountDueResponse {
	if w.Payment.Method == models.PaymentMethodFull {
		due := int64(0)
		if w.Payment.Status != models.PaymentStatusPaid {
			due = w.Package.Price
		}
		return dto.AmountDueResponse{AmountDue: due, PayableInstallments: []int{}}
	}

	pending := pendingInstallments(w)
	var due int64
	nos := make([]int, 0, len(pending))
	for _, entry := range pending {
		due += entry.Amount
		nos = append(nos, entry.InstallmentNo)
	}
	return dto.AmountDueResponse{
		AmountDue:           due,
		PayableInstallments: nos,
		// Trả gộp chỉ chào khi còn hơn 1 kỳ chưa trả
		PayAllOffered: len(pending) > 1,
	}
}

// pendingInstallments trả về các kỳ còn Pending theo thứ tự schedule.
func pendingInstallments(w *models.Warranty) []models.PaymentSchedule {
	var pending []models.PaymentSchedule
	for _, entry := range w.Payment.Schedule {
		if entry.Status != models.PaymentStatusPaid {
			pending = append(pending, entry)
		}
	}
	return pending
}

// GetAmountDue load hợp đồng rồi tính số tiền còn phải trả.
func (s *WarrantyService) GetAmountDue(ctx context.Context, objID primitive.ObjectID) (*dto.AmountDueResponse, error) {
	w, err := s.FindOneById(ctx, objID)
	if err != nil {
		return nil, err
	}
	result := AmountDue(&w)
	return &result, nil
}

// ApplyPayment áp dụng một thanh toán lên hợp đồng theo một trong ba mode
// loại trừ nhau: trả một kỳ (installmentNo), trả hết các kỳ còn lại
// (payAllRemaining), hoặc full payment. Cổng phê duyệt chạy trước: hợp đồng
// pending/rejected bị từ chối, không có gì được ghi.
// Tiền thừa (change) chỉ tính trả về cho biên nhận, ledger lưu đúng số
// cash/transfer khách đưa.
func (s *WarrantyService) ApplyPayment(ctx context.Context, objID primitive.ObjectID, instr *dto.PaymentInstruction) (*dto.SettleResponse, error) {
	if instr.InstallmentNo > 0 && instr.PayAllRemaining {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Chỉ được chọn một mode: installmentNo hoặc payAllRemaining",
			common.StatusBadRequest,
			nil,
		)
	}

	w, err := s.FindOneById(ctx, objID)
	if err != nil {
		return nil, err
	}
	if err := checkApprovalGate(&w); err != nil {
		return nil, err
	}

	tendered := instr.PaidCash + instr.PaidTransfer
	now := time.Now().UnixMilli()

	var due int64
	switch {
	case instr.InstallmentNo > 0:
		due, err = s.settleInstallment(ctx, &w, instr, now)
	case instr.PayAllRemaining:
		due, err = s.settleAllRemaining(ctx, &w, instr, now)
	default:
		due, err = s.settleFullPayment(ctx, &w, instr, now)
	}
	if err != nil {
		return nil, err
	}

	updated, err := s.FindOneById(ctx, objID)
	if err != nil {
		return nil, err
	}
	return &dto.SettleResponse{
		Warranty: &updated,
		Change:   tendered - due,
	}, nil
}

// checkApprovalGate chặn thanh toán trên hợp đồng chưa được duyệt.
func checkApprovalGate(w *models.Warranty) error {
	switch w.ApprovalStatus {
	case models.ApprovalStatusApproved:
		return nil
	case models.ApprovalStatusRejected:
		return common.ErrApprovalRejected
	default:
		return common.ErrApprovalPending
	}
}

// installmentDue tìm kỳ trả góp và trả về số tiền phải trả cho kỳ đó.
// Kỳ đã Paid trả về AlreadyPaid, settle lại không phải no-op im lặng.
func installmentDue(w *models.Warranty, installmentNo int) (int64, error) {
	if w.Payment.Method != models.PaymentMethodInstallment {
		return 0, common.NewError(
			common.ErrCodeValidationInput,
			"Hợp đồng không phải phương thức trả góp",
			common.StatusBadRequest,
			nil,
		)
	}
	for _, entry := range w.Payment.Schedule {
		if entry.InstallmentNo != installmentNo {
			continue
		}
		if entry.Status == models.PaymentStatusPaid {
			return 0, common.ErrAlreadyPaid
		}
		return entry.Amount, nil
	}
	return 0, common.NewError(
		common.ErrCodeValidationInput,
		fmt.Sprintf("Không có kỳ trả góp số %d", installmentNo),
		common.StatusBadRequest,
		nil,
	)
}

// fullPaymentDue trả về số tiền phải trả của hợp đồng full payment.
func fullPaymentDue(w *models.Warranty) (int64, error) {
	if w.Payment.Method != models.PaymentMethodFull {
		return 0, common.NewError(
			common.ErrCodeValidationInput,
			"Hợp đồng trả góp phải truyền installmentNo hoặc payAllRemaining",
			common.StatusBadRequest,
			nil,
		)
	}
	if w.Payment.Status == models.PaymentStatusPaid {
		return 0, common.ErrAlreadyPaid
	}
	return w.Package.Price, nil
}

// settleInstallment trả một kỳ cụ thể. Filter $elemMatch trên trạng thái
// Pending của đúng kỳ đó làm CAS; sau khi kỳ cuối được trả, một update có
// điều kiện thứ hai đẩy aggregate payment.status sang Paid.
func (s *WarrantyService) settleInstallment(ctx context.Context, w *models.Warranty, instr *dto.PaymentInstruction, now int64) (int64, error) {
	due, err := installmentDue(w, instr.InstallmentNo)
	if err != nil {
		return 0, err
	}
	if instr.PaidCash+instr.PaidTransfer < due {
		return 0, common.ErrInsufficientTender
	}

	filter := bson.M{
		"_id":            w.ID,
		"approvalStatus": models.ApprovalStatusApproved,
		"payment.schedule": bson.M{"$elemMatch": bson.M{
			"installmentNo": instr.InstallmentNo,
			"status":        models.PaymentStatusPending,
		}},
	}
	update := bson.M{"$set": bson.M{
		"payment.schedule.$.status":       models.PaymentStatusPaid,
		"payment.schedule.$.paidDate":     now,
		"payment.schedule.$.paidCash":     instr.PaidCash,
		"payment.schedule.$.paidTransfer": instr.PaidTransfer,
		"payment.schedule.$.refId":        instr.RefId,
		"updatedAt":                       now,
	}}

	result, err := s.Collection().UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	if result.ModifiedCount == 0 {
		// Thua race với một request settle song song trên cùng kỳ
		return 0, common.ErrAlreadyPaid
	}

	// Nếu đây là kỳ cuối cùng, chốt aggregate. Update miss khi vẫn còn kỳ
	// Pending, trường hợp đó là bình thường.
	completeFilter := bson.M{
		"_id":            w.ID,
		"payment.status": models.PaymentStatusPending,
		"payment.schedule": bson.M{"$not": bson.M{"$elemMatch": bson.M{
			"status": models.PaymentStatusPending,
		}}},
	}
	completeUpdate := bson.M{"$set": bson.M{
		"payment.status":   models.PaymentStatusPaid,
		"payment.paidDate": now,
		"updatedAt":        now,
	}}
	if _, err := s.Collection().UpdateOne(ctx, completeFilter, completeUpdate); err != nil {
		return 0, common.ConvertMongoError(err)
	}

	return due, nil
}

// settleAllRemaining trả gộp mọi kỳ còn Pending bằng một update duy nhất:
// arrayFilters đánh dấu các kỳ Pending, $inc cộng dồn cash/transfer vào
// tổng aggregate (không thay thế số đã thu trước đó).
func (s *WarrantyService) settleAllRemaining(ctx context.Context, w *models.Warranty, instr *dto.PaymentInstruction, now int64) (int64, error) {
	if w.Payment.Method != models.PaymentMethodInstallment {
		return 0, common.NewError(
			common.ErrCodeValidationInput,
			"Hợp đồng không phải phương thức trả góp",
			common.StatusBadRequest,
			nil,
		)
	}

	pending := pendingInstallments(w)
	if len(pending) == 0 {
		return 0, common.ErrNothingDue
	}
	var due int64
	for _, entry := range pending {
		due += entry.Amount
	}
	if instr.PaidCash+instr.PaidTransfer < due {
		return 0, common.ErrInsufficientTender
	}

	filter := bson.M{
		"_id":                     w.ID,
		"approvalStatus":          models.ApprovalStatusApproved,
		"payment.schedule.status": models.PaymentStatusPending,
	}
	update := bson.M{
		"$set": bson.M{
			"payment.schedule.$[elem].status":       models.PaymentStatusPaid,
			"payment.schedule.$[elem].paidDate":     now,
			"payment.schedule.$[elem].paidCash":     instr.PaidCash,
			"payment.schedule.$[elem].paidTransfer": instr.PaidTransfer,
			"payment.schedule.$[elem].refId":        instr.RefId,
			"payment.status":                        models.PaymentStatusPaid,
			"payment.paidDate":                      now,
			"updatedAt":                             now,
		},
		"$inc": bson.M{
			"payment.paidCash":     instr.PaidCash,
			"payment.paidTransfer": instr.PaidTransfer,
		},
	}
	opts := mongoopts.Update().SetArrayFilters(mongoopts.ArrayFilters{
		Filters: []interface{}{bson.M{"elem.status": models.PaymentStatusPending}},
	})

	result, err := s.Collection().UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	if result.ModifiedCount == 0 {
		return 0, common.ErrAlreadyPaid
	}

	return due, nil
}

// settleFullPayment chốt thanh toán một lần cho hợp đồng Full Payment.
func (s *WarrantyService) settleFullPayment(ctx context.Context, w *models.Warranty, instr *dto.PaymentInstruction, now int64) (int64, error) {
	due, err := fullPaymentDue(w)
	if err != nil {
		return 0, err
	}
	if instr.PaidCash+instr.PaidTransfer < due {
		return 0, common.ErrInsufficientTender
	}

	filter := bson.M{
		"_id":            w.ID,
		"approvalStatus": models.ApprovalStatusApproved,
		"payment.method": models.PaymentMethodFull,
		"payment.status": models.PaymentStatusPending,
	}
	update := bson.M{"$set": bson.M{
		"payment.status":       models.PaymentStatusPaid,
		"payment.paidDate":     now,
		"payment.paidCash":     instr.PaidCash,
		"payment.paidTransfer": instr.PaidTransfer,
		"payment.refId":        instr.RefId,
		"updatedAt":            now,
	}}

	result, err := s.Collection().UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	if result.ModifiedCount == 0 {
		return 0, common.ErrAlreadyPaid
	}

	return due, nil
}
