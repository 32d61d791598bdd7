package warrantysvc

import (
	"testing"
	"time"

	models "github.com/silmemobile104/smilecare/internal/api/warranty/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildScheduleSumAndRemainder(t *testing.T) {
	start := date(2024, time.January, 15)

	cases := []struct {
		price int64
		want  [3]int64
	}{
		{799, [3]int64{267, 266, 266}},   // floor(799/3)=266, dư 1 dồn vào kỳ 1
		{1499, [3]int64{501, 499, 499}},  // dư 2
		{1699, [3]int64{567, 566, 566}},  // dư 1
		{2399, [3]int64{801, 799, 799}},  // dư 2
		{599, [3]int64{201, 199, 199}},   // dư 2
		{999, [3]int64{333, 333, 333}},   // chia hết
		{1299, [3]int64{433, 433, 433}},  // chia hết
	}

	for _, tc := range cases {
		schedule := BuildSchedule(tc.price, start)
		if len(schedule) != models.InstallmentCount {
			t.Fatalf("price %d: muốn 3 kỳ, có %d", tc.price, len(schedule))
		}
		var sum int64
		for i, entry := range schedule {
			if entry.InstallmentNo != i+1 {
				t.Errorf("price %d: kỳ thứ %d có installmentNo=%d", tc.price, i+1, entry.InstallmentNo)
			}
			if entry.Amount != tc.want[i] {
				t.Errorf("price %d kỳ %d: amount=%d, muốn %d", tc.price, i+1, entry.Amount, tc.want[i])
			}
			if entry.Status != models.PaymentStatusPending {
				t.Errorf("price %d kỳ %d: status=%q, muốn Pending", tc.price, i+1, entry.Status)
			}
			sum += entry.Amount
		}
		if sum != tc.price {
			t.Errorf("price %d: tổng các kỳ = %d", tc.price, sum)
		}
		// Kỳ 1 gánh phần dư nên không bao giờ nhỏ hơn các kỳ sau
		if schedule[0].Amount < schedule[1].Amount || schedule[0].Amount < schedule[2].Amount {
			t.Errorf("price %d: kỳ 1 (%d) nhỏ hơn kỳ sau", tc.price, schedule[0].Amount)
		}
	}
}

func TestBuildScheduleCalendarMonths(t *testing.T) {
	start := date(2024, time.January, 15)
	schedule := BuildSchedule(799, start)

	wantDue := []time.Time{
		date(2024, time.January, 15),
		date(2024, time.February, 15),
		date(2024, time.March, 15),
	}
	for i, entry := range schedule {
		if got := time.UnixMilli(entry.DueDate).UTC(); !got.Equal(wantDue[i]) {
			t.Errorf("kỳ %d: dueDate=%v, muốn %v", i+1, got, wantDue[i])
		}
		wantGrace := wantDue[i].AddDate(0, 0, models.GraceDays)
		if got := time.UnixMilli(entry.GraceDate).UTC(); !got.Equal(wantGrace) {
			t.Errorf("kỳ %d: graceDate=%v, muốn %v", i+1, got, wantGrace)
		}
	}
}

// 31/01 + 1 tháng phải clamp về ngày cuối tháng 2, không tràn sang tháng 3.
func TestBuildScheduleDayClamping(t *testing.T) {
	// Năm nhuận: 31/01/2024 → 29/02/2024 → 31/03/2024
	schedule := BuildSchedule(900, date(2024, time.January, 31))
	wantDue := []time.Time{
		date(2024, time.January, 31),
		date(2024, time.February, 29),
		date(2024, time.March, 31),
	}
	for i, entry := range schedule {
		if got := time.UnixMilli(entry.DueDate).UTC(); !got.Equal(wantDue[i]) {
			t.Errorf("năm nhuận kỳ %d: dueDate=%v, muốn %v", i+1, got, wantDue[i])
		}
	}

	// Năm thường: 31/01/2023 → 28/02/2023
	schedule = BuildSchedule(900, date(2023, time.January, 31))
	if got := time.UnixMilli(schedule[1].DueDate).UTC(); !got.Equal(date(2023, time.February, 28)) {
		t.Errorf("năm thường kỳ 2: dueDate=%v, muốn 28/02/2023", got)
	}

	// 30/11 + 2 tháng → 30/01, không clamp vì tháng 1 đủ ngày
	schedule = BuildSchedule(900, date(2024, time.November, 30))
	if got := time.UnixMilli(schedule[2].DueDate).UTC(); !got.Equal(date(2025, time.January, 30)) {
		t.Errorf("kỳ 3: dueDate=%v, muốn 30/01/2025", got)
	}
}

func TestBuildScheduleInvalidPrice(t *testing.T) {
	if got := BuildSchedule(0, date(2024, time.January, 1)); got != nil {
		t.Errorf("price 0: muốn nil, có %v", got)
	}
	if got := BuildSchedule(-100, date(2024, time.January, 1)); got != nil {
		t.Errorf("price âm: muốn nil, có %v", got)
	}
}

func TestAddMonthsClampYearRollover(t *testing.T) {
	// Cộng 12 tháng dùng cho hạn bảo hiểm 1 năm
	got := addMonthsClamp(date(2024, time.February, 29), 12)
	if !got.Equal(date(2025, time.February, 28)) {
		t.Errorf("29/02/2024 + 12 tháng = %v, muốn 28/02/2025", got)
	}

	got = addMonthsClamp(date(2024, time.December, 31), 2)
	if !got.Equal(date(2025, time.February, 28)) {
		t.Errorf("31/12/2024 + 2 tháng = %v, muốn 28/02/2025", got)
	}
}

// Sửa hợp đồng: kỳ đã Paid giữ nguyên toàn bộ, kỳ chưa trả lấy lịch mới.
func TestMergeSchedulePreservesPaid(t *testing.T) {
	oldSchedule := BuildSchedule(799, date(2024, time.January, 15))
	oldSchedule[0].Status = models.PaymentStatusPaid
	oldSchedule[0].PaidDate = date(2024, time.January, 16).UnixMilli()
	oldSchedule[0].PaidCash = 267
	oldSchedule[0].RefId = "RCPT-001"

	newSchedule := BuildSchedule(1499, date(2024, time.February, 1))
	merged := MergeSchedule(oldSchedule, newSchedule)

	if len(merged) != 3 {
		t.Fatalf("muốn 3 kỳ sau merge, có %d", len(merged))
	}

	// Kỳ 1 đã trả: giữ nguyên amount/paidDate/refId cũ
	if merged[0].Amount != 267 || merged[0].Status != models.PaymentStatusPaid {
		t.Errorf("kỳ 1 sau merge: %+v, muốn giữ nguyên kỳ đã trả", merged[0])
	}
	if merged[0].RefId != "RCPT-001" || merged[0].PaidCash != 267 {
		t.Errorf("kỳ 1 mất thông tin thanh toán: %+v", merged[0])
	}

	// Kỳ 2, 3 chưa trả: lấy amount và dueDate mới
	if merged[1].Amount != newSchedule[1].Amount || merged[1].DueDate != newSchedule[1].DueDate {
		t.Errorf("kỳ 2 sau merge: %+v, muốn lịch mới %+v", merged[1], newSchedule[1])
	}
	if merged[2].Status != models.PaymentStatusPending {
		t.Errorf("kỳ 3 sau merge: status=%q, muốn Pending", merged[2].Status)
	}
}

func TestMergeScheduleNothingPaid(t *testing.T) {
	oldSchedule := BuildSchedule(799, date(2024, time.January, 15))
	newSchedule := BuildSchedule(599, date(2024, time.March, 1))
	merged := MergeSchedule(oldSchedule, newSchedule)

	for i := range merged {
		if merged[i] != newSchedule[i] {
			t.Errorf("kỳ %d: %+v, muốn lịch mới hoàn toàn %+v", i+1, merged[i], newSchedule[i])
		}
	}
}
