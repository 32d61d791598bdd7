// Package warrantysvc - Service hợp đồng bảo hiểm (warranties).
// File này chứa phần tính lịch trả góp: thuần tính toán, không chạm DB.
package warrantysvc

import (
	"time"

	models "github.com/silmemobile104/smilecare/internal/api/warranty/models"
)

// BuildSchedule tính lịch trả góp 3 kỳ từ giá gói và ngày bắt đầu.
// Kỳ 1 gánh toàn bộ phần dư của phép chia: amount[1] = floor(price/3) + price%3.
// dueDate[i] = start + (i-1) tháng theo lịch (không phải 30 ngày cố định),
// ngày bị tràn sẽ clamp về ngày cuối của tháng đích (31/01 + 1 tháng → 29/02
// năm nhuận, 28/02 năm thường). graceDate = dueDate + 5 ngày.
// price <= 0 trả về nil: không có lịch trả góp, caller phải validate trước.
func BuildSchedule(price int64, start time.Time) []models.PaymentSchedule {
	if price <= 0 {
		return nil
	}

	perInstallment := price / models.InstallmentCount
	remainder := price % models.InstallmentCount

	schedule := make([]models.PaymentSchedule, 0, models.InstallmentCount)
	for i := 1; i <= models.InstallmentCount; i++ {
		amount := perInstallment
		if i == 1 {
			amount += remainder
		}

		dueDate := addMonthsClamp(start, i-1)
		schedule = append(schedule, models.PaymentSchedule{
			InstallmentNo: i,
			Amount:        amount,
			DueDate:       dueDate.UnixMilli(),
			GraceDate:     dueDate.AddDate(0, 0, models.GraceDays).UnixMilli(),
			Status:        models.PaymentStatusPending,
		})
	}
	return schedule
}

// addMonthsClamp cộng tháng theo lịch với clamp về ngày cuối tháng đích.
// Không dùng time.AddDate trực tiếp vì nó tràn sang tháng sau
// (31/01 + 1 tháng → 02/03 hoặc 03/03 thay vì cuối tháng 2).
func addMonthsClamp(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	// Chuẩn hóa năm/tháng đích
	targetMonth := int(month) + months
	targetYear := year + (targetMonth-1)/12
	targetMonth = (targetMonth-1)%12 + 1

	// Ngày cuối của tháng đích: ngày 0 của tháng kế tiếp
	lastDay := time.Date(targetYear, time.Month(targetMonth)+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(targetYear, time.Month(targetMonth), day, hour, min, sec, t.Nanosecond(), t.Location())
}

// MergeSchedule hợp nhất lịch cũ vào lịch mới khi sửa hợp đồng.
// Khớp theo installmentNo: kỳ nào đã Paid giữ nguyên toàn bộ (status, paidDate,
// cash/transfer/ref và cả amount đã thu), kỳ chưa trả lấy amount/dates mới.
func MergeSchedule(oldSchedule, newSchedule []models.PaymentSchedule) []models.PaymentSchedule {
	paid := make(map[int]models.PaymentSchedule, len(oldSchedule))
	for _, entry := range oldSchedule {
		if entry.Status == models.PaymentStatusPaid {
			paid[entry.InstallmentNo] = entry
		}
	}

	merged := make([]models.PaymentSchedule, 0, len(newSchedule))
	for _, entry := range newSchedule {
		if paidEntry, ok := paid[entry.InstallmentNo]; ok {
			merged = append(merged, paidEntry)
			continue
		}
		merged = append(merged, entry)
	}
	return merged
}
