// Package models - Constants cho trạng thái hợp đồng bảo hiểm.
package models

// Phương thức thanh toán.
const (
	PaymentMethodFull        = "Full Payment"
	PaymentMethodInstallment = "Installment"
)

// Trạng thái thanh toán (aggregate và từng kỳ).
const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
)

// Trạng thái phê duyệt hợp đồng.
const (
	ApprovalStatusPending  = "pending"
	ApprovalStatusApproved = "approved"
	ApprovalStatusRejected = "rejected"
)

// Trạng thái bảo hành của thiết bị trên hợp đồng.
const (
	ClaimStatusNormal    = "normal"    // Không có yêu cầu bảo hành đang mở
	ClaimStatusPending   = "pending"   // Thiết bị đang gửi bảo hành
	ClaimStatusCompleted = "completed" // Đã trả máy
)

// Số kỳ trả góp cố định.
const InstallmentCount = 3

// Số ngày ân hạn sau ngày đến hạn của mỗi kỳ.
const GraceDays = 5

// Tỉ lệ trần bảo hiểm trên giá trị thiết bị (70%).
const CoverageRate = 0.7
