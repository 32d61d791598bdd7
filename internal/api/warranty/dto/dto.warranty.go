// Package dto - DTO cho domain warranty.
package dto

import (
	models "github.com/silmemobile104/smilecare/internal/api/warranty/models"
)

// WarrantyCustomerInput snapshot khách hàng trong payload đăng ký.
type WarrantyCustomerInput struct {
	Prefix    string `json:"prefix,omitempty" bson:"prefix,omitempty"`
	FirstName string `json:"firstName" bson:"firstName" validate:"required"`
	LastName  string `json:"lastName" bson:"lastName" validate:"required"`
	Phone     string `json:"phone" bson:"phone" validate:"required,thai_phone"`
	Birthdate int64  `json:"birthdate,omitempty" bson:"birthdate,omitempty"`
	Address   string `json:"address,omitempty" bson:"address,omitempty"`
}

// WarrantyDeviceInput snapshot thiết bị trong payload đăng ký.
type WarrantyDeviceInput struct {
	Type           string `json:"type" bson:"type" validate:"required"`
	Model          string `json:"model" bson:"model" validate:"required"`
	Color          string `json:"color,omitempty" bson:"color,omitempty"`
	Capacity       string `json:"capacity,omitempty" bson:"capacity,omitempty"`
	Serial         string `json:"serial" bson:"serial" validate:"required"`
	Imei           string `json:"imei,omitempty" bson:"imei,omitempty"`
	DeviceValue    int64  `json:"deviceValue" bson:"deviceValue" validate:"required,gt=0"`
	MfgWarrantyEnd int64  `json:"mfgWarrantyEnd,omitempty" bson:"mfgWarrantyEnd,omitempty"`
}

// WarrantyCreateInput payload đăng ký hợp đồng mới.
// Giá gói không nhận từ payload, luôn tra từ catalogue theo planId.
type WarrantyCreateInput struct {
	MemberId string                `json:"memberId,omitempty" bson:"memberId,omitempty"`
	Customer WarrantyCustomerInput `json:"customer" bson:"customer" validate:"required"`
	Device   WarrantyDeviceInput   `json:"device" bson:"device" validate:"required"`
	PlanID   models.PlanID         `json:"planId" bson:"planId" validate:"required"`
	Method   string                `json:"method" bson:"method" validate:"required,oneof='Full Payment' 'Installment'"`
	Start    int64                 `json:"start" bson:"start" validate:"required"` // Unix ms
	ShopName string                `json:"shopName,omitempty" bson:"shopName,omitempty"`
}

// WarrantyUpdateInput payload sửa hợp đồng. Đổi planId hoặc start sẽ tính lại
// lịch trả góp, các kỳ đã Paid được giữ nguyên (merge theo installmentNo).
type WarrantyUpdateInput struct {
	MemberId string                 `json:"memberId,omitempty" bson:"memberId,omitempty"`
	Customer *WarrantyCustomerInput `json:"customer,omitempty" bson:"customer,omitempty"`
	Device   *WarrantyDeviceInput   `json:"device,omitempty" bson:"device,omitempty"`
	PlanID   models.PlanID          `json:"planId,omitempty" bson:"planId,omitempty"`
	Start    int64                  `json:"start,omitempty" bson:"start,omitempty"`
	ShopName string                 `json:"shopName,omitempty" bson:"shopName,omitempty"`
}

// PaymentInstruction payload thanh toán. Ba mode loại trừ lẫn nhau:
// installmentNo (trả một kỳ), payAllRemaining (trả hết các kỳ còn lại),
// không truyền gì (full payment với method 'Full Payment').
type PaymentInstruction struct {
	InstallmentNo   int    `json:"installmentNo,omitempty" bson:"installmentNo,omitempty" validate:"omitempty,min=1,max=3"`
	PayAllRemaining bool   `json:"payAllRemaining,omitempty" bson:"payAllRemaining,omitempty"`
	PaidCash        int64  `json:"paidCash" bson:"paidCash" validate:"min=0"`
	PaidTransfer    int64  `json:"paidTransfer" bson:"paidTransfer" validate:"min=0"`
	RefId           string `json:"refId,omitempty" bson:"refId,omitempty"`
}

// ApprovalInput payload phê duyệt hợp đồng.
type ApprovalInput struct {
	Decision string `json:"decision" bson:"decision" validate:"required,oneof=approved rejected"`
	Reason   string `json:"reason,omitempty" bson:"reason,omitempty"` // Bắt buộc khi rejected
}

// ClaimStatusInput payload cập nhật trạng thái bảo hành thiết bị.
type ClaimStatusInput struct {
	ClaimStatus string `json:"claimStatus" bson:"claimStatus" validate:"required,oneof=normal pending completed"`
}

// AmountDueResponse kết quả tính số tiền còn phải trả.
type AmountDueResponse struct {
	AmountDue           int64 `json:"amountDue"`
	PayableInstallments []int `json:"payableInstallments"` // Các kỳ còn Pending, rỗng với Full Payment
	PayAllOffered       bool  `json:"payAllOffered"`       // Chỉ bật khi còn hơn 1 kỳ chưa trả
}

// SettleResponse kết quả thanh toán. Change chỉ tính để hiển thị trên biên
// nhận, không lưu vào ledger.
type SettleResponse struct {
	Warranty *models.Warranty `json:"warranty"`
	Change   int64            `json:"change"`
}

// RegisterResponse kết quả đăng ký hợp đồng mới.
type RegisterResponse struct {
	WarrantyId   string `json:"warrantyId"`
	PolicyNumber string `json:"policyNumber"`
}
