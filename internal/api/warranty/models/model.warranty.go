// Package models - Warranty thuộc domain warranty (warranties).
// Một hợp đồng bảo hiểm cho một thiết bị, embed payment sub-document.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WarrantyCustomer là snapshot thông tin khách tại thời điểm đăng ký,
// không live-link với Member.
type WarrantyCustomer struct {
	Prefix    string `json:"prefix,omitempty" bson:"prefix,omitempty"`
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
	Phone     string `json:"phone" bson:"phone"`
	Birthdate int64  `json:"birthdate,omitempty" bson:"birthdate,omitempty"` // Unix ms
	Address   string `json:"address,omitempty" bson:"address,omitempty"`
}

// WarrantyDevice là snapshot thiết bị được bảo hiểm.
type WarrantyDevice struct {
	Type           string `json:"type" bson:"type"` // iPhone, iPad...
	Model          string `json:"model" bson:"model"`
	Color          string `json:"color,omitempty" bson:"color,omitempty"`
	Capacity       string `json:"capacity,omitempty" bson:"capacity,omitempty"`
	Serial         string `json:"serial" bson:"serial"` // Unique toàn hệ thống (index tạo ở CreateWarrantyAdditionalIndexes)
	Imei           string `json:"imei,omitempty" bson:"imei,omitempty"`
	DeviceValue    int64  `json:"deviceValue" bson:"deviceValue"`                           // Giá trị khai báo (THB)
	MfgWarrantyEnd int64  `json:"mfgWarrantyEnd,omitempty" bson:"mfgWarrantyEnd,omitempty"` // Hết hạn bảo hành hãng, Unix ms
}

// WarrantyPackage là gói bảo hiểm đã chọn, giá chốt từ catalogue lúc đăng ký.
type WarrantyPackage struct {
	PlanID   PlanID `json:"planId" bson:"planId"`
	PlanName string `json:"planName" bson:"planName"`
	Price    int64  `json:"price" bson:"price"`
	Category string `json:"category" bson:"category"` // full-protection | screen-only
}

// PaymentSchedule là một kỳ trả góp trong payment.schedule.
type PaymentSchedule struct {
	InstallmentNo int    `json:"installmentNo" bson:"installmentNo"` // 1..3
	Amount        int64  `json:"amount" bson:"amount"`
	DueDate       int64  `json:"dueDate" bson:"dueDate"`     // Unix ms
	GraceDate     int64  `json:"graceDate" bson:"graceDate"` // DueDate + 5 ngày
	Status        string `json:"status" bson:"status"`       // Pending | Paid
	PaidDate      int64  `json:"paidDate,omitempty" bson:"paidDate,omitempty"`
	PaidCash      int64  `json:"paidCash,omitempty" bson:"paidCash,omitempty"`
	PaidTransfer  int64  `json:"paidTransfer,omitempty" bson:"paidTransfer,omitempty"`
	RefId         string `json:"refId,omitempty" bson:"refId,omitempty"`
}

// WarrantyPayment là sub-document thanh toán embed trong Warranty.
// Với Installment: Schedule có đúng 3 kỳ, PaidCash/PaidTransfer là tổng lũy kế.
// Với Full Payment: Schedule rỗng, cash/transfer/ref ghi thẳng trên aggregate.
type WarrantyPayment struct {
	Method       string            `json:"method" bson:"method"` // Full Payment | Installment
	Status       string            `json:"status" bson:"status"` // Pending | Paid
	PaidDate     int64             `json:"paidDate,omitempty" bson:"paidDate,omitempty"`
	PaidCash     int64             `json:"paidCash,omitempty" bson:"paidCash,omitempty"`
	PaidTransfer int64             `json:"paidTransfer,omitempty" bson:"paidTransfer,omitempty"`
	RefId        string            `json:"refId,omitempty" bson:"refId,omitempty"`
	Schedule     []PaymentSchedule `json:"schedule,omitempty" bson:"schedule,omitempty"`
}

// Warranty lưu hợp đồng bảo hiểm (warranties).
type Warranty struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Identity
	PolicyNumber string `json:"policyNumber" bson:"policyNumber" index:"unique"` // 7 chữ số, sinh tự động
	MemberId     string `json:"memberId,omitempty" bson:"memberId,omitempty" index:"single:1"`

	// Snapshots
	Customer WarrantyCustomer `json:"customer" bson:"customer"`
	Device   WarrantyDevice   `json:"device" bson:"device"`
	Package  WarrantyPackage  `json:"package" bson:"package"`

	// Thời hạn bảo hiểm: End = Start + đúng 1 năm, chốt lúc đăng ký
	Start int64 `json:"start" bson:"start"` // Unix ms
	End   int64 `json:"end" bson:"end"`     // Unix ms

	// Nơi đăng ký (loose reference theo tên, không ràng buộc FK)
	ShopName  string `json:"shopName,omitempty" bson:"shopName,omitempty"`
	StaffName string `json:"staffName,omitempty" bson:"staffName,omitempty"` // Nhân viên đăng ký

	Payment WarrantyPayment `json:"payment" bson:"payment"`

	// Phê duyệt: pending → approved | rejected, quyết định đúng một lần
	ApprovalStatus string `json:"approvalStatus" bson:"approvalStatus" index:"single:1"`
	Approver       string `json:"approver,omitempty" bson:"approver,omitempty"`
	ApprovalDate   int64  `json:"approvalDate,omitempty" bson:"approvalDate,omitempty"`
	RejectReason   string `json:"rejectReason,omitempty" bson:"rejectReason,omitempty"`
	RejectBy       string `json:"rejectBy,omitempty" bson:"rejectBy,omitempty"`
	RejectDate     int64  `json:"rejectDate,omitempty" bson:"rejectDate,omitempty"`

	// Trạng thái bảo hành thiết bị: normal | pending | completed
	ClaimStatus string `json:"claimStatus" bson:"claimStatus"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
