// Package models - Claim thuộc domain claim (claims).
// Một sự kiện sửa chữa/bảo hành trên một hợp đồng, tham chiếu mạnh theo
// warrantyId. totalCost luôn bằng tổng cost của updates, được $inc atomic
// cùng lúc với $push update mới.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái yêu cầu bảo hành (hiển thị tiếng Thái cho staff).
const (
	StatusAwaiting = "รอเคลม"         // Đang chờ xử lý / máy đang ở trung tâm
	StatusReturned = "รับเครื่องแล้ว" // Khách đã nhận lại máy
)

// ClaimCondition là checklist tình trạng thiết bị lúc nhận máy.
type ClaimCondition struct {
	Screen    bool   `json:"screen" bson:"screen"`       // Màn hình còn nguyên
	Body      bool   `json:"body" bson:"body"`           // Thân máy không móp
	CanBoot   bool   `json:"canBoot" bson:"canBoot"`     // Máy lên nguồn
	HasCharger bool  `json:"hasCharger" bson:"hasCharger"`
	HasSim    bool   `json:"hasSim" bson:"hasSim"`
	Note      string `json:"note,omitempty" bson:"note,omitempty"`
}

// ClaimUpdate là một bước sửa chữa trong log chi phí append-only.
type ClaimUpdate struct {
	Note   string   `json:"note" bson:"note"`
	Cost   int64    `json:"cost" bson:"cost"`
	Images []string `json:"images,omitempty" bson:"images,omitempty"`
	At     int64    `json:"at" bson:"at"` // Unix ms
	By     string   `json:"by,omitempty" bson:"by,omitempty"`
}

// Claim lưu yêu cầu bảo hành (claims).
type Claim struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ClaimId    string             `json:"claimId" bson:"claimId" index:"unique"` // SML + 6 chữ số
	WarrantyId primitive.ObjectID `json:"warrantyId" bson:"warrantyId" index:"single:1"`

	Condition   ClaimCondition `json:"condition" bson:"condition"`
	Symptom     string         `json:"symptom" bson:"symptom"`
	Description string         `json:"description,omitempty" bson:"description,omitempty"`

	// Log chi phí append-only; TotalCost = tổng Updates[].Cost
	Updates   []ClaimUpdate `json:"updates,omitempty" bson:"updates,omitempty"`
	TotalCost int64         `json:"totalCost" bson:"totalCost"`

	Status       string `json:"status" bson:"status"` // รอเคลม | รับเครื่องแล้ว
	ReceivedDate int64  `json:"receivedDate,omitempty" bson:"receivedDate,omitempty"`
	ReturnedDate int64  `json:"returnedDate,omitempty" bson:"returnedDate,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
