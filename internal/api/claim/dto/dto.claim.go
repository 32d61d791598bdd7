// Package dto - DTO cho domain claim.
package dto

import (
	models "github.com/silmemobile104/smilecare/internal/api/claim/models"
)

// ClaimCreateInput payload mở yêu cầu bảo hành mới.
type ClaimCreateInput struct {
	WarrantyId  string                `json:"warrantyId" bson:"warrantyId" validate:"required"`
	Condition   models.ClaimCondition `json:"condition" bson:"condition"`
	Symptom     string                `json:"symptom" bson:"symptom" validate:"required"`
	Description string                `json:"description,omitempty" bson:"description,omitempty"`
}

// ClaimUpdateInput payload sửa thông tin yêu cầu bảo hành.
type ClaimUpdateInput struct {
	Symptom     string `json:"symptom,omitempty" bson:"symptom,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Status      string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=รอเคลม รับเครื่องแล้ว"`
}

// ClaimAppendUpdateInput payload thêm một bước sửa chữa vào log chi phí.
type ClaimAppendUpdateInput struct {
	Note   string   `json:"note" bson:"note" validate:"required"`
	Cost   int64    `json:"cost" bson:"cost" validate:"min=0"`
	Images []string `json:"images,omitempty" bson:"images,omitempty"`
}

// CoverageResponse kết quả tính hạn mức bảo hiểm còn lại của một hợp đồng.
// RemainingBalance có thể âm khi chi phí bảo hành đã vượt trần.
type CoverageResponse struct {
	CoverageLimit    int64 `json:"coverageLimit"`
	TotalUsed        int64 `json:"totalUsed"`
	RemainingBalance int64 `json:"remainingBalance"`
}
