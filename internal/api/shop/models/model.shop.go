// Package models - Shop thuộc domain shop (shops).
// Điểm đăng ký hợp đồng; Warranty tham chiếu lỏng qua shopName.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shop lưu cửa hàng (shops).
type Shop struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ShopId   string `json:"shopId" bson:"shopId" index:"unique"` // SMP + 6 chữ số
	ShopName string `json:"shopName" bson:"shopName" index:"single:1"`
	Branch   string `json:"branch,omitempty" bson:"branch,omitempty"`
	Address  string `json:"address,omitempty" bson:"address,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Active   bool   `json:"active" bson:"active"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
