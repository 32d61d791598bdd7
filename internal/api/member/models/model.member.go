// Package models - Member thuộc domain member (members).
// Hồ sơ khách hàng độc lập với hợp đồng; Warranty tham chiếu lỏng qua
// memberId dạng chuỗi, không ràng buộc FK.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member lưu hồ sơ thành viên (members).
type Member struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	MemberId  string `json:"memberId" bson:"memberId" index:"unique"` // SMC + 6 chữ số
	CitizenId string `json:"citizenId,omitempty" bson:"citizenId,omitempty" index:"unique,sparse"`

	Prefix      string `json:"prefix,omitempty" bson:"prefix,omitempty"`
	FirstName   string `json:"firstName" bson:"firstName"`
	LastName    string `json:"lastName" bson:"lastName"`
	FirstNameEn string `json:"firstNameEn,omitempty" bson:"firstNameEn,omitempty"`
	LastNameEn  string `json:"lastNameEn,omitempty" bson:"lastNameEn,omitempty"`

	Phone     string `json:"phone" bson:"phone" index:"unique"`
	Birthdate int64  `json:"birthdate,omitempty" bson:"birthdate,omitempty"` // Unix ms
	Gender    string `json:"gender,omitempty" bson:"gender,omitempty"`

	// Địa chỉ: trên CMND, hiện tại và giao nhận
	IdCardAddress   string `json:"idCardAddress,omitempty" bson:"idCardAddress,omitempty"`
	Address         string `json:"address,omitempty" bson:"address,omitempty"`
	ShippingAddress string `json:"shippingAddress,omitempty" bson:"shippingAddress,omitempty"`

	// Ngày cấp / hết hạn CMND (đọc từ đầu đọc thẻ)
	IssueDate  int64 `json:"issueDate,omitempty" bson:"issueDate,omitempty"`
	ExpiryDate int64 `json:"expiryDate,omitempty" bson:"expiryDate,omitempty"`

	Facebook     string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	FacebookLink string `json:"facebookLink,omitempty" bson:"facebookLink,omitempty"`
	Photo        string `json:"photo,omitempty" bson:"photo,omitempty"` // base64

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
