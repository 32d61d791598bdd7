// Package models - Staff thuộc domain staff (staffs).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vai trò nhân viên.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Staff lưu tài khoản nhân viên (staffs).
type Staff struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	StaffId   string `json:"staffId" bson:"staffId" index:"unique"` // STF + 3 chữ số
	StaffName string `json:"staffName" bson:"staffName"`
	Username  string `json:"username" bson:"username" index:"unique"`
	Password  string `json:"-" bson:"password"` // Không bao giờ trả ra ngoài qua JSON
	Role      string `json:"role" bson:"role"`  // admin | staff

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
