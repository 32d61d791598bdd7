// Package dto - DTO cho domain staff.
package dto

import (
	models "github.com/silmemobile104/smilecare/internal/api/staff/models"
)

// StaffCreateInput payload tạo tài khoản nhân viên. staffId do hệ thống sinh.
type StaffCreateInput struct {
	StaffName string `json:"staffName" bson:"staffName" validate:"required"`
	Username  string `json:"username" bson:"username" validate:"required,min=4,no_xss"`
	Password  string `json:"password" bson:"password" validate:"required,strong_password"`
	Role      string `json:"role" bson:"role" validate:"required,oneof=admin staff"`
}

// StaffUpdateInput payload cập nhật nhân viên.
type StaffUpdateInput struct {
	StaffName string `json:"staffName,omitempty" bson:"staffName,omitempty"`
	Password  string `json:"password,omitempty" bson:"password,omitempty" validate:"omitempty,strong_password"`
	Role      string `json:"role,omitempty" bson:"role,omitempty" validate:"omitempty,oneof=admin staff"`
}

// LoginInput payload đăng nhập.
type LoginInput struct {
	Username string `json:"username" bson:"username" validate:"required"`
	Password string `json:"password" bson:"password" validate:"required"`
}

// LoginResponse kết quả đăng nhập.
type LoginResponse struct {
	Token string        `json:"token"`
	Staff *models.Staff `json:"staff"`
}
