// Package dto - DTO cho domain shop.
package dto

// ShopCreateInput payload tạo cửa hàng mới. shopId do hệ thống sinh.
type ShopCreateInput struct {
	ShopName string `json:"shopName" bson:"shopName" validate:"required"`
	Branch   string `json:"branch,omitempty" bson:"branch,omitempty"`
	Address  string `json:"address,omitempty" bson:"address,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,thai_phone"`
	Active   bool   `json:"active" bson:"active"`
}

// ShopUpdateInput payload cập nhật cửa hàng. shopId không sửa được.
type ShopUpdateInput struct {
	ShopName string `json:"shopName,omitempty" bson:"shopName,omitempty"`
	Branch   string `json:"branch,omitempty" bson:"branch,omitempty"`
	Address  string `json:"address,omitempty" bson:"address,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,thai_phone"`
	Active   *bool  `json:"active,omitempty" bson:"active,omitempty"`
}
