// Package dto - DTO cho domain member.
package dto

// MemberCreateInput payload tạo thành viên mới. memberId do hệ thống sinh,
// không nhận từ payload.
type MemberCreateInput struct {
	CitizenId string `json:"citizenId,omitempty" bson:"citizenId,omitempty" validate:"omitempty,thai_citizen_id"`

	Prefix      string `json:"prefix,omitempty" bson:"prefix,omitempty"`
	FirstName   string `json:"firstName" bson:"firstName" validate:"required"`
	LastName    string `json:"lastName" bson:"lastName" validate:"required"`
	FirstNameEn string `json:"firstNameEn,omitempty" bson:"firstNameEn,omitempty"`
	LastNameEn  string `json:"lastNameEn,omitempty" bson:"lastNameEn,omitempty"`

	Phone     string `json:"phone" bson:"phone" validate:"required,thai_phone"`
	Birthdate int64  `json:"birthdate,omitempty" bson:"birthdate,omitempty"`
	Gender    string `json:"gender,omitempty" bson:"gender,omitempty" validate:"omitempty,oneof=male female other"`

	IdCardAddress   string `json:"idCardAddress,omitempty" bson:"idCardAddress,omitempty"`
	Address         string `json:"address,omitempty" bson:"address,omitempty"`
	ShippingAddress string `json:"shippingAddress,omitempty" bson:"shippingAddress,omitempty"`

	IssueDate  int64 `json:"issueDate,omitempty" bson:"issueDate,omitempty"`
	ExpiryDate int64 `json:"expiryDate,omitempty" bson:"expiryDate,omitempty"`

	Facebook     string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	FacebookLink string `json:"facebookLink,omitempty" bson:"facebookLink,omitempty"`
	Photo        string `json:"photo,omitempty" bson:"photo,omitempty"`
}

// MemberUpdateInput payload cập nhật thành viên. memberId không sửa được.
type MemberUpdateInput struct {
	CitizenId string `json:"citizenId,omitempty" bson:"citizenId,omitempty" validate:"omitempty,thai_citizen_id"`

	Prefix      string `json:"prefix,omitempty" bson:"prefix,omitempty"`
	FirstName   string `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty" bson:"lastName,omitempty"`
	FirstNameEn string `json:"firstNameEn,omitempty" bson:"firstNameEn,omitempty"`
	LastNameEn  string `json:"lastNameEn,omitempty" bson:"lastNameEn,omitempty"`

	Phone     string `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,thai_phone"`
	Birthdate int64  `json:"birthdate,omitempty" bson:"birthdate,omitempty"`
	Gender    string `json:"gender,omitempty" bson:"gender,omitempty" validate:"omitempty,oneof=male female other"`

	IdCardAddress   string `json:"idCardAddress,omitempty" bson:"idCardAddress,omitempty"`
	Address         string `json:"address,omitempty" bson:"address,omitempty"`
	ShippingAddress string `json:"shippingAddress,omitempty" bson:"shippingAddress,omitempty"`

	IssueDate  int64 `json:"issueDate,omitempty" bson:"issueDate,omitempty"`
	ExpiryDate int64 `json:"expiryDate,omitempty" bson:"expiryDate,omitempty"`

	Facebook     string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	FacebookLink string `json:"facebookLink,omitempty" bson:"facebookLink,omitempty"`
	Photo        string `json:"photo,omitempty" bson:"photo,omitempty"`
}
