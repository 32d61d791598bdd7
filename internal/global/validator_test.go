package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type validatedInput struct {
	Phone     string `validate:"omitempty,thai_phone"`
	CitizenId string `validate:"omitempty,thai_citizen_id"`
	Password  string `validate:"omitempty,strong_password"`
	Note      string `validate:"omitempty,no_xss"`
}

func TestThaiPhoneValidator(t *testing.T) {
	InitValidator()

	valid := []string{"0812345678", "021234567"}
	for _, phone := range valid {
		err := Validate.Struct(validatedInput{Phone: phone})
		assert.NoError(t, err, "số %s phải hợp lệ", phone)
	}

	invalid := []string{"812345678", "08123456789012", "08-1234-5678", "+66812345678", "08123456"}
	for _, phone := range invalid {
		err := Validate.Struct(validatedInput{Phone: phone})
		assert.Error(t, err, "số %s phải bị từ chối", phone)
	}
}

func TestThaiCitizenIDValidator(t *testing.T) {
	InitValidator()

	// Chữ số cuối là checksum mod 11 của 12 chữ số đầu
	assert.NoError(t, Validate.Struct(validatedInput{CitizenId: "1101700203476"}))
	assert.NoError(t, Validate.Struct(validatedInput{CitizenId: "1234567890121"}))

	invalid := []string{
		"1101700203471", // sai checksum
		"110170020347",  // thiếu chữ số
		"11017002034761",
		"110170020347a",
	}
	for _, id := range invalid {
		err := Validate.Struct(validatedInput{CitizenId: id})
		assert.Error(t, err, "căn cước %s phải bị từ chối", id)
	}
}

func TestStrongPasswordValidator(t *testing.T) {
	InitValidator()

	assert.NoError(t, Validate.Struct(validatedInput{Password: "Admin@1234"}))
	assert.NoError(t, Validate.Struct(validatedInput{Password: "abcDEF12"}))

	invalid := []string{
		"Ab@1",     // quá ngắn
		"abcdefgh", // chỉ chữ thường
		"abcd1234", // chỉ 2 trong 4 điều kiện
	}
	for _, password := range invalid {
		err := Validate.Struct(validatedInput{Password: password})
		assert.Error(t, err, "mật khẩu %s phải bị từ chối", password)
	}
}

func TestNoXSSValidator(t *testing.T) {
	InitValidator()

	assert.NoError(t, Validate.Struct(validatedInput{Note: "เปลี่ยนจอใหม่ ราคา 3500 บาท"}))

	invalid := []string{
		"<script>alert(1)</script>",
		"<SCRIPT>alert(1)</SCRIPT>",
		"javascript:void(0)",
		`<img src=x onerror=alert(1)>`,
	}
	for _, note := range invalid {
		err := Validate.Struct(validatedInput{Note: note})
		assert.Error(t, err, "input %q phải bị từ chối", note)
	}
}
