package global

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("thai_phone", validateThaiPhone)
	_ = Validate.RegisterValidation("thai_citizen_id", validateThaiCitizenID)
	_ = Validate.RegisterValidation("strong_password", validateStrongPassword)
	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
}

var thaiPhoneRegex = regexp.MustCompile(`^0\d{8,9}$`)

// validateThaiPhone kiểm tra số điện thoại Thái Lan (bắt đầu bằng 0, 9-10 chữ số)
func validateThaiPhone(fl validator.FieldLevel) bool {
	return thaiPhoneRegex.MatchString(fl.Field().String())
}

// validateThaiCitizenID kiểm tra số căn cước công dân Thái Lan:
// 13 chữ số, chữ số cuối là checksum mod 11 của 12 chữ số đầu.
func validateThaiCitizenID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != 13 {
		return false
	}

	sum := 0
	for i := 0; i < 12; i++ {
		d := value[i]
		if d < '0' || d > '9' {
			return false
		}
		sum += int(d-'0') * (13 - i)
	}

	last := value[12]
	if last < '0' || last > '9' {
		return false
	}

	check := (11 - sum%11) % 10
	return int(last-'0') == check
}

// validateStrongPassword kiểm tra mật khẩu nhân viên:
// tối thiểu 8 ký tự, đạt ít nhất 3 trong 4 điều kiện (hoa, thường, số, ký tự đặc biệt).
func validateStrongPassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	if len(value) < 8 {
		return false
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	for _, char := range value {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	conditions := 0
	if hasUpper {
		conditions++
	}
	if hasLower {
		conditions++
	}
	if hasNumber {
		conditions++
	}
	if hasSpecial {
		conditions++
	}

	return conditions >= 3
}

// validateNoXSS chặn các pattern script phổ biến trong input dạng text
func validateNoXSS(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"<iframe",
		"<object",
		"<embed",
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}
