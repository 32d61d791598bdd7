// Package common định nghĩa hệ thống mã lỗi, thông báo và chuyển đổi lỗi MongoDB
// dùng chung cho toàn bộ ứng dụng. Mọi operation công khai trả về *Error thay vì panic.
package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200 // Thành công
	StatusCreated   = 201 // Tạo mới thành công
	StatusNoContent = 204 // Thành công nhưng không có nội dung trả về

	// Client Error Codes (4xx)
	StatusBadRequest         = 400 // Yêu cầu không hợp lệ
	StatusUnauthorized       = 401 // Chưa xác thực
	StatusForbidden          = 403 // Không có quyền truy cập
	StatusNotFound           = 404 // Không tìm thấy tài nguyên
	StatusConflict           = 409 // Xung đột dữ liệu
	StatusPreconditionFailed = 412 // Điều kiện tiên quyết không thỏa mãn
	StatusUnprocessable      = 422 // Dữ liệu hợp lệ về cú pháp nhưng sai nghiệp vụ
	StatusTooManyRequests    = 429 // Quá nhiều yêu cầu

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Lỗi server
	StatusServiceUnavailable  = 503 // Dịch vụ không khả dụng
)

// Response Messages
const (
	MsgSuccess = "Thao tác thành công"
	MsgCreated = "Tạo mới thành công"

	MsgBadRequest      = "Yêu cầu không hợp lệ"
	MsgUnauthorized    = "Vui lòng đăng nhập"
	MsgForbidden       = "Không có quyền truy cập"
	MsgNotFound        = "Không tìm thấy tài nguyên"
	MsgConflict        = "Xung đột dữ liệu"
	MsgInternalError   = "Lỗi hệ thống"
	MsgValidationError = "Dữ liệu không hợp lệ"
	MsgDatabaseError   = "Lỗi tương tác với cơ sở dữ liệu"

	MsgTokenMissing = "Thiếu token xác thực"
	MsgTokenInvalid = "Token không hợp lệ"
	MsgTokenExpired = "Token đã hết hạn"
)

// ErrorCode định nghĩa mã lỗi chi tiết theo hệ thống phân cấp.
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: PAY_001)
	Category    string // Phân loại lỗi (ví dụ: Payment)
	SubCategory string // Phân loại con (ví dụ: Approval)
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Lỗi hệ thống nội bộ",
	}

	// Authentication Errors (AUTH_xxx)
	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Lỗi liên quan đến token",
	}

	ErrCodeAuthCredentials = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Credentials",
		Description: "Lỗi thông tin đăng nhập",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Lỗi dữ liệu đầu vào",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Lỗi định dạng dữ liệu",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Lỗi cơ sở dữ liệu chung",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Lỗi kết nối cơ sở dữ liệu",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Lỗi truy vấn dữ liệu",
	}

	ErrCodeDatabaseDuplicate = ErrorCode{
		Code:        "DB_003",
		Category:    "Database",
		SubCategory: "Duplicate",
		Description: "Dữ liệu trùng khóa duy nhất",
	}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "Lỗi trạng thái nghiệp vụ",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Lỗi thao tác nghiệp vụ",
	}

	// Approval Errors (APR_xxx) — cổng phê duyệt hợp đồng bảo hành
	ErrCodeApproval = ErrorCode{
		Code:        "APR_001",
		Category:    "Approval",
		SubCategory: "Gate",
		Description: "Lỗi trạng thái phê duyệt",
	}

	// Payment Errors (PAY_xxx) — sổ thanh toán
	ErrCodePayment = ErrorCode{
		Code:        "PAY_001",
		Category:    "Payment",
		SubCategory: "Settlement",
		Description: "Lỗi ghi nhận thanh toán",
	}

	// Claim Errors (CLM_xxx) — vùng bảo hiểm còn lại
	ErrCodeClaim = ErrorCode{
		Code:        "CLM_001",
		Category:    "Claim",
		SubCategory: "Coverage",
		Description: "Lỗi xử lý yêu cầu bảo hành",
	}
)

// Error định nghĩa cấu trúc lỗi chi tiết trả về cho caller.
type Error struct {
	Code       ErrorCode // Mã lỗi chi tiết
	Message    string    // Thông báo lỗi
	StatusCode int       // HTTP status code
	Details    any       // Thông tin chi tiết thêm về lỗi

	cause error // Lỗi gốc (nếu có), giữ lại cho errors.As/errors.Is
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	return e.Message
}

// Unwrap trả về lỗi gốc để errors.As truy được tới lỗi driver bên dưới.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is so sánh theo mã lỗi và message để hỗ trợ errors.Is với các sentinel bên dưới.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return false
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Các sentinel errors dùng chung
var (
	// Authentication
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Thông tin đăng nhập không chính xác", StatusUnauthorized, nil)
	ErrTokenExpired       = NewError(ErrCodeAuthToken, MsgTokenExpired, StatusUnauthorized, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, MsgTokenInvalid, StatusUnauthorized, nil)
	ErrTokenMissing       = NewError(ErrCodeAuthToken, MsgTokenMissing, StatusUnauthorized, nil)

	// Validation
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Định dạng dữ liệu không hợp lệ", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Thiếu thông tin bắt buộc", StatusBadRequest, nil)

	// Database
	ErrNotFound   = NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, nil)
	ErrDuplicate  = NewError(ErrCodeDatabaseDuplicate, "Dữ liệu đã tồn tại", StatusConflict, nil)
	ErrConnection = NewError(ErrCodeDatabaseConnection, "Lỗi kết nối cơ sở dữ liệu", StatusServiceUnavailable, nil)

	// Approval Gate — hợp đồng phải được duyệt trước khi thu tiền
	ErrApprovalPending  = NewError(ErrCodeApproval, "Hợp đồng đang chờ phê duyệt, chưa thể thu tiền", StatusPreconditionFailed, nil)
	ErrApprovalRejected = NewError(ErrCodeApproval, "Hợp đồng đã bị từ chối, không thể thu tiền", StatusPreconditionFailed, nil)
	ErrApprovalDecided  = NewError(ErrCodeApproval, "Hợp đồng đã được quyết định phê duyệt trước đó", StatusConflict, nil)

	// Payment Ledger
	ErrAlreadyPaid        = NewError(ErrCodePayment, "Khoản thanh toán này đã được ghi nhận trước đó", StatusConflict, nil)
	ErrInsufficientTender = NewError(ErrCodePayment, "Số tiền nhận chưa đủ so với số tiền phải thu", StatusBadRequest, nil)
	ErrNothingDue         = NewError(ErrCodePayment, "Hợp đồng không còn khoản phải thu", StatusBadRequest, nil)

	// Business conflicts — trùng dữ liệu nghiệp vụ, không retry
	ErrSerialRegistered    = NewError(ErrCodeBusinessOperation, "Số serial thiết bị đã được đăng ký bảo hành", StatusConflict, nil)
	ErrPhoneRegistered     = NewError(ErrCodeBusinessOperation, "Số điện thoại đã được đăng ký thành viên", StatusConflict, nil)
	ErrCitizenIdRegistered = NewError(ErrCodeBusinessOperation, "Số căn cước công dân đã được đăng ký", StatusConflict, nil)
	ErrUsernameRegistered  = NewError(ErrCodeBusinessOperation, "Tên đăng nhập đã tồn tại", StatusConflict, nil)

	// Plan catalogue
	ErrPlanUnknown = NewError(ErrCodeValidationInput, "Gói bảo hành không tồn tại trong danh mục", StatusBadRequest, nil)
)

// ConvertMongoError chuyển đổi lỗi MongoDB driver sang lỗi hệ thống.
// ErrNotFound được giữ nguyên để caller phân biệt với lỗi hạ tầng.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNotFound) {
		return err
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	if mongo.IsDuplicateKeyError(err) {
		// Giữ lại lỗi gốc để caller kiểm tra index nào bị trùng (IsDuplicateKeyOn)
		return &Error{
			Code:       ErrCodeDatabaseDuplicate,
			Message:    "Dữ liệu đã tồn tại",
			StatusCode: StatusConflict,
			cause:      err,
		}
	}
	if mongo.IsNetworkError(err) {
		return ErrConnection
	}
	if mongo.IsTimeout(err) {
		return NewError(ErrCodeDatabaseConnection, "Kết nối MongoDB bị timeout", StatusServiceUnavailable, err)
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		switch {
		case cmdErr.Code >= 100 && cmdErr.Code < 200:
			return ErrConnection
		case cmdErr.Code >= 200 && cmdErr.Code < 300:
			return NewError(ErrCodeAuthCredentials, "Lỗi xác thực MongoDB", StatusUnauthorized, err)
		default:
			return NewError(ErrCodeDatabaseQuery, "Lỗi truy vấn MongoDB", StatusInternalServerError, err)
		}
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}

// IsDuplicateKeyOn báo lỗi err có phải duplicate key trên field/index chứa chuỗi name không.
// Dùng để phân biệt trùng policyNumber (transient, retry sinh số mới) với trùng
// device.serial (xung đột nghiệp vụ thật, trả lỗi cho caller).
func IsDuplicateKeyOn(err error, name string) bool {
	if err == nil || name == "" {
		return false
	}
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, we := range writeErr.WriteErrors {
			if we.Code == 11000 && containsFold(we.Message, name) {
				return true
			}
		}
	}
	return false
}

// containsFold kiểm tra substring không phân biệt hoa thường (đủ dùng cho message index).
func containsFold(s, sub string) bool {
	if len(sub) == 0 {
		return true
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		match := true
		for j := 0; j < len(sub); j++ {
			a, b := s[i+j], sub[j]
			if 'A' <= a && a <= 'Z' {
				a += 'a' - 'A'
			}
			if 'A' <= b && b <= 'Z' {
				b += 'a' - 'A'
			}
			if a != b {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
