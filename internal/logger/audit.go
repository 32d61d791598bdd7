package logger

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// AuditAction mô tả một hành động cần ghi audit trail
// (đăng ký hợp đồng, thu tiền, phê duyệt, cập nhật yêu cầu bảo hành).
type AuditAction struct {
	Action       string                 `json:"action"`        // Tên hành động (ví dụ: "warranty_register", "payment_settle")
	StaffID      string                 `json:"staff_id"`      // Mã nhân viên thực hiện
	ResourceID   string                 `json:"resource_id"`   // ID tài nguyên bị ảnh hưởng
	ResourceType string                 `json:"resource_type"` // Loại tài nguyên (ví dụ: "warranty", "claim")
	IP           string                 `json:"ip"`            // IP address
	Details      map[string]interface{} `json:"details"`       // Chi tiết bổ sung
	Timestamp    time.Time              `json:"timestamp"`     // Thời gian
}

// LogAction ghi một hành động audit, lấy staffId và request id từ fiber context.
func LogAction(action string, resourceType string, resourceID string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}

	audit := AuditAction{
		Action:       action,
		ResourceID:   resourceID,
		ResourceType: resourceType,
		IP:           c.IP(),
		Details:      details,
		Timestamp:    time.Now(),
	}

	if staffID := c.Locals("staffId"); staffID != nil {
		if sid, ok := staffID.(string); ok {
			audit.StaffID = sid
		}
	}

	if requestID := c.Get("X-Request-ID"); requestID != "" {
		audit.Details["request_id"] = requestID
	}

	GetAuditLogger().WithFields(logrus.Fields{
		"action":        audit.Action,
		"staff_id":      audit.StaffID,
		"resource_id":   audit.ResourceID,
		"resource_type": audit.ResourceType,
		"ip":            audit.IP,
		"details":       audit.Details,
		"timestamp":     audit.Timestamp,
	}).Info("Audit log")
}

// LogPayment ghi audit cho các thao tác thu tiền
func LogPayment(policyNumber string, c fiber.Ctx, details map[string]interface{}) {
	LogAction("payment_settle", "warranty", policyNumber, c, details)
}

// LogApproval ghi audit cho quyết định phê duyệt hợp đồng
func LogApproval(policyNumber string, decision string, c fiber.Ctx) {
	LogAction("approval_"+decision, "warranty", policyNumber, c, nil)
}

// LogAuth ghi audit cho các thao tác đăng nhập
func LogAuth(action string, staffID string, c fiber.Ctx) {
	LogAction("auth_"+action, "staff", staffID, c, nil)
}
