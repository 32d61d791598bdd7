// Package middleware chứa các middleware dùng chung cho Fiber.
package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"

	"github.com/silmemobile104/smilecare/internal/common"
	"github.com/silmemobile104/smilecare/internal/global"
	"github.com/silmemobile104/smilecare/internal/logger"
)

// StaffClaims là payload của JWT cấp cho nhân viên khi đăng nhập
type StaffClaims struct {
	StaffID   string `json:"staffId"`   // ObjectID hex của nhân viên
	StaffCode string `json:"staffCode"` // Mã nhân viên (STF...)
	Username  string `json:"username"`
	jwt.RegisteredClaims
}

// HandleErrorResponse trả về lỗi theo format response chuẩn từ middleware
func HandleErrorResponse(c fiber.Ctx, err error) {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		c.Set("Content-Type", "application/json; charset=utf-8")
		c.Status(customErr.StatusCode).JSON(fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": customErr.Details,
			"status":  "error",
		})
		return
	}
	c.Set("Content-Type", "application/json; charset=utf-8")
	c.Status(common.StatusInternalServerError).JSON(fiber.Map{
		"code":    common.ErrCodeInternalServer.Code,
		"message": err.Error(),
		"status":  "error",
	})
}

// ParseStaffToken verify chữ ký HS256 và parse claims từ token string
func ParseStaffToken(tokenStr string, secret string) (*StaffClaims, error) {
	claims := &StaffClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}

// AuthMiddleware middleware xác thực cho Fiber.
// Verify JWT từ header Authorization và lưu thông tin nhân viên vào Locals
// (staffId, staffCode, staffName) cho handler và audit log sử dụng.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		claims, err := ParseStaffToken(parts[1], global.ServerConfig.JwtSecret)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token verification failed")
			HandleErrorResponse(c, err)
			return nil
		}

		// Lưu thông tin nhân viên vào context
		c.Locals("staffId", claims.StaffID)
		c.Locals("staffCode", claims.StaffCode)
		c.Locals("staffName", claims.Username)

		return c.Next()
	}
}
