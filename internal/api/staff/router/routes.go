// Package router đăng ký các route thuộc domain staff: CRUD tài khoản và
// đăng nhập.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "github.com/silmemobile104/smilecare/internal/api/router"
	staffhdl "github.com/silmemobile104/smilecare/internal/api/staff/handler"
)

// Register đăng ký tất cả route staff lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := staffhdl.NewStaffHandler()
	if err != nil {
		return fmt.Errorf("tạo StaffHandler: %w", err)
	}

	// POST /staffs/login — không qua AuthMiddleware, đây là điểm cấp token.
	// Phải đăng ký TRƯỚC các route CRUD: middleware auth của group /staffs
	// match theo prefix nên route đứng sau sẽ bị chặn.
	apirouter.RegisterRouteWithMiddleware(v1, "/staffs", "POST", "/login", nil, handler.HandleLogin)

	r.RegisterCRUDRoutes(v1, "/staffs", handler, apirouter.ReadWriteConfig)

	return nil
}
