// Package router đăng ký các route thuộc domain member.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	memberhdl "github.com/silmemobile104/smilecare/internal/api/member/handler"
	"github.com/silmemobile104/smilecare/internal/api/middleware"
	apirouter "github.com/silmemobile104/smilecare/internal/api/router"
)

// Register đăng ký tất cả route member lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := memberhdl.NewMemberHandler()
	if err != nil {
		return fmt.Errorf("tạo MemberHandler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/members", handler, apirouter.ReadWriteConfig)

	authMiddleware := middleware.AuthMiddleware()
	middlewares := []fiber.Handler{authMiddleware}

	// GET /members/by-member-id/:memberId
	apirouter.RegisterRouteWithMiddleware(v1, "/members", "GET", "/by-member-id/:memberId", middlewares, handler.HandleFindByMemberId)
	// GET /members/by-citizen-id/:citizenId — tra từ đầu đọc thẻ
	apirouter.RegisterRouteWithMiddleware(v1, "/members", "GET", "/by-citizen-id/:citizenId", middlewares, handler.HandleFindByCitizenId)

	return nil
}
