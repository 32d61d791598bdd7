// Package router đăng ký các route thuộc domain claim.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	claimhdl "github.com/silmemobile104/smilecare/internal/api/claim/handler"
	"github.com/silmemobile104/smilecare/internal/api/middleware"
	apirouter "github.com/silmemobile104/smilecare/internal/api/router"
)

// Register đăng ký tất cả route claim lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := claimhdl.NewClaimHandler()
	if err != nil {
		return fmt.Errorf("tạo ClaimHandler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/claims", handler, apirouter.ReadWriteConfig)

	authMiddleware := middleware.AuthMiddleware()
	middlewares := []fiber.Handler{authMiddleware}

	// POST /claims/:id/updates — thêm bước sửa chữa ($push + $inc totalCost)
	apirouter.RegisterRouteWithMiddleware(v1, "/claims", "POST", "/:id/updates", middlewares, handler.HandleAppendUpdate)
	// PUT /claims/:id/status — รอเคลม | รับเครื่องแล้ว
	apirouter.RegisterRouteWithMiddleware(v1, "/claims", "PUT", "/:id/status", middlewares, handler.HandleUpdateStatus)
	// GET /claims/coverage/:warrantyId — hạn mức còn lại
	apirouter.RegisterRouteWithMiddleware(v1, "/claims", "GET", "/coverage/:warrantyId", middlewares, handler.HandleCoverage)
	// GET /claims/by-warranty/:warrantyId
	apirouter.RegisterRouteWithMiddleware(v1, "/claims", "GET", "/by-warranty/:warrantyId", middlewares, handler.HandleListByWarranty)

	return nil
}
