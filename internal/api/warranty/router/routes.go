// Package router đăng ký các route thuộc domain warranty: CRUD hợp đồng,
// thanh toán, phê duyệt, trạng thái bảo hành.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/silmemobile104/smilecare/internal/api/middleware"
	apirouter "github.com/silmemobile104/smilecare/internal/api/router"
	warrantyhdl "github.com/silmemobile104/smilecare/internal/api/warranty/handler"
)

// Register đăng ký tất cả route warranty lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := warrantyhdl.NewWarrantyHandler()
	if err != nil {
		return fmt.Errorf("tạo WarrantyHandler: %w", err)
	}

	// CRUD chung: insert-one/update-by-id đã được handler override để chạy
	// nghiệp vụ đăng ký và merge lịch trả góp
	r.RegisterCRUDRoutes(v1, "/warranties", handler, apirouter.ReadWriteConfig)

	authMiddleware := middleware.AuthMiddleware()
	middlewares := []fiber.Handler{authMiddleware}

	// POST /warranties/:id/settle-payment — áp dụng thanh toán (3 mode)
	apirouter.RegisterRouteWithMiddleware(v1, "/warranties", "POST", "/:id/settle-payment", middlewares, handler.HandleSettlePayment)
	// GET /warranties/:id/amount-due — số tiền còn phải trả + các kỳ trả được
	apirouter.RegisterRouteWithMiddleware(v1, "/warranties", "GET", "/:id/amount-due", middlewares, handler.HandleAmountDue)
	// PUT /warranties/:id/approval — duyệt / từ chối (một lần)
	apirouter.RegisterRouteWithMiddleware(v1, "/warranties", "PUT", "/:id/approval", middlewares, handler.HandleApproval)
	// GET /warranties/:id/approval-status — cho caller poll
	apirouter.RegisterRouteWithMiddleware(v1, "/warranties", "GET", "/:id/approval-status", middlewares, handler.HandleApprovalStatus)
	// PUT /warranties/:id/claim-status — trạng thái gửi/trả máy bảo hành
	apirouter.RegisterRouteWithMiddleware(v1, "/warranties", "PUT", "/:id/claim-status", middlewares, handler.HandleClaimStatus)

	return nil
}
