// Package staffhdl - Handler tài khoản nhân viên.
package staffhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/silmemobile104/smilecare/internal/api/base/handler"
	dto "github.com/silmemobile104/smilecare/internal/api/staff/dto"
	models "github.com/silmemobile104/smilecare/internal/api/staff/models"
	staffsvc "github.com/silmemobile104/smilecare/internal/api/staff/service"
	"github.com/silmemobile104/smilecare/internal/logger"
)

// StaffHandler xử lý các route tài khoản nhân viên.
type StaffHandler struct {
	*basehdl.BaseHandler[models.Staff, dto.StaffCreateInput, dto.StaffUpdateInput]
	StaffService *staffsvc.StaffService
}

// NewStaffHandler tạo StaffHandler mới.
func NewStaffHandler() (*StaffHandler, error) {
	svc, err := staffsvc.NewStaffService()
	if err != nil {
		return nil, fmt.Errorf("tạo StaffService: %w", err)
	}
	return &StaffHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Staff, dto.StaffCreateInput, dto.StaffUpdateInput](svc),
		StaffService: svc,
	}, nil
}

// InsertOne tạo tài khoản nhân viên mới với mã STF sinh tự động.
// Override route insert-one của base CRUD.
func (h *StaffHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.StaffCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		staff, err := h.StaffService.Create(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogAction("staff_create", "staff", staff.StaffId, c, nil)
		h.HandleCreated(c, staff)
		return nil
	})
}

// HandleLogin xác thực nhân viên và trả JWT.
// Route này không qua AuthMiddleware.
func (h *StaffHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.LoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.StaffService.Login(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogAuth("login", result.Staff.StaffId, c)
		h.HandleResponse(c, result, nil)
		return nil
	})
}
