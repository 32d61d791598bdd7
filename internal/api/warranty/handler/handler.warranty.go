// Package warrantyhdl - Handler hợp đồng bảo hiểm.
package warrantyhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/silmemobile104/smilecare/internal/api/base/handler"
	dto "github.com/silmemobile104/smilecare/internal/api/warranty/dto"
	models "github.com/silmemobile104/smilecare/internal/api/warranty/models"
	warrantysvc "github.com/silmemobile104/smilecare/internal/api/warranty/service"
	"github.com/silmemobile104/smilecare/internal/logger"
)

// WarrantyHandler xử lý các route hợp đồng bảo hiểm. Embed BaseHandler cho
// các route đọc/xóa chung, các nghiệp vụ (đăng ký, thanh toán, phê duyệt)
// đi qua WarrantyService.
type WarrantyHandler struct {
	*basehdl.BaseHandler[models.Warranty, dto.WarrantyCreateInput, dto.WarrantyUpdateInput]
	WarrantyService *warrantysvc.WarrantyService
}

// NewWarrantyHandler tạo WarrantyHandler mới.
func NewWarrantyHandler() (*WarrantyHandler, error) {
	svc, err := warrantysvc.NewWarrantyService()
	if err != nil {
		return nil, fmt.Errorf("tạo WarrantyService: %w", err)
	}
	return &WarrantyHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Warranty, dto.WarrantyCreateInput, dto.WarrantyUpdateInput](svc),
		WarrantyService: svc,
	}, nil
}

// staffName lấy tên nhân viên đang thao tác từ context auth.
func staffName(c fiber.Ctx) string {
	if name, ok := c.Locals("staffName").(string); ok {
		return name
	}
	return ""
}

// InsertOne đăng ký hợp đồng mới: sinh số hợp đồng, tính lịch trả góp,
// trạng thái chờ duyệt. Override route insert-one của base CRUD.
func (h *WarrantyHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.WarrantyCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		w, err := h.WarrantyService.Register(c.Context(), &input, staffName(c))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogAction("warranty_register", "warranty", w.PolicyNumber, c, map[string]interface{}{
			"planId": string(input.PlanID),
			"method": input.Method,
		})
		h.HandleCreated(c, dto.RegisterResponse{
			WarrantyId:   w.ID.Hex(),
			PolicyNumber: w.PolicyNumber,
		})
		return nil
	})
}

// UpdateById sửa hợp đồng, merge lịch trả góp giữ các kỳ đã Paid.
// Override route update-by-id của base CRUD.
func (h *WarrantyHandler) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.WarrantyUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		w, err := h.WarrantyService.Update(c.Context(), objID, &input)
		h.HandleResponse(c, w, err)
		return nil
	})
}

// HandleSettlePayment xử lý POST /warranties/:id/settle-payment.
func (h *WarrantyHandler) HandleSettlePayment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var instr dto.PaymentInstruction
		if err := h.ParseRequestBody(c, &instr); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&instr); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.WarrantyService.ApplyPayment(c.Context(), objID, &instr)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogPayment(result.Warranty.PolicyNumber, c, map[string]interface{}{
			"installmentNo":   instr.InstallmentNo,
			"payAllRemaining": instr.PayAllRemaining,
			"paidCash":        instr.PaidCash,
			"paidTransfer":    instr.PaidTransfer,
			"change":          result.Change,
		})
		h.HandleResponse(c, result, nil)
		return nil
	})
}

// HandleAmountDue xử lý GET /warranties/:id/amount-due.
func (h *WarrantyHandler) HandleAmountDue(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.WarrantyService.GetAmountDue(c.Context(), objID)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleApproval xử lý PUT /warranties/:id/approval — duyệt hoặc từ chối,
// đúng một lần.
func (h *WarrantyHandler) HandleApproval(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.ApprovalInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		w, err := h.WarrantyService.TransitionApproval(c.Context(), objID, input.Decision, staffName(c), input.Reason)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogApproval(w.PolicyNumber, input.Decision, c)
		h.HandleResponse(c, w, nil)
		return nil
	})
}

// HandleApprovalStatus xử lý GET /warranties/:id/approval-status.
// Endpoint rẻ cho caller poll chờ kết quả duyệt.
func (h *WarrantyHandler) HandleApprovalStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		status, err := h.WarrantyService.GetApprovalStatus(c.Context(), objID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"approvalStatus": status}, nil)
		return nil
	})
}

// HandleClaimStatus xử lý PUT /warranties/:id/claim-status.
func (h *WarrantyHandler) HandleClaimStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.ClaimStatusInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		w, err := h.WarrantyService.UpdateClaimStatus(c.Context(), objID, input.ClaimStatus)
		h.HandleResponse(c, w, err)
		return nil
	})
}
