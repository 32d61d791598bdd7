// Package claimhdl - Handler yêu cầu bảo hành.
package claimhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/silmemobile104/smilecare/internal/api/base/handler"
	dto "github.com/silmemobile104/smilecare/internal/api/claim/dto"
	models "github.com/silmemobile104/smilecare/internal/api/claim/models"
	claimsvc "github.com/silmemobile104/smilecare/internal/api/claim/service"
	"github.com/silmemobile104/smilecare/internal/logger"
)

// ClaimHandler xử lý các route yêu cầu bảo hành.
type ClaimHandler struct {
	*basehdl.BaseHandler[models.Claim, dto.ClaimCreateInput, dto.ClaimUpdateInput]
	ClaimService *claimsvc.ClaimService
}

// NewClaimHandler tạo ClaimHandler mới.
func NewClaimHandler() (*ClaimHandler, error) {
	svc, err := claimsvc.NewClaimService()
	if err != nil {
		return nil, fmt.Errorf("tạo ClaimService: %w", err)
	}
	return &ClaimHandler{
		BaseHandler:  basehdl.NewBaseHandler[models.Claim, dto.ClaimCreateInput, dto.ClaimUpdateInput](svc),
		ClaimService: svc,
	}, nil
}

func staffName(c fiber.Ctx) string {
	if name, ok := c.Locals("staffName").(string); ok {
		return name
	}
	return ""
}

// InsertOne mở yêu cầu bảo hành mới: sinh mã SML, check hợp đồng tồn tại.
// Override route insert-one của base CRUD.
func (h *ClaimHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.ClaimCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		claim, err := h.ClaimService.Create(c.Context(), &input, staffName(c))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogAction("claim_open", "claim", claim.ClaimId, c, map[string]interface{}{
			"warrantyId": input.WarrantyId,
		})
		h.HandleCreated(c, claim)
		return nil
	})
}

// HandleAppendUpdate xử lý POST /claims/:id/updates — thêm bước sửa chữa
// vào log chi phí.
func (h *ClaimHandler) HandleAppendUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.ClaimAppendUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		claim, err := h.ClaimService.AppendUpdate(c.Context(), objID, &input, staffName(c))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogAction("claim_cost_append", "claim", claim.ClaimId, c, map[string]interface{}{
			"cost":      input.Cost,
			"totalCost": claim.TotalCost,
		})
		h.HandleResponse(c, claim, nil)
		return nil
	})
}

// HandleUpdateStatus xử lý PUT /claims/:id/status.
func (h *ClaimHandler) HandleUpdateStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input struct {
			Status string `json:"status" validate:"required,oneof=รอเคลม รับเครื่องแล้ว"`
		}
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		claim, err := h.ClaimService.UpdateStatus(c.Context(), objID, input.Status)
		h.HandleResponse(c, claim, err)
		return nil
	})
}

// HandleCoverage xử lý GET /claims/coverage/:warrantyId — hạn mức bảo hiểm
// còn lại của một hợp đồng.
func (h *ClaimHandler) HandleCoverage(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		warrantyID, err := h.ParseObjectID(c, "warrantyId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		coverage, err := h.ClaimService.RemainingCoverage(c.Context(), warrantyID)
		h.HandleResponse(c, coverage, err)
		return nil
	})
}

// HandleListByWarranty xử lý GET /claims/by-warranty/:warrantyId.
func (h *ClaimHandler) HandleListByWarranty(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		warrantyID, err := h.ParseObjectID(c, "warrantyId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		claims, err := h.ClaimService.FindByWarranty(c.Context(), warrantyID)
		h.HandleResponse(c, claims, err)
		return nil
	})
}
