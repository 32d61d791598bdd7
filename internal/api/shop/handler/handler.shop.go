// Package shophdl - Handler cửa hàng.
package shophdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/silmemobile104/smilecare/internal/api/base/handler"
	dto "github.com/silmemobile104/smilecare/internal/api/shop/dto"
	models "github.com/silmemobile104/smilecare/internal/api/shop/models"
	shopsvc "github.com/silmemobile104/smilecare/internal/api/shop/service"
)

// ShopHandler xử lý các route cửa hàng.
type ShopHandler struct {
	*basehdl.BaseHandler[models.Shop, dto.ShopCreateInput, dto.ShopUpdateInput]
	ShopService *shopsvc.ShopService
}

// NewShopHandler tạo ShopHandler mới.
func NewShopHandler() (*ShopHandler, error) {
	svc, err := shopsvc.NewShopService()
	if err != nil {
		return nil, fmt.Errorf("tạo ShopService: %w", err)
	}
	return &ShopHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Shop, dto.ShopCreateInput, dto.ShopUpdateInput](svc),
		ShopService: svc,
	}, nil
}

// InsertOne tạo cửa hàng mới với mã SMP sinh tự động.
// Override route insert-one của base CRUD.
func (h *ShopHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.ShopCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		shop, err := h.ShopService.Create(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleCreated(c, shop)
		return nil
	})
}
