// Package memberhdl - Handler thành viên.
package memberhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/silmemobile104/smilecare/internal/api/base/handler"
	dto "github.com/silmemobile104/smilecare/internal/api/member/dto"
	models "github.com/silmemobile104/smilecare/internal/api/member/models"
	membersvc "github.com/silmemobile104/smilecare/internal/api/member/service"
)

// MemberHandler xử lý các route thành viên.
type MemberHandler struct {
	*basehdl.BaseHandler[models.Member, dto.MemberCreateInput, dto.MemberUpdateInput]
	MemberService *membersvc.MemberService
}

// NewMemberHandler tạo MemberHandler mới.
func NewMemberHandler() (*MemberHandler, error) {
	svc, err := membersvc.NewMemberService()
	if err != nil {
		return nil, fmt.Errorf("tạo MemberService: %w", err)
	}
	return &MemberHandler{
		BaseHandler:   basehdl.NewBaseHandler[models.Member, dto.MemberCreateInput, dto.MemberUpdateInput](svc),
		MemberService: svc,
	}, nil
}

// InsertOne tạo thành viên mới với mã SMC sinh tự động.
// Override route insert-one của base CRUD.
func (h *MemberHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.MemberCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		member, err := h.MemberService.Create(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleCreated(c, member)
		return nil
	})
}

// HandleFindByMemberId xử lý GET /members/by-member-id/:memberId.
func (h *MemberHandler) HandleFindByMemberId(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		memberId := c.Params("memberId")
		member, err := h.MemberService.FindByMemberId(c.Context(), memberId)
		h.HandleResponse(c, member, err)
		return nil
	})
}

// HandleFindByCitizenId xử lý GET /members/by-citizen-id/:citizenId —
// tra hồ sơ từ số CMND đọc được trên thẻ.
func (h *MemberHandler) HandleFindByCitizenId(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		citizenId := c.Params("citizenId")
		member, err := h.MemberService.FindByCitizenId(c.Context(), citizenId)
		h.HandleResponse(c, member, err)
		return nil
	})
}
