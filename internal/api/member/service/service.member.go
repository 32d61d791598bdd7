// Package membersvc - Service thành viên (members).
package membersvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/silmemobile104/smilecare/internal/api/base/service"
	dto "github.com/silmemobile104/smilecare/internal/api/member/dto"
	models "github.com/silmemobile104/smilecare/internal/api/member/models"
	"github.com/silmemobile104/smilecare/internal/common"
	"github.com/silmemobile104/smilecare/internal/global"
	"github.com/silmemobile104/smilecare/internal/identifier"
)

const maxMemberInsertRetries = 5

// MemberService xử lý nghiệp vụ thành viên.
type MemberService struct {
	*basesvc.BaseServiceMongoImpl[models.Member]
	memberGen *identifier.Generator
}

// NewMemberService tạo MemberService mới.
func NewMemberService() (*MemberService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Members)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Members, common.ErrNotFound)
	}

	base := basesvc.NewBaseServiceMongo[models.Member](coll)
	memberGen, err := identifier.NewGenerator(identifier.KindMember, func(ctx context.Context, id string) (bool, error) {
		return base.DocumentExists(ctx, bson.M{"memberId": id})
	}, nil)
	if err != nil {
		return nil, err
	}

	return &MemberService{
		BaseServiceMongoImpl: base,
		memberGen:            memberGen,
	}, nil
}

// Create tạo thành viên mới với memberId sinh tự động.
// Trùng memberId là transient (sinh lại), trùng phone/citizenId là xung đột
// nghiệp vụ trả thẳng cho caller.
func (s *MemberService) Create(ctx context.Context, input *dto.MemberCreateInput) (*models.Member, error) {
	// DTO và model dùng chung bson tag nên map qua bson round-trip
	var draft models.Member
	raw, err := bson.Marshal(input)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}
	if err := bson.Unmarshal(raw, &draft); err != nil {
		return nil, common.ErrInvalidFormat
	}

	for attempt := 0; attempt < maxMemberInsertRetries; attempt++ {
		memberId, err := s.memberGen.Generate(ctx)
		if err != nil {
			return nil, err
		}
		draft.MemberId = memberId

		inserted, err := s.InsertOne(ctx, draft)
		if err == nil {
			return &inserted, nil
		}
		if common.IsDuplicateKeyOn(err, "memberId") {
			continue
		}
		if common.IsDuplicateKeyOn(err, "phone") {
			return nil, common.ErrPhoneRegistered
		}
		if common.IsDuplicateKeyOn(err, "citizenId") {
			return nil, common.ErrCitizenIdRegistered
		}
		return nil, err
	}
	return nil, common.NewError(
		common.ErrCodeDatabaseDuplicate,
		"Không sinh được mã thành viên sau nhiều lần thử",
		common.StatusInternalServerError,
		nil,
	)
}

// FindByMemberId tra thành viên theo mã SMC.
func (s *MemberService) FindByMemberId(ctx context.Context, memberId string) (*models.Member, error) {
	m, err := s.FindOne(ctx, bson.M{"memberId": memberId}, nil)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindByCitizenId tra thành viên theo số CMND (từ đầu đọc thẻ).
func (s *MemberService) FindByCitizenId(ctx context.Context, citizenId string) (*models.Member, error) {
	m, err := s.FindOne(ctx, bson.M{"citizenId": citizenId}, nil)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
