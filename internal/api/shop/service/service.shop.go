// Package shopsvc - Service cửa hàng (shops).
package shopsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/silmemobile104/smilecare/internal/api/base/service"
	dto "github.com/silmemobile104/smilecare/internal/api/shop/dto"
	models "github.com/silmemobile104/smilecare/internal/api/shop/models"
	"github.com/silmemobile104/smilecare/internal/common"
	"github.com/silmemobile104/smilecare/internal/global"
	"github.com/silmemobile104/smilecare/internal/identifier"
)

const maxShopInsertRetries = 5

// ShopService xử lý nghiệp vụ cửa hàng.
type ShopService struct {
	*basesvc.BaseServiceMongoImpl[models.Shop]
	shopGen *identifier.Generator
}

// NewShopService tạo ShopService mới.
func NewShopService() (*ShopService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Shops)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Shops, common.ErrNotFound)
	}

	base := basesvc.NewBaseServiceMongo[models.Shop](coll)
	shopGen, err := identifier.NewGenerator(identifier.KindShop, func(ctx context.Context, id string) (bool, error) {
		return base.DocumentExists(ctx, bson.M{"shopId": id})
	}, nil)
	if err != nil {
		return nil, err
	}

	return &ShopService{
		BaseServiceMongoImpl: base,
		shopGen:              shopGen,
	}, nil
}

// Create tạo cửa hàng mới với shopId sinh tự động.
func (s *ShopService) Create(ctx context.Context, input *dto.ShopCreateInput) (*models.Shop, error) {
	draft := models.Shop{
		ShopName: input.ShopName,
		Branch:   input.Branch,
		Address:  input.Address,
		Phone:    input.Phone,
		Active:   input.Active,
	}

	for attempt := 0; attempt < maxShopInsertRetries; attempt++ {
		shopId, err := s.shopGen.Generate(ctx)
		if err != nil {
			return nil, err
		}
		draft.ShopId = shopId

		inserted, err := s.InsertOne(ctx, draft)
		if err == nil {
			return &inserted, nil
		}
		if common.IsDuplicateKeyOn(err, "shopId") {
			continue
		}
		return nil, err
	}
	return nil, common.NewError(
		common.ErrCodeDatabaseDuplicate,
		"Không sinh được mã cửa hàng sau nhiều lần thử",
		common.StatusInternalServerError,
		nil,
	)
}
