// Package claimsvc - Service yêu cầu bảo hành (claims) và tính hạn mức
// bảo hiểm còn lại.
package claimsvc

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/silmemobile104/smilecare/internal/api/base/service"
	dto "github.com/silmemobile104/smilecare/internal/api/claim/dto"
	models "github.com/silmemobile104/smilecare/internal/api/claim/models"
	warrantymodels "github.com/silmemobile104/smilecare/internal/api/warranty/models"
	"github.com/silmemobile104/smilecare/internal/common"
	"github.com/silmemobile104/smilecare/internal/global"
	"github.com/silmemobile104/smilecare/internal/identifier"
)

const maxClaimInsertRetries = 5

// ClaimService xử lý nghiệp vụ yêu cầu bảo hành.
type ClaimService struct {
	*basesvc.BaseServiceMongoImpl[models.Claim]
	warranties *basesvc.BaseServiceMongoImpl[warrantymodels.Warranty]
	claimGen   *identifier.Generator
}

// NewClaimService tạo ClaimService mới.
func NewClaimService() (*ClaimService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Claims)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Claims, common.ErrNotFound)
	}
	warrantyColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Warranties)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Warranties, common.ErrNotFound)
	}

	base := basesvc.NewBaseServiceMongo[models.Claim](coll)
	claimGen, err := identifier.NewGenerator(identifier.KindClaim, func(ctx context.Context, id string) (bool, error) {
		return base.DocumentExists(ctx, bson.M{"claimId": id})
	}, nil)
	if err != nil {
		return nil, err
	}

	return &ClaimService{
		BaseServiceMongoImpl: base,
		warranties:           basesvc.NewBaseServiceMongo[warrantymodels.Warranty](warrantyColl),
		claimGen:             claimGen,
	}, nil
}

// Create mở yêu cầu bảo hành mới trên một hợp đồng. warrantyId là tham chiếu
// mạnh: hợp đồng phải tồn tại.
func (s *ClaimService) Create(ctx context.Context, input *dto.ClaimCreateInput, staffName string) (*models.Claim, error) {
	warrantyID, err := primitive.ObjectIDFromHex(input.WarrantyId)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}
	exists, err := s.warranties.DocumentExists(ctx, bson.M{"_id": warrantyID})
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrNotFound
	}

	draft := models.Claim{
		WarrantyId:   warrantyID,
		Condition:    input.Condition,
		Symptom:      input.Symptom,
		Description:  input.Description,
		TotalCost:    0,
		Status:       models.StatusAwaiting,
		ReceivedDate: time.Now().UnixMilli(),
	}

	for attempt := 0; attempt < maxClaimInsertRetries; attempt++ {
		claimId, err := s.claimGen.Generate(ctx)
		if err != nil {
			return nil, err
		}
		draft.ClaimId = claimId

		inserted, err := s.InsertOne(ctx, draft)
		if err == nil {
			return &inserted, nil
		}
		if common.IsDuplicateKeyOn(err, "claimId") {
			continue
		}
		return nil, err
	}
	return nil, common.NewError(
		common.ErrCodeDatabaseDuplicate,
		"Không sinh được mã yêu cầu bảo hành sau nhiều lần thử",
		common.StatusInternalServerError,
		nil,
	)
}

// AppendUpdate thêm một bước sửa chữa vào log chi phí. $push update mới và
// $inc totalCost nằm trong cùng một update document nên hai giá trị không
// bao giờ lệch nhau.
func (s *ClaimService) AppendUpdate(ctx context.Context, claimID primitive.ObjectID, input *dto.ClaimAppendUpdateInput, staffName string) (*models.Claim, error) {
	entry := models.ClaimUpdate{
		Note:   input.Note,
		Cost:   input.Cost,
		Images: input.Images,
		At:     time.Now().UnixMilli(),
		By:     staffName,
	}

	update := &basesvc.UpdateData{
		Push: bson.M{"updates": entry},
		Inc:  bson.M{"totalCost": input.Cost},
	}
	updated, err := s.UpdateOne(ctx, bson.M{"_id": claimID}, update, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateStatus đổi trạng thái yêu cầu bảo hành; khi khách nhận lại máy
// (รับเครื่องแล้ว) ghi luôn returnedDate.
func (s *ClaimService) UpdateStatus(ctx context.Context, claimID primitive.ObjectID, status string) (*models.Claim, error) {
	set := bson.M{"status": status}
	if status == models.StatusReturned {
		set["returnedDate"] = time.Now().UnixMilli()
	}
	updated, err := s.UpdateById(ctx, claimID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// FindByWarranty trả về các yêu cầu bảo hành của một hợp đồng, mới nhất trước.
func (s *ClaimService) FindByWarranty(ctx context.Context, warrantyID primitive.ObjectID) ([]models.Claim, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.M{"warrantyId": warrantyID}, opts)
}

// ComputeCoverage tính hạn mức từ giá trị thiết bị và tổng chi phí đã dùng.
// coverageLimit = floor(deviceValue * 0.7); remainingBalance được phép âm
// để caller thấy rõ mức vượt trần, không clamp về 0.
func ComputeCoverage(deviceValue int64, totalUsed int64) dto.CoverageResponse {
	limit := int64(math.Floor(float64(deviceValue) * warrantymodels.CoverageRate))
	return dto.CoverageResponse{
		CoverageLimit:    limit,
		TotalUsed:        totalUsed,
		RemainingBalance: limit - totalUsed,
	}
}

// RemainingCoverage tính hạn mức bảo hiểm còn lại của một hợp đồng:
// tổng totalCost của mọi claim thuộc hợp đồng được gom bằng aggregation
// $group phía server.
func (s *ClaimService) RemainingCoverage(ctx context.Context, warrantyID primitive.ObjectID) (*dto.CoverageResponse, error) {
	w, err := s.warranties.FindOneById(ctx, warrantyID)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"warrantyId": warrantyID}}},
		{{Key: "$group", Value: bson.M{
			"_id":       nil,
			"totalUsed": bson.M{"$sum": "$totalCost"},
		}}},
	}
	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var totalUsed int64
	var results []struct {
		TotalUsed int64 `bson:"totalUsed"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if len(results) > 0 {
		totalUsed = results[0].TotalUsed
	}

	result := ComputeCoverage(w.Device.DeviceValue, totalUsed)
	return &result, nil
}
