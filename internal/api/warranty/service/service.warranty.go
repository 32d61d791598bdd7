// Package warrantysvc - Service hợp đồng bảo hiểm (warranties).
package warrantysvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/silmemobile104/smilecare/internal/api/base/service"
	dto "github.com/silmemobile104/smilecare/internal/api/warranty/dto"
	models "github.com/silmemobile104/smilecare/internal/api/warranty/models"
	"github.com/silmemobile104/smilecare/internal/common"
	"github.com/silmemobile104/smilecare/internal/global"
	"github.com/silmemobile104/smilecare/internal/identifier"
)

// Số lần insert lại tối đa khi policyNumber sinh ra đụng unique index.
// Mỗi lần retry sinh số mới, xác suất đụng liên tiếp rất thấp.
const maxPolicyInsertRetries = 5

// WarrantyService xử lý nghiệp vụ hợp đồng bảo hiểm.
type WarrantyService struct {
	*basesvc.BaseServiceMongoImpl[models.Warranty]
	policyGen *identifier.Generator
}

// NewWarrantyService tạo WarrantyService mới, bind generator số hợp đồng
// vào probe DocumentExists của collection warranties.
func NewWarrantyService() (*WarrantyService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Warranties)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Warranties, common.ErrNotFound)
	}

	base := basesvc.NewBaseServiceMongo[models.Warranty](coll)
	policyGen, err := identifier.NewGenerator(identifier.KindPolicy, func(ctx context.Context, id string) (bool, error) {
		return base.DocumentExists(ctx, bson.M{"policyNumber": id})
	}, nil)
	if err != nil {
		return nil, err
	}

	return &WarrantyService{
		BaseServiceMongoImpl: base,
		policyGen:            policyGen,
	}, nil
}

// Register đăng ký hợp đồng mới: tra catalogue, check trùng serial, sinh số
// hợp đồng, tính lịch trả góp và insert ở trạng thái chờ duyệt.
// Duplicate key trên policyNumber là transient (sinh số mới rồi insert lại),
// trên device.serial là xung đột nghiệp vụ trả thẳng cho caller.
func (s *WarrantyService) Register(ctx context.Context, input *dto.WarrantyCreateInput, staffName string) (*models.Warranty, error) {
	plan, ok := models.ResolvePlan(input.PlanID)
	if !ok {
		return nil, common.ErrPlanUnknown
	}

	exists, err := s.DocumentExists(ctx, bson.M{"device.serial": input.Device.Serial})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrSerialRegistered
	}

	start := time.UnixMilli(input.Start)
	draft := models.Warranty{
		MemberId: input.MemberId,
		Customer: models.WarrantyCustomer{
			Prefix:    input.Customer.Prefix,
			FirstName: input.Customer.FirstName,
			LastName:  input.Customer.LastName,
			Phone:     input.Customer.Phone,
			Birthdate: input.Customer.Birthdate,
			Address:   input.Customer.Address,
		},
		Device: models.WarrantyDevice{
			Type:           input.Device.Type,
			Model:          input.Device.Model,
			Color:          input.Device.Color,
			Capacity:       input.Device.Capacity,
			Serial:         input.Device.Serial,
			Imei:           input.Device.Imei,
			DeviceValue:    input.Device.DeviceValue,
			MfgWarrantyEnd: input.Device.MfgWarrantyEnd,
		},
		Package: models.WarrantyPackage{
			PlanID:   input.PlanID,
			PlanName: plan.Name,
			Price:    plan.Price,
			Category: plan.Category,
		},
		Start:          input.Start,
		End:            addMonthsClamp(start, 12).UnixMilli(),
		ShopName:       input.ShopName,
		StaffName:      staffName,
		ApprovalStatus: models.ApprovalStatusPending,
		ClaimStatus:    models.ClaimStatusNormal,
		Payment: models.WarrantyPayment{
			Method: input.Method,
			Status: models.PaymentStatusPending,
		},
	}
	if input.Method == models.PaymentMethodInstallment {
		draft.Payment.Schedule = BuildSchedule(plan.Price, start)
	}

	for attempt := 0; attempt < maxPolicyInsertRetries; attempt++ {
		policyNumber, err := s.policyGen.Generate(ctx)
		if err != nil {
			return nil, err
		}
		draft.PolicyNumber = policyNumber

		inserted, err := s.InsertOne(ctx, draft)
		if err == nil {
			return &inserted, nil
		}
		// Đụng số hợp đồng với request song song: sinh số khác rồi thử lại
		if common.IsDuplicateKeyOn(err, "policyNumber") {
			continue
		}
		if common.IsDuplicateKeyOn(err, "warranty_device_serial") {
			return nil, common.ErrSerialRegistered
		}
		return nil, err
	}
	return nil, common.NewError(
		common.ErrCodeDatabaseDuplicate,
		"Không sinh được số hợp đồng sau nhiều lần thử",
		common.StatusInternalServerError,
		nil,
	)
}

// Update sửa hợp đồng. Đổi gói hoặc ngày bắt đầu sẽ tính lại lịch trả góp,
// các kỳ đã Paid giữ nguyên qua MergeSchedule (khớp theo installmentNo).
func (s *WarrantyService) Update(ctx context.Context, objID primitive.ObjectID, input *dto.WarrantyUpdateInput) (*models.Warranty, error) {
	current, err := s.FindOneById(ctx, objID)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if input.MemberId != "" {
		set["memberId"] = input.MemberId
	}
	if input.ShopName != "" {
		set["shopName"] = input.ShopName
	}
	if input.Customer != nil {
		set["customer"] = models.WarrantyCustomer{
			Prefix:    input.Customer.Prefix,
			FirstName: input.Customer.FirstName,
			LastName:  input.Customer.LastName,
			Phone:     input.Customer.Phone,
			Birthdate: input.Customer.Birthdate,
			Address:   input.Customer.Address,
		}
	}
	if input.Device != nil {
		if input.Device.Serial != current.Device.Serial {
			exists, err := s.DocumentExists(ctx, bson.M{"device.serial": input.Device.Serial})
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, common.ErrSerialRegistered
			}
		}
		set["device"] = models.WarrantyDevice{
			Type:           input.Device.Type,
			Model:          input.Device.Model,
			Color:          input.Device.Color,
			Capacity:       input.Device.Capacity,
			Serial:         input.Device.Serial,
			Imei:           input.Device.Imei,
			DeviceValue:    input.Device.DeviceValue,
			MfgWarrantyEnd: input.Device.MfgWarrantyEnd,
		}
	}

	// Gói và ngày bắt đầu ảnh hưởng tới giá, hạn bảo hiểm và lịch trả góp
	price := current.Package.Price
	startMs := current.Start
	scheduleDirty := false

	if input.PlanID != "" && input.PlanID != current.Package.PlanID {
		plan, ok := models.ResolvePlan(input.PlanID)
		if !ok {
			return nil, common.ErrPlanUnknown
		}
		set["package"] = models.WarrantyPackage{
			PlanID:   input.PlanID,
			PlanName: plan.Name,
			Price:    plan.Price,
			Category: plan.Category,
		}
		price = plan.Price
		scheduleDirty = true
	}
	if input.Start != 0 && input.Start != current.Start {
		startMs = input.Start
		start := time.UnixMilli(startMs)
		set["start"] = startMs
		set["end"] = addMonthsClamp(start, 12).UnixMilli()
		scheduleDirty = true
	}

	if scheduleDirty && current.Payment.Method == models.PaymentMethodInstallment {
		newSchedule := BuildSchedule(price, time.UnixMilli(startMs))
		set["payment.schedule"] = MergeSchedule(current.Payment.Schedule, newSchedule)
	}

	if len(set) == 0 {
		return &current, nil
	}

	updated, err := s.UpdateById(ctx, objID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateClaimStatus cập nhật trạng thái bảo hành thiết bị trên hợp đồng.
func (s *WarrantyService) UpdateClaimStatus(ctx context.Context, objID primitive.ObjectID, status string) (*models.Warranty, error) {
	updated, err := s.UpdateById(ctx, objID, &basesvc.UpdateData{Set: bson.M{"claimStatus": status}})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// FindByPolicyNumber tra hợp đồng theo số hợp đồng.
func (s *WarrantyService) FindByPolicyNumber(ctx context.Context, policyNumber string) (*models.Warranty, error) {
	w, err := s.FindOne(ctx, bson.M{"policyNumber": policyNumber}, nil)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
