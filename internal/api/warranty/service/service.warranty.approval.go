// Package warrantysvc - Cổng phê duyệt hợp đồng.
// pending → approved | rejected, quyết định đúng một lần. Transition là một
// FindOneAndUpdate filter trên approvalStatus "pending": hai request duyệt
// song song chỉ có một request khớp, request thua nhận AlreadyDecided.
package warrantysvc

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/silmemobile104/smilecare/internal/api/base/service"
	models "github.com/silmemobile104/smilecare/internal/api/warranty/models"
	"github.com/silmemobile104/smilecare/internal/common"
)

// TransitionApproval chuyển hợp đồng từ pending sang approved hoặc rejected,
// ghi nhận người duyệt và thời điểm (hoặc lý do từ chối).
func (s *WarrantyService) TransitionApproval(ctx context.Context, objID primitive.ObjectID, decision string, actor string, reason string) (*models.Warranty, error) {
	now := time.Now().UnixMilli()

	var set bson.M
	switch decision {
	case models.ApprovalStatusApproved:
		set = bson.M{
			"approvalStatus": models.ApprovalStatusApproved,
			"approver":       actor,
			"approvalDate":   now,
		}
	case models.ApprovalStatusRejected:
		if reason == "" {
			return nil, common.NewError(
				common.ErrCodeValidationInput,
				"Từ chối hợp đồng phải có lý do",
				common.StatusBadRequest,
				nil,
			)
		}
		set = bson.M{
			"approvalStatus": models.ApprovalStatusRejected,
			"rejectReason":   reason,
			"rejectBy":       actor,
			"rejectDate":     now,
		}
	default:
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Decision phải là approved hoặc rejected",
			common.StatusBadRequest,
			nil,
		)
	}

	filter := bson.M{
		"_id":            objID,
		"approvalStatus": models.ApprovalStatusPending,
	}
	opts := mongoopts.FindOneAndUpdate().SetReturnDocument(mongoopts.After)
	updated, err := s.FindOneAndUpdate(ctx, filter, &basesvc.UpdateData{Set: set}, opts)
	if err == nil {
		return &updated, nil
	}

	// Filter miss: hợp đồng không tồn tại hoặc đã được quyết định trước đó
	if errors.Is(err, common.ErrNotFound) {
		exists, existsErr := s.DocumentExists(ctx, bson.M{"_id": objID})
		if existsErr != nil {
			return nil, existsErr
		}
		if exists {
			return nil, common.ErrApprovalDecided
		}
		return nil, common.ErrNotFound
	}
	return nil, err
}

// GetApprovalStatus đọc trạng thái phê duyệt hiện tại. Rẻ và idempotent,
// dành cho caller poll chờ kết quả duyệt.
func (s *WarrantyService) GetApprovalStatus(ctx context.Context, objID primitive.ObjectID) (string, error) {
	w, err := s.FindOneById(ctx, objID)
	if err != nil {
		return "", err
	}
	return w.ApprovalStatus, nil
}
