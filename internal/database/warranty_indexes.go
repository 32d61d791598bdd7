// Package database - Index bổ sung cho nghiệp vụ bảo hành (nested fields)
// không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"github.com/silmemobile104/smilecare/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateWarrantyAdditionalIndexes tạo các index bổ sung cho nghiệp vụ bảo hành.
// Gọi sau CreateIndexes của từng collection.
func CreateWarrantyAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// warranties: device.serial unique — mỗi thiết bị chỉ có một hợp đồng bảo hành
	warranties := db.Collection(global.MongoDB_ColNames.Warranties)
	if _, err := warranties.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "device.serial", Value: 1},
		},
		Options: options.Index().SetName("warranty_device_serial_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// warranties: (approvalStatus, createdAt) — danh sách hợp đồng chờ duyệt
	if _, err := warranties.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "approvalStatus", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("warranty_approval_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// warranties: payment.schedule.status — truy vấn hợp đồng còn kỳ chưa thu
	if _, err := warranties.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "payment.schedule.status", Value: 1},
		},
		Options: options.Index().SetName("warranty_schedule_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// claims: (warrantyId, createdAt) — tính tổng chi phí đã dùng của một hợp đồng
	claims := db.Collection(global.MongoDB_ColNames.Claims)
	if _, err := claims.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "warrantyId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("claim_warranty_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

// isIndexExistsError báo lỗi err có phải do index đã tồn tại không
func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
