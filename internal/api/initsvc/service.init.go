// Package initsvc chứa InitService dùng để khởi tạo dữ liệu ban đầu
// (tài khoản admin mặc định). Tách ra package riêng để cmd/server không
// phải import trực tiếp từng domain service.
package initsvc

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	staffdto "github.com/silmemobile104/smilecare/internal/api/staff/dto"
	staffmodels "github.com/silmemobile104/smilecare/internal/api/staff/models"
	staffsvc "github.com/silmemobile104/smilecare/internal/api/staff/service"
	"github.com/silmemobile104/smilecare/internal/common"
	"github.com/silmemobile104/smilecare/internal/logger"
)

// Thông tin tài khoản admin mặc định khi chạy INITMODE.
// Mật khẩu phải được đổi ngay sau lần đăng nhập đầu tiên.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "Admin@1234"
	defaultAdminName     = "Administrator"
)

// InitService khởi tạo dữ liệu mặc định cho hệ thống.
type InitService struct {
	staffService *staffsvc.StaffService
}

// NewInitService tạo InitService mới.
func NewInitService() (*InitService, error) {
	staffService, err := staffsvc.NewStaffService()
	if err != nil {
		return nil, err
	}
	return &InitService{staffService: staffService}, nil
}

// InitAdminAccount tạo tài khoản admin mặc định nếu hệ thống chưa có nhân viên nào.
// Idempotent: gọi lại nhiều lần không tạo trùng.
func (s *InitService) InitAdminAccount() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.staffService.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		logger.GetAppLogger().Info("Đã có tài khoản nhân viên, bỏ qua seed admin")
		return nil
	}

	_, err = s.staffService.Create(ctx, &staffdto.StaffCreateInput{
		StaffName: defaultAdminName,
		Username:  defaultAdminUsername,
		Password:  defaultAdminPassword,
		Role:      staffmodels.RoleAdmin,
	})
	if err != nil {
		// Hai instance cùng seed, instance kia thắng
		if errors.Is(err, common.ErrUsernameRegistered) {
			return nil
		}
		return err
	}

	logger.GetAppLogger().Warnf("Đã tạo tài khoản admin mặc định (username: %s), đổi mật khẩu ngay sau khi đăng nhập", defaultAdminUsername)
	return nil
}
