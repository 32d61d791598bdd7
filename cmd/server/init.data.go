package main

import (
	"github.com/silmemobile104/smilecare/internal/api/initsvc"
	"github.com/silmemobile104/smilecare/internal/global"
	"github.com/silmemobile104/smilecare/internal/logger"
)

// InitDefaultData khởi tạo dữ liệu mặc định khi chạy ở chế độ INITMODE.
func InitDefaultData() {
	log := logger.GetAppLogger()

	if !global.ServerConfig.InitMode {
		log.Info("InitMode disabled, skipping default data initialization")
		return
	}

	log.Info("🔄 [INIT] Starting InitDefaultData...")

	initService, err := initsvc.NewInitService()
	if err != nil {
		log.Fatalf("Failed to initialize init service: %v", err)
	}

	// Tài khoản admin mặc định (chỉ khi chưa có nhân viên nào)
	if err := initService.InitAdminAccount(); err != nil {
		log.Fatalf("Failed to initialize admin account: %v", err)
	}

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}
