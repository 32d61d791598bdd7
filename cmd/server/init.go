package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/silmemobile104/smilecare/config"
	claimmodels "github.com/silmemobile104/smilecare/internal/api/claim/models"
	membermodels "github.com/silmemobile104/smilecare/internal/api/member/models"
	shopmodels "github.com/silmemobile104/smilecare/internal/api/shop/models"
	staffmodels "github.com/silmemobile104/smilecare/internal/api/staff/models"
	warrantymodels "github.com/silmemobile104/smilecare/internal/api/warranty/models"
	"github.com/silmemobile104/smilecare/internal/database"
	"github.com/silmemobile104/smilecare/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Warranties = "warranties"
	global.MongoDB_ColNames.Members = "members"
	global.MongoDB_ColNames.Shops = "shops"
	global.MongoDB_ColNames.Claims = "claims"
	global.MongoDB_ColNames.Staffs = "staffs"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (global.InitValidator đăng ký các custom validators:
// thai_phone, thai_citizen_id, strong_password, no_xss)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection theo tag `index` trên model
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)

	indexTargets := []struct {
		collection string
		model      interface{}
	}{
		{global.MongoDB_ColNames.Warranties, warrantymodels.Warranty{}},
		{global.MongoDB_ColNames.Members, membermodels.Member{}},
		{global.MongoDB_ColNames.Shops, shopmodels.Shop{}},
		{global.MongoDB_ColNames.Claims, claimmodels.Claim{}},
		{global.MongoDB_ColNames.Staffs, staffmodels.Staff{}},
	}
	for _, target := range indexTargets {
		if err := database.CreateIndexes(context.TODO(), db.Collection(target.collection), target.model); err != nil {
			logrus.Fatalf("Failed to create indexes for %s: %v", target.collection, err)
		}
	}

	// Index trên nested field (device.serial, payment.schedule.status, ...)
	// không định nghĩa được qua tag
	if err := database.CreateWarrantyAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Fatalf("Failed to create warranty additional indexes: %v", err)
	}
	logrus.Info("Created collection indexes")
}
