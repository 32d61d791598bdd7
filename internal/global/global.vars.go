// Package global chứa các biến dùng chung của ứng dụng: cấu hình server,
// phiên kết nối MongoDB, validator và registry của các collections.
package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/silmemobile104/smilecare/config"
	"github.com/silmemobile104/smilecare/internal/registry"
)

// CollectionNames chứa tên các collection trong MongoDB
type CollectionNames struct {
	Warranties string // Tên collection cho hợp đồng bảo hành
	Members    string // Tên collection cho thành viên
	Shops      string // Tên collection cho cửa hàng
	Claims     string // Tên collection cho yêu cầu bảo hành
	Staffs     string // Tên collection cho nhân viên
}

// Các biến toàn cục
var Validate *validator.Validate                                 // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                           // Cấu hình của server
var MongoDB_ColNames CollectionNames = *new(CollectionNames)     // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
