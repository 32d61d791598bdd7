// Package staffsvc - Service tài khoản nhân viên (staffs) và đăng nhập.
package staffsvc

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/silmemobile104/smilecare/internal/api/base/service"
	"github.com/silmemobile104/smilecare/internal/api/middleware"
	dto "github.com/silmemobile104/smilecare/internal/api/staff/dto"
	models "github.com/silmemobile104/smilecare/internal/api/staff/models"
	"github.com/silmemobile104/smilecare/internal/common"
	"github.com/silmemobile104/smilecare/internal/global"
	"github.com/silmemobile104/smilecare/internal/identifier"
)

const maxStaffInsertRetries = 5

// Thời hạn token đăng nhập.
const tokenTTL = 72 * time.Hour

// StaffService xử lý nghiệp vụ tài khoản nhân viên.
type StaffService struct {
	*basesvc.BaseServiceMongoImpl[models.Staff]
	staffGen *identifier.Generator
}

// NewStaffService tạo StaffService mới.
func NewStaffService() (*StaffService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Staffs)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Staffs, common.ErrNotFound)
	}

	base := basesvc.NewBaseServiceMongo[models.Staff](coll)
	staffGen, err := identifier.NewGenerator(identifier.KindStaff, func(ctx context.Context, id string) (bool, error) {
		return base.DocumentExists(ctx, bson.M{"staffId": id})
	}, nil)
	if err != nil {
		return nil, err
	}

	return &StaffService{
		BaseServiceMongoImpl: base,
		staffGen:             staffGen,
	}, nil
}

// Create tạo tài khoản nhân viên mới với staffId sinh tự động.
// Trùng username là xung đột nghiệp vụ trả thẳng cho caller.
func (s *StaffService) Create(ctx context.Context, input *dto.StaffCreateInput) (*models.Staff, error) {
	draft := models.Staff{
		StaffName: input.StaffName,
		Username:  input.Username,
		Password:  input.Password,
		Role:      input.Role,
	}

	for attempt := 0; attempt < maxStaffInsertRetries; attempt++ {
		staffId, err := s.staffGen.Generate(ctx)
		if err != nil {
			return nil, err
		}
		draft.StaffId = staffId

		inserted, err := s.InsertOne(ctx, draft)
		if err == nil {
			return &inserted, nil
		}
		if common.IsDuplicateKeyOn(err, "staffId") {
			continue
		}
		if common.IsDuplicateKeyOn(err, "username") {
			return nil, common.ErrUsernameRegistered
		}
		return nil, err
	}
	return nil, common.NewError(
		common.ErrCodeDatabaseDuplicate,
		"Không sinh được mã nhân viên sau nhiều lần thử",
		common.StatusInternalServerError,
		nil,
	)
}

// Login xác thực username/password và cấp JWT HS256.
// TODO(auth): chuyển lưu password sang bcrypt và migrate dữ liệu cũ.
func (s *StaffService) Login(ctx context.Context, input *dto.LoginInput) (*dto.LoginResponse, error) {
	staff, err := s.FindOne(ctx, bson.M{"username": input.Username}, nil)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(staff.Password), []byte(input.Password)) != 1 {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.issueToken(&staff)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Staff: &staff}, nil
}

// issueToken ký JWT chứa thông tin nhân viên cho AuthMiddleware verify.
func (s *StaffService) issueToken(staff *models.Staff) (string, error) {
	now := time.Now()
	claims := middleware.StaffClaims{
		StaffID:   staff.ID.Hex(),
		StaffCode: staff.StaffId,
		Username:  staff.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			Subject:   staff.ID.Hex(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(global.ServerConfig.JwtSecret))
	if err != nil {
		return "", common.NewError(
			common.ErrCodeInternalServer,
			"Không ký được token đăng nhập",
			common.StatusInternalServerError,
			err,
		)
	}
	return signed, nil
}
