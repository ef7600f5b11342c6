package service

import (
	"context"
	"errors"

	"storefront/internal/database/mongodb/model"
	"storefront/internal/database/mongodb/repository"
	"storefront/internal/dto"
	cErr "storefront/internal/pkg/error"
	"storefront/internal/query"
	"storefront/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	trace    *telemetry.Trace
	userRepo *repository.UserRepository
}

func NewUserService(trace *telemetry.Trace, userRepo *repository.UserRepository) *UserService {
	return &UserService{trace: trace, userRepo: userRepo}
}

// 新增用戶（管理專用）
func (s *UserService) CreateUser(ctx context.Context, payload *dto.CreateUserDto) (*model.User, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, cErr.InternalServer("password hash error")
	}
	user := &model.User{
		ID:          primitive.NewObjectID(),
		DisplayName: payload.DisplayName,
		Email:       payload.Email,
		Password:    string(hash),
		Role:        payload.Role,
		Status:      payload.Status,
	}
	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Conflict("email already registered")
		}
		return nil, cErr.DatabaseError("database CreateUser error")
	}
	return created, nil
}

// 依 id 查詢
func (s *UserService) GetUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("user not found")
		}
		return nil, cErr.DatabaseError("database GetUserByID error")
	}
	return user, nil
}

// 管理後台列舉用戶（分頁、搜尋、篩選）
func (s *UserService) ListUsers(ctx context.Context, params map[string]string) (*query.Result[model.User], error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	result, err := query.Paginate(ctx, s.userRepo.Store(), params, nil)
	if err != nil {
		return nil, cErr.DatabaseError("database ListUsers error")
	}
	return result, nil
}

// 更新用戶（部份欄位）
func (s *UserService) UpdateUser(ctx context.Context, id primitive.ObjectID, payload *dto.UpdateUserDto) (*model.User, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	set := bson.M{}
	if payload.DisplayName != nil {
		set["displayName"] = *payload.DisplayName
	}
	if payload.Email != nil {
		set["email"] = *payload.Email
	}
	if payload.Role != nil {
		set["role"] = *payload.Role
	}
	if payload.Status != nil {
		set["status"] = *payload.Status
	}
	if len(set) == 0 {
		return nil, cErr.BadRequest("no fields to update")
	}

	user, err := s.userRepo.UpdateByID(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("user not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Conflict("email already registered")
		}
		return nil, cErr.DatabaseError("database UpdateUser error")
	}
	return user, nil
}

// ChangePassword 需驗證舊密碼
func (s *UserService) ChangePassword(ctx context.Context, id primitive.ObjectID, payload *dto.ChangePasswordDto) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("user not found")
		}
		return cErr.DatabaseError("database GetByID error")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.OldPassword)); err != nil {
		return cErr.Unauthorized("old password mismatch")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(payload.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return cErr.InternalServer("password hash error")
	}
	if _, err := s.userRepo.UpdateByID(ctx, id, bson.M{"password": string(hash)}); err != nil {
		return cErr.DatabaseError("database ChangePassword error")
	}
	return nil
}

// 軟刪除用戶
func (s *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := s.userRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("user not found")
		}
		return cErr.DatabaseError("database DeleteUser error")
	}
	return nil
}
