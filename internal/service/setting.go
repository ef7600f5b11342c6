package service

import (
	"context"
	"errors"

	"storefront/internal/database/mongodb/model"
	"storefront/internal/database/mongodb/repository"
	"storefront/internal/dto"
	cErr "storefront/internal/pkg/error"
	"storefront/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SettingService struct {
	trace       *telemetry.Trace
	settingRepo *repository.SettingRepository
}

func NewSettingService(trace *telemetry.Trace, settingRepo *repository.SettingRepository) *SettingService {
	return &SettingService{trace: trace, settingRepo: settingRepo}
}

// Upsert 依 key 寫入設定；不存在則建立
func (s *SettingService) Upsert(ctx context.Context, payload *dto.UpsertSettingDto) (*model.Setting, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	existing, err := s.settingRepo.FindByKey(ctx, payload.Key)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.DatabaseError("database FindByKey error")
		}
		created, err := s.settingRepo.Create(ctx, &model.Setting{
			ID:    primitive.NewObjectID(),
			Key:   payload.Key,
			Value: payload.Value,
		})
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, cErr.Conflict("setting key already exists")
			}
			return nil, cErr.DatabaseError("database CreateSetting error")
		}
		return created, nil
	}

	updated, err := s.settingRepo.UpdateByID(ctx, existing.ID, bson.M{"value": payload.Value})
	if err != nil {
		return nil, cErr.DatabaseError("database UpdateSetting error")
	}
	return updated, nil
}

func (s *SettingService) GetByKey(ctx context.Context, key string) (*model.Setting, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	setting, err := s.settingRepo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("setting not found")
		}
		return nil, cErr.DatabaseError("database FindByKey error")
	}
	return setting, nil
}

func (s *SettingService) List(ctx context.Context) ([]model.Setting, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	settings, err := s.settingRepo.List(ctx)
	if err != nil {
		return nil, cErr.DatabaseError("database ListSettings error")
	}
	return settings, nil
}

func (s *SettingService) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := s.settingRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("setting not found")
		}
		return cErr.DatabaseError("database DeleteSetting error")
	}
	return nil
}
