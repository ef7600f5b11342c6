package service

import (
	"context"
	"errors"

	"storefront/internal/database/mongodb/model"
	"storefront/internal/database/mongodb/repository"
	"storefront/internal/dto"
	cErr "storefront/internal/pkg/error"
	"storefront/internal/telemetry"
	"storefront/internal/tenant"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TaxonomyService 標籤與分類共用一個 service，行為幾乎相同
type TaxonomyService struct {
	trace   *telemetry.Trace
	tagRepo *repository.TagRepository
	catRepo *repository.CategoryRepository
}

func NewTaxonomyService(trace *telemetry.Trace, tagRepo *repository.TagRepository, catRepo *repository.CategoryRepository) *TaxonomyService {
	return &TaxonomyService{trace: trace, tagRepo: tagRepo, catRepo: catRepo}
}

// ─── Tags ──────────────────────────────────────────────────────────────────────

func (s *TaxonomyService) CreateTag(ctx context.Context, payload *dto.CreateTagDto) (*model.Tag, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	slug := payload.Slug
	if slug == "" {
		slug = tenant.Slugify(payload.Name)
	}
	tag, err := s.tagRepo.Create(ctx, &model.Tag{
		ID:   primitive.NewObjectID(),
		Name: payload.Name,
		Slug: slug,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Conflict("tag slug already exists")
		}
		return nil, cErr.DatabaseError("database CreateTag error")
	}
	return tag, nil
}

func (s *TaxonomyService) ListTags(ctx context.Context) ([]model.Tag, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		return nil, cErr.DatabaseError("database ListTags error")
	}
	return tags, nil
}

func (s *TaxonomyService) UpdateTag(ctx context.Context, id primitive.ObjectID, payload *dto.UpdateTagDto) (*model.Tag, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	set := bson.M{}
	if payload.Name != nil {
		set["name"] = *payload.Name
	}
	if payload.Slug != nil {
		set["slug"] = *payload.Slug
	}
	if len(set) == 0 {
		return nil, cErr.BadRequest("no fields to update")
	}
	tag, err := s.tagRepo.UpdateByID(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("tag not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Conflict("tag slug already exists")
		}
		return nil, cErr.DatabaseError("database UpdateTag error")
	}
	return tag, nil
}

func (s *TaxonomyService) DeleteTag(ctx context.Context, id primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := s.tagRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("tag not found")
		}
		return cErr.DatabaseError("database DeleteTag error")
	}
	return nil
}

// ─── Categories ────────────────────────────────────────────────────────────────

func (s *TaxonomyService) CreateCategory(ctx context.Context, payload *dto.CreateCategoryDto) (*model.Category, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	slug := payload.Slug
	if slug == "" {
		slug = tenant.Slugify(payload.Name)
	}
	category, err := s.catRepo.Create(ctx, &model.Category{
		ID:          primitive.NewObjectID(),
		Name:        payload.Name,
		Slug:        slug,
		Description: payload.Description,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Conflict("category slug already exists")
		}
		return nil, cErr.DatabaseError("database CreateCategory error")
	}
	return category, nil
}

func (s *TaxonomyService) ListCategories(ctx context.Context) ([]model.Category, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	categories, err := s.catRepo.List(ctx)
	if err != nil {
		return nil, cErr.DatabaseError("database ListCategories error")
	}
	return categories, nil
}

func (s *TaxonomyService) UpdateCategory(ctx context.Context, id primitive.ObjectID, payload *dto.UpdateCategoryDto) (*model.Category, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	set := bson.M{}
	if payload.Name != nil {
		set["name"] = *payload.Name
	}
	if payload.Slug != nil {
		set["slug"] = *payload.Slug
	}
	if payload.Description != nil {
		set["description"] = *payload.Description
	}
	if len(set) == 0 {
		return nil, cErr.BadRequest("no fields to update")
	}
	category, err := s.catRepo.UpdateByID(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("category not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Conflict("category slug already exists")
		}
		return nil, cErr.DatabaseError("database UpdateCategory error")
	}
	return category, nil
}

func (s *TaxonomyService) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := s.catRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("category not found")
		}
		return cErr.DatabaseError("database DeleteCategory error")
	}
	return nil
}
