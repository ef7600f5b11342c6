package service

import (
	"context"
	"errors"

	"storefront/internal/core"
	"storefront/internal/database/mongodb/model"
	"storefront/internal/database/mongodb/repository"
	"storefront/internal/dto"
	cErr "storefront/internal/pkg/error"
	"storefront/internal/query"
	"storefront/internal/telemetry"
	"storefront/internal/tenant"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BlogService struct {
	trace    *telemetry.Trace
	blogRepo *repository.BlogRepository
}

func NewBlogService(trace *telemetry.Trace, blogRepo *repository.BlogRepository) *BlogService {
	return &BlogService{trace: trace, blogRepo: blogRepo}
}

// 建立文章；author 由登入者帶入
func (s *BlogService) CreateBlog(ctx context.Context, authorID primitive.ObjectID, payload *dto.CreateBlogDto) (*model.Blog, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	slug := payload.Slug
	if slug == "" {
		slug = tenant.Slugify(payload.Title)
	}
	blog := &model.Blog{
		ID:        primitive.NewObjectID(),
		Title:     payload.Title,
		Slug:      slug,
		Excerpt:   payload.Excerpt,
		Content:   payload.Content,
		Image:     payload.Image,
		Published: payload.Published,
		Author:    authorID,
	}
	if payload.Category != "" {
		categoryID, err := primitive.ObjectIDFromHex(payload.Category)
		if err != nil {
			return nil, cErr.BadRequest("invalid category id")
		}
		blog.Category = categoryID
	}
	tags, err := parseObjectIDs(payload.Tags)
	if err != nil {
		return nil, cErr.BadRequest("invalid tag id")
	}
	blog.Tags = tags

	created, err := s.blogRepo.Create(ctx, blog)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Conflict("slug already exists")
		}
		return nil, cErr.DatabaseError("database CreateBlog error")
	}
	return created, nil
}

func (s *BlogService) GetBlogByID(ctx context.Context, id primitive.ObjectID) (*model.Blog, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("blog not found")
		}
		return nil, cErr.DatabaseError("database GetBlogByID error")
	}
	return blog, nil
}

// 公開端以 slug 取文章，未發佈視同不存在
func (s *BlogService) GetPublishedBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	blog, err := s.blogRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("blog not found")
		}
		return nil, cErr.DatabaseError("database GetPublishedBySlug error")
	}
	if !blog.Published {
		return nil, cErr.NotFound("blog not found")
	}
	return blog, nil
}

// 管理端列表，query 參數原樣轉交 Paginator
func (s *BlogService) ListBlogs(ctx context.Context, params map[string]string, extras *query.Extras) (*query.Result[model.Blog], error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	result, err := query.Paginate(ctx, s.blogRepo.Store(), params, extras)
	if err != nil {
		return nil, cErr.DatabaseError("database ListBlogs error")
	}
	return result, nil
}

// 公開端列表固定只出已發佈文章
func (s *BlogService) ListPublished(ctx context.Context, params map[string]string) (*query.Result[model.Blog], error) {
	return s.ListBlogs(ctx, params, &query.Extras{BaseQuery: bson.M{"published": true}})
}

// 更新文章；非 admin 僅能編輯自己的文章
func (s *BlogService) UpdateBlog(ctx context.Context, id primitive.ObjectID, actorID string, actorRole core.Role, payload *dto.UpdateBlogDto) (*model.Blog, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	existing, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("blog not found")
		}
		return nil, cErr.DatabaseError("database GetByID error")
	}
	if !actorRole.CanManage(actorID, existing.Author.Hex()) {
		return nil, cErr.Forbidden("not the author")
	}

	set := bson.M{}
	if payload.Title != nil {
		set["title"] = *payload.Title
	}
	if payload.Slug != nil {
		set["slug"] = *payload.Slug
	}
	if payload.Excerpt != nil {
		set["excerpt"] = *payload.Excerpt
	}
	if payload.Content != nil {
		set["content"] = *payload.Content
	}
	if payload.Image != nil {
		set["image"] = *payload.Image
	}
	if payload.Published != nil {
		set["published"] = *payload.Published
	}
	if payload.Category != nil {
		categoryID, err := primitive.ObjectIDFromHex(*payload.Category)
		if err != nil {
			return nil, cErr.BadRequest("invalid category id")
		}
		set["category"] = categoryID
	}
	if payload.Tags != nil {
		tags, err := parseObjectIDs(*payload.Tags)
		if err != nil {
			return nil, cErr.BadRequest("invalid tag id")
		}
		set["tags"] = tags
	}
	if len(set) == 0 {
		return nil, cErr.BadRequest("no fields to update")
	}

	blog, err := s.blogRepo.UpdateByID(ctx, id, set)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Conflict("slug already exists")
		}
		return nil, cErr.DatabaseError("database UpdateBlog error")
	}
	return blog, nil
}

// 軟刪除文章；權限規則同更新
func (s *BlogService) DeleteBlog(ctx context.Context, id primitive.ObjectID, actorID string, actorRole core.Role) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	existing, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("blog not found")
		}
		return cErr.DatabaseError("database GetByID error")
	}
	if !actorRole.CanManage(actorID, existing.Author.Hex()) {
		return cErr.Forbidden("not the author")
	}
	if err := s.blogRepo.SoftDelete(ctx, id); err != nil {
		return cErr.DatabaseError("database DeleteBlog error")
	}
	return nil
}

func parseObjectIDs(hexes []string) ([]primitive.ObjectID, error) {
	if len(hexes) == 0 {
		return nil, nil
	}
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, hex := range hexes {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
