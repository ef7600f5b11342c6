package service

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core"
	"storefront/internal/database/client"
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
	"go.uber.org/zap"
)

// subdomain 候選碰撞時最多往後嘗試的序號
const maxSlugAttempts = 50

type ShopService struct {
	logger      *zap.Logger
	trace       *telemetry.Trace
	mongoClient *client.MongoClient
	shopRepo    *repository.ShopRepository
	userRepo    *repository.UserRepository
	tenants     *tenant.Manager
	mailer      Mailer
}

func NewShopService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	mongoClient *client.MongoClient,
	shopRepo *repository.ShopRepository,
	userRepo *repository.UserRepository,
	tenants *tenant.Manager,
	mailer Mailer,
) *ShopService {
	return &ShopService{
		logger:      logger,
		trace:       trace,
		mongoClient: mongoClient,
		shopRepo:    shopRepo,
		userRepo:    userRepo,
		tenants:     tenants,
		mailer:      mailer,
	}
}

// CreateShop 建立商店：
//  1. 由 name/subdomain 產生候選，碰撞時附加遞增序號（acme → acme1 → acme2）
//  2. 目錄紀錄與 owner 升級 merchant 在同一 Mongo session transaction 內完成
//  3. commit 後佈建租戶資料庫；佈建失敗則補償刪除目錄紀錄
func (s *ShopService) CreateShop(ctx context.Context, ownerID primitive.ObjectID, payload *dto.CreateShopDto) (shop *model.Shop, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	base := payload.Subdomain
	if base == "" {
		base = payload.Name
	}
	base = tenant.Slugify(base)
	if base == "" {
		returnedError = cErr.BadRequest("shop name yields empty subdomain")
		return nil, returnedError
	}

	subdomain, attempts, err := s.availableSubdomain(ctx, base)
	if err != nil {
		returnedError = err
		return nil, returnedError
	}

	shop = &model.Shop{
		ID:           primitive.NewObjectID(),
		Name:         payload.Name,
		Subdomain:    subdomain,
		DatabaseName: s.tenants.DatabaseName(subdomain),
		OwnerID:      ownerID,
		IsActive:     true,
	}
	meta := core.TraceShopProvisionMeta{
		Subdomain: subdomain,
		Database:  shop.DatabaseName,
		OwnerID:   ownerID.Hex(),
		Attempts:  attempts,
	}
	s.trace.ApplyTraceAttributes(span, meta)

	// 目錄紀錄與角色升級需要原子性
	session, err := s.mongoClient.Client().StartSession()
	if err != nil {
		returnedError = cErr.DatabaseError("start session error")
		return nil, returnedError
	}
	defer session.EndSession(ctx)

	var owner *model.User
	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		if _, err := s.shopRepo.Create(sessCtx, shop); err != nil {
			return nil, err
		}
		owner, err = s.userRepo.GetByID(sessCtx, ownerID)
		if err != nil {
			return nil, err
		}
		// admin 不降級
		if owner.Role != core.RoleAdmin && owner.Role != core.RoleMerchant {
			if _, err := s.userRepo.UpdateByID(sessCtx, ownerID, bson.M{"role": core.RoleMerchant}); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			returnedError = cErr.Conflict("subdomain already taken")
			return nil, returnedError
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			returnedError = cErr.NotFound("owner not found")
			return nil, returnedError
		}
		returnedError = cErr.DatabaseError("database CreateShop error")
		return nil, returnedError
	}

	// 租戶資料庫在交易外佈建（DDL 不能進 transaction）
	if _, err := s.tenants.GetOrCreate(ctx, shop.DatabaseName); err != nil {
		meta.Compensate = true
		s.trace.ApplyTraceAttributes(span, meta)
		s.logger.Error("tenant provisioning failed, compensating",
			zap.String("subdomain", subdomain), zap.Error(err))
		if delErr := s.shopRepo.DeleteByID(context.WithoutCancel(ctx), shop.ID); delErr != nil {
			s.logger.Error("compensation delete failed", zap.String("shop_id", shop.ID.Hex()), zap.Error(delErr))
		}
		returnedError = cErr.TenantConnectionError("tenant database provisioning failed")
		return nil, returnedError
	}

	s.logger.Info("shop created",
		zap.String("shop_id", shop.ID.Hex()),
		zap.String("subdomain", subdomain),
		zap.Int("slug_attempts", attempts))

	if owner != nil && owner.Email != "" {
		go func() {
			subject := fmt.Sprintf("[shop] %s is ready", shop.Name)
			body := fmt.Sprintf("Your shop %q has been provisioned at subdomain %s.", shop.Name, subdomain)
			if err := s.mailer.Send(context.Background(), owner.Email, subject, body); err != nil {
				s.logger.Warn("shop provisioned mail failed", zap.String("shop_id", shop.ID.Hex()), zap.Error(err))
			}
		}()
	}
	return shop, nil
}

// availableSubdomain 以 check-and-increment 找可用的 subdomain；
// 競態由 uniq_subdomain 索引兜底（Create 撞到 duplicate key 即回 conflict）。
func (s *ShopService) availableSubdomain(ctx context.Context, base string) (string, int, error) {
	candidate := base
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		if attempt > 0 {
			candidate = fmt.Sprintf("%s%d", base, attempt)
		}
		_, err := s.shopRepo.FindBySubdomain(ctx, candidate)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return candidate, attempt + 1, nil
		}
		if err != nil {
			return "", 0, cErr.DatabaseError("database FindBySubdomain error")
		}
	}
	return "", 0, cErr.Conflict("no available subdomain variant")
}

func (s *ShopService) GetShopByID(ctx context.Context, id primitive.ObjectID) (*model.Shop, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	shop, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("shop not found")
		}
		return nil, cErr.DatabaseError("database GetShopByID error")
	}
	return shop, nil
}

// ListShops 管理端列表
func (s *ShopService) ListShops(ctx context.Context, params map[string]string) (*query.Result[model.Shop], error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	result, err := query.Paginate(ctx, s.shopRepo.Store(), params, nil)
	if err != nil {
		return nil, cErr.DatabaseError("database ListShops error")
	}
	return result, nil
}

// ListMine 登入者自己的商店
func (s *ShopService) ListMine(ctx context.Context, ownerID primitive.ObjectID) ([]model.Shop, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	shops, err := s.shopRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, cErr.DatabaseError("database ListMine error")
	}
	return shops, nil
}

// UpdateShop 改名或啟停用；非 admin 僅能操作自己的商店
func (s *ShopService) UpdateShop(ctx context.Context, id primitive.ObjectID, actorID string, actorRole core.Role, payload *dto.UpdateShopDto) (*model.Shop, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	existing, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("shop not found")
		}
		return nil, cErr.DatabaseError("database GetByID error")
	}
	if !actorRole.CanManage(actorID, existing.OwnerID.Hex()) {
		return nil, cErr.Forbidden("not the shop owner")
	}

	set := bson.M{}
	if payload.Name != nil {
		set["name"] = *payload.Name
	}
	if payload.IsActive != nil {
		// 啟停用僅限 admin
		if actorRole != core.RoleAdmin {
			return nil, cErr.Forbidden("only admin can change shop activation")
		}
		set["isActive"] = *payload.IsActive
	}
	if len(set) == 0 {
		return nil, cErr.BadRequest("no fields to update")
	}

	shop, err := s.shopRepo.Store().UpdateByID(ctx, id, set)
	if err != nil {
		return nil, cErr.DatabaseError("database UpdateShop error")
	}
	return shop, nil
}
