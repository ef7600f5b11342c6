package repository

import (
	"storefront/config"
	"storefront/internal/core"
	client "storefront/internal/database/client"
	"storefront/internal/query"

	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// 統一管理所有中央目錄 repository
type MongoDBRepository struct {
	userRepo    *UserRepository
	shopRepo    *ShopRepository
	blogRepo    *BlogRepository
	tagRepo     *TagRepository
	catRepo     *CategoryRepository
	contactRepo *ContactRepository
	settingRepo *SettingRepository
}

func NewMongoDBRepository(
	userRepo *UserRepository,
	shopRepo *ShopRepository,
	blogRepo *BlogRepository,
	tagRepo *TagRepository,
	catRepo *CategoryRepository,
	contactRepo *ContactRepository,
	settingRepo *SettingRepository,
) *MongoDBRepository {
	return &MongoDBRepository{
		userRepo:    userRepo,
		shopRepo:    shopRepo,
		blogRepo:    blogRepo,
		tagRepo:     tagRepo,
		catRepo:     catRepo,
		contactRepo: contactRepo,
		settingRepo: settingRepo,
	}
}

// NewDirectoryDatabase 中央目錄資料庫（users / shops / blogs ...）
func NewDirectoryDatabase(mongoClient *client.MongoClient, conf *config.Configuration) *mongo.Database {
	name := conf.MongoDB.Database
	if name == "" {
		name = string(core.MongoDBDirectory)
	}
	return mongoClient.Client().Database(name)
}

// defaultListOptions 不分頁、createdAt 倒序
func defaultListOptions() query.Options {
	return query.Options{Sort: bson.D{{Key: "createdAt", Value: -1}}}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewDirectoryDatabase,
	NewUserRepository,
	NewShopRepository,
	NewBlogRepository,
	NewTagRepository,
	NewCategoryRepository,
	NewContactRepository,
	NewSettingRepository,
	NewMongoDBRepository,
)
