package core

import "go.mongodb.org/mongo-driver/bson"

// ─── Database Types ────────────────────────────────────────────────────────────

type MongoDatabaseName string
type MongoCollection string
type RedisKey string
type FluentdSubTag string

const (
	// 中央目錄資料庫預設名稱（可被 config.MongoDB.Database 覆寫）
	MongoDBDirectory MongoDatabaseName = "storefront"
	// 租戶資料庫名稱前綴，實際名稱為 shop_<subdomain>
	TenantDatabasePrefix = "shop_"
)

// 中央目錄 collections
const (
	MongoCollectionUsers      MongoCollection = "users"
	MongoCollectionShops      MongoCollection = "shops"
	MongoCollectionBlogs      MongoCollection = "blogs"
	MongoCollectionTags       MongoCollection = "tags"
	MongoCollectionCategories MongoCollection = "categories"
	MongoCollectionContacts   MongoCollection = "contacts"
	MongoCollectionSettings   MongoCollection = "settings"
)

// 租戶資料庫 collections
const (
	MongoCollectionProducts  MongoCollection = "products"
	MongoCollectionOrders    MongoCollection = "orders"
	MongoCollectionCustomers MongoCollection = "customers"
)

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyLoginAttempt RedisKey = "login_attempt"  // 登入嘗試限流
	RedisKeyBlacklist    RedisKey = "blacklist_token" // 黑名單 token
	RedisKeyServerName   RedisKey = "storefront"      // 伺服器名稱
)

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
)

type ListOptions struct {
	Filter bson.M `json:"filter,omitempty" bson:"filter,omitempty"`
	Page   int64  `json:"page,omitempty" bson:"page,omitempty"`
	Size   int64  `json:"size,omitempty" bson:"size,omitempty"`
}
