package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Shop 中央目錄裡的租戶紀錄；subdomain 為對外識別，databaseName 為
// 該租戶隔離資料庫的邏輯名稱（建立時固定為 shop_<subdomain>）。
type Shop struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	Name         string             `json:"name" bson:"name"`
	Subdomain    string             `json:"subdomain" bson:"subdomain"`
	DatabaseName string             `json:"databaseName" bson:"databaseName"`
	OwnerID      primitive.ObjectID `json:"ownerId" bson:"ownerId"`
	IsActive     bool               `json:"isActive" bson:"isActive"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var ShopIndexes = []mongo.IndexModel{
	{
		// 唯一索引兜底 subdomain 的 check-and-increment 競態
		Keys:    bson.D{{Key: "subdomain", Value: 1}},
		Options: options.Index().SetName("uniq_subdomain").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "ownerId", Value: 1}},
		Options: options.Index().SetName("idx_ownerId"),
	},
}
