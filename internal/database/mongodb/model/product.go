package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Product 租戶資料庫專屬實體
type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Name        string             `json:"name" bson:"name"`
	SKU         string             `json:"sku" bson:"sku"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	// 價格以最小貨幣單位存放（分）
	Price     int64      `json:"price" bson:"price"`
	Currency  string     `json:"currency" bson:"currency"`
	Stock     int64      `json:"stock" bson:"stock"`
	Published bool       `json:"published" bson:"published"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

var ProductIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "sku", Value: 1}},
		Options: options.Index().SetName("uniq_sku").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_createdAt_desc"),
	},
	{
		Keys:    bson.D{{Key: "published", Value: 1}},
		Options: options.Index().SetName("idx_published"),
	},
}
