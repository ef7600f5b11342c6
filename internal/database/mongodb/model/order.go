package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type OrderItem struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
	Name      string             `json:"name" bson:"name"`
	Quantity  int64              `json:"quantity" bson:"quantity"`
	UnitPrice int64              `json:"unitPrice" bson:"unitPrice"`
}

// Order 租戶資料庫專屬實體
type Order struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	Number     string             `json:"number" bson:"number"`
	CustomerID primitive.ObjectID `json:"customerId" bson:"customerId"`
	Items      []OrderItem        `json:"items" bson:"items"`
	Total      int64              `json:"total" bson:"total"`
	Currency   string             `json:"currency" bson:"currency"`
	Status     OrderStatus        `json:"status" bson:"status"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
	DeletedAt  *time.Time         `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

var OrderIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "number", Value: 1}},
		Options: options.Index().SetName("uniq_number").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "customerId", Value: 1}},
		Options: options.Index().SetName("idx_customerId"),
	},
	{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_createdAt_desc"),
	},
}
