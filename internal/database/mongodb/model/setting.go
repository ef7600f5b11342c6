package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Setting struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Key       string             `json:"key" bson:"key"`
	Value     string             `json:"value" bson:"value"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
	DeletedAt *time.Time         `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

var SettingIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetName("uniq_key").SetUnique(true),
	},
}
