package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Blog struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id"`
	Title     string               `json:"title" bson:"title"`
	Slug      string               `json:"slug" bson:"slug"`
	Excerpt   string               `json:"excerpt,omitempty" bson:"excerpt,omitempty"`
	Content   string               `json:"content" bson:"content"`
	Image     string               `json:"image,omitempty" bson:"image,omitempty"`
	Published bool                 `json:"published" bson:"published"`
	Author    primitive.ObjectID   `json:"author" bson:"author"`
	Category  primitive.ObjectID   `json:"category,omitempty" bson:"category,omitempty"`
	Tags      []primitive.ObjectID `json:"tags,omitempty" bson:"tags,omitempty"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt" bson:"updatedAt"`
	DeletedAt *time.Time           `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

var BlogIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetName("uniq_slug").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_createdAt_desc"),
	},
	{
		Keys:    bson.D{{Key: "published", Value: 1}},
		Options: options.Index().SetName("idx_published"),
	},
	{
		Keys:    bson.D{{Key: "author", Value: 1}},
		Options: options.Index().SetName("idx_author"),
	},
}
