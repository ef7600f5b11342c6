package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type sampleDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	Title     string             `bson:"title"`
	Slug      string             `bson:"slug,omitempty"`
	Hidden    string             `bson:"-"`
	Untagged  string
	Views     int64     `bson:"views"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func TestStringFields(t *testing.T) {
	s := &Store[sampleDoc]{entityName: "sample"}

	fields := s.StringFields()
	assert.Equal(t, []string{"title", "slug", "untagged"}, fields)
}

func TestScopedAddsSoftDeleteFilter(t *testing.T) {
	s := &Store[sampleDoc]{}

	filter := s.scoped(bson.M{"title": "x"})
	assert.Equal(t, bson.M{"title": "x", "deletedAt": nil}, filter)
}

func TestScopedDoesNotMutateInput(t *testing.T) {
	s := &Store[sampleDoc]{}
	conditions := bson.M{"title": "x"}

	_ = s.scoped(conditions)
	assert.NotContains(t, conditions, "deletedAt")
}

func TestScopedRespectsExplicitDeletedAt(t *testing.T) {
	s := &Store[sampleDoc]{}

	filter := s.scoped(bson.M{"deletedAt": bson.M{"$ne": nil}})
	assert.Equal(t, bson.M{"deletedAt": bson.M{"$ne": nil}}, filter)
}

func TestWithTrashedSkipsFilter(t *testing.T) {
	s := &Store[sampleDoc]{entityName: "sample"}
	trashed := s.WithTrashed()

	assert.Equal(t, bson.M{"title": "x"}, trashed.scoped(bson.M{"title": "x"}))
	// 原本的視圖不受影響
	assert.Contains(t, s.scoped(bson.M{"title": "x"}), "deletedAt")
	assert.Equal(t, "sample", trashed.EntityName())
}

func TestStampDocument(t *testing.T) {
	now := time.Now().UTC()
	doc := &sampleDoc{}

	stampDocument(doc, now)
	assert.False(t, doc.ID.IsZero())
	assert.Equal(t, now, doc.CreatedAt)
	assert.Equal(t, now, doc.UpdatedAt)
}

func TestStampDocumentKeepsExistingID(t *testing.T) {
	existing := primitive.NewObjectID()
	doc := &sampleDoc{ID: existing}

	stampDocument(doc, time.Now())
	assert.Equal(t, existing, doc.ID)
}

func TestDecrementGuard(t *testing.T) {
	guard, update := decrementGuard("stock", 3)

	// 現值不足時條件不成立，更新不會執行
	assert.Equal(t, bson.M{"stock": bson.M{"$gte": int64(3)}}, guard)
	assert.Equal(t, bson.M{
		"$inc":         bson.M{"stock": int64(-3)},
		"$currentDate": bson.M{"updatedAt": true},
	}, update)
}

func TestDecrementGuardScopedWithID(t *testing.T) {
	s := &Store[sampleDoc]{}
	id := primitive.NewObjectID()

	guard, _ := decrementGuard("stock", 1)
	guard["_id"] = id
	filter := s.scoped(guard)
	assert.Equal(t, bson.M{
		"_id":       id,
		"stock":     bson.M{"$gte": int64(1)},
		"deletedAt": nil,
	}, filter)
}

func TestBsonFieldName(t *testing.T) {
	s := &Store[sampleDoc]{}
	fields := s.StringFields()
	require.NotContains(t, fields, "hidden")
	require.NotContains(t, fields, "-")
}
