package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"storefront/internal/core"
	"storefront/internal/query"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store 包裝單一 collection 的泛型 CRUD 與軟刪除。
// 預設所有讀取都會附加 deletedAt == null 條件，除非透過 WithTrashed 取得副本。
type Store[T any] struct {
	entityName     string
	collection     *mongo.Collection
	includeTrashed bool
}

func New[T any](database *mongo.Database, entityName string, collection core.MongoCollection) *Store[T] {
	return &Store[T]{
		entityName: entityName,
		collection: database.Collection(string(collection)),
	}
}

// WithTrashed 回傳包含軟刪除文件的讀取視圖
func (s *Store[T]) WithTrashed() *Store[T] {
	copied := *s
	copied.includeTrashed = true
	return &copied
}

func (s *Store[T]) EntityName() string {
	return s.entityName
}

func (s *Store[T]) Collection() *mongo.Collection {
	return s.collection
}

// StringFields 回傳實體所有字串型欄位的 bson 名稱，供搜尋欄位探索使用
func (s *Store[T]) StringFields() []string {
	var zero T
	t := reflect.TypeOf(zero)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	var fields []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Type.Kind() != reflect.String {
			continue
		}
		name := bsonFieldName(field)
		if name == "" {
			continue
		}
		fields = append(fields, name)
	}
	return fields
}

// Create 寫入單一文件；自動補上 _id 與 UTC 時間戳記
func (s *Store[T]) Create(ctx context.Context, doc *T) (*T, error) {
	now := time.Now().UTC()
	stampDocument(doc, now)

	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("create failed: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		setObjectID(doc, oid)
	}
	return doc, nil
}

func (s *Store[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var doc T
	filter := s.scoped(bson.M{"_id": id})
	if err := s.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("findById failed: %w", err)
	}
	return &doc, nil
}

func (s *Store[T]) FindOne(ctx context.Context, conditions bson.M) (*T, error) {
	var doc T
	if err := s.collection.FindOne(ctx, s.scoped(conditions)).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("findOne failed: %w", err)
	}
	return &doc, nil
}

// Find 依查詢描述的分頁/排序讀取一頁文件
func (s *Store[T]) Find(ctx context.Context, conditions bson.M, opts query.Options) ([]T, error) {
	findOptions := options.Find()
	if opts.Limit > 0 {
		findOptions.SetSkip(opts.Skip).SetLimit(opts.Limit)
	}
	if opts.Sort != nil {
		findOptions.SetSort(opts.Sort)
	}

	cursor, err := s.collection.Find(ctx, s.scoped(conditions), findOptions)
	if err != nil {
		return nil, fmt.Errorf("find failed: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("find failed: %w", err)
	}
	return docs, nil
}

func (s *Store[T]) Count(ctx context.Context, conditions bson.M) (int64, error) {
	total, err := s.collection.CountDocuments(ctx, s.scoped(conditions))
	if err != nil {
		return 0, fmt.Errorf("count failed: %w", err)
	}
	return total, nil
}

// UpdateByID 以 $set 更新並回傳更新後的文件
func (s *Store[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*T, error) {
	update := bson.M{
		"$set":         set,
		"$currentDate": bson.M{"updatedAt": true},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc T
	err := s.collection.FindOneAndUpdate(ctx, s.scoped(bson.M{"_id": id}), update, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("updateById failed: %w", err)
	}
	return &doc, nil
}

// IncrementByID 原子加減數值欄位（如庫存），回傳更新後的文件
func (s *Store[T]) IncrementByID(ctx context.Context, id primitive.ObjectID, field string, delta int64) (*T, error) {
	update := bson.M{
		"$inc":         bson.M{field: delta},
		"$currentDate": bson.M{"updatedAt": true},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc T
	err := s.collection.FindOneAndUpdate(ctx, s.scoped(bson.M{"_id": id}), update, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("incrementById failed: %w", err)
	}
	return &doc, nil
}

// DecrementIfAtLeast 僅在欄位現值 >= amount 時原子遞減，讀取與更新間的
// 競態由 $gte 守門條件擋下。條件不符（含文件不存在）回傳 mongo.ErrNoDocuments。
func (s *Store[T]) DecrementIfAtLeast(ctx context.Context, id primitive.ObjectID, field string, amount int64) error {
	guard, update := decrementGuard(field, amount)
	guard["_id"] = id
	result, err := s.collection.UpdateOne(ctx, s.scoped(guard), update)
	if err != nil {
		return fmt.Errorf("decrementIfAtLeast failed: %w", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// decrementGuard 組出 $gte 守門條件與對應的 $inc 更新
func decrementGuard(field string, amount int64) (bson.M, bson.M) {
	return bson.M{field: bson.M{"$gte": amount}},
		bson.M{
			"$inc":         bson.M{field: -amount},
			"$currentDate": bson.M{"updatedAt": true},
		}
}

// DeleteByID 硬刪除
func (s *Store[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("deleteById failed: %w", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SoftDelete 標記 deletedAt，不移除文件
func (s *Store[T]) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{
		"$currentDate": bson.M{"deletedAt": true, "updatedAt": true},
	}
	result, err := s.collection.UpdateOne(ctx, s.scoped(bson.M{"_id": id}), update)
	if err != nil {
		return fmt.Errorf("softDelete failed: %w", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// PurgeDeletedBefore 硬刪除 deletedAt 早於 cutoff 的文件（purge cron 用）
func (s *Store[T]) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, bson.M{"deletedAt": bson.M{"$ne": nil, "$lt": cutoff}})
	if err != nil {
		return 0, fmt.Errorf("purge failed: %w", err)
	}
	return result.DeletedCount, nil
}

// scoped 注入軟刪除過濾；{deletedAt: null} 同時涵蓋欄位缺漏與 null
func (s *Store[T]) scoped(conditions bson.M) bson.M {
	if s.includeTrashed {
		return conditions
	}
	if _, exists := conditions["deletedAt"]; exists {
		return conditions
	}
	filter := make(bson.M, len(conditions)+1)
	for key, value := range conditions {
		filter[key] = value
	}
	filter["deletedAt"] = nil
	return filter
}

func bsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("bson")
	if tag == "-" {
		return ""
	}
	if tag == "" {
		return strings.ToLower(field.Name)
	}
	return strings.Split(tag, ",")[0]
}

// stampDocument 設定 _id / createdAt / updatedAt（欄位存在時）
func stampDocument(doc any, now time.Time) {
	v := reflect.ValueOf(doc)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}

	if f := v.FieldByName("ID"); f.IsValid() && f.CanSet() && f.Type() == reflect.TypeOf(primitive.ObjectID{}) {
		if f.Interface().(primitive.ObjectID).IsZero() {
			f.Set(reflect.ValueOf(primitive.NewObjectID()))
		}
	}
	for _, name := range []string{"CreatedAt", "UpdatedAt"} {
		if f := v.FieldByName(name); f.IsValid() && f.CanSet() && f.Type() == reflect.TypeOf(time.Time{}) {
			if f.Interface().(time.Time).IsZero() {
				f.Set(reflect.ValueOf(now))
			}
		}
	}
}

func setObjectID(doc any, oid primitive.ObjectID) {
	v := reflect.ValueOf(doc)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return
	}
	v = v.Elem()
	if f := v.FieldByName("ID"); f.IsValid() && f.CanSet() && f.Type() == reflect.TypeOf(primitive.ObjectID{}) {
		f.Set(reflect.ValueOf(oid))
	}
}
