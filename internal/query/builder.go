package query

import (
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 10
)

// 搜尋時固定排除的欄位（識別碼、密碼、時間戳記）
var searchExcludedFields = map[string]struct{}{
	"_id":       {},
	"password":  {},
	"createdAt": {},
	"updatedAt": {},
	"deletedAt": {},
}

// Options 分頁與排序設定，Skip 恆等於 (Page-1)*Limit
type Options struct {
	Page  int64
	Limit int64
	Skip  int64
	Sort  bson.D
}

// Descriptor 查詢描述，由 Builder 累積而成，不含任何 I/O
type Descriptor struct {
	Conditions bson.M
	Options    Options
}

// Builder 累積 filter / search / pagination 意圖。
// stringFields 為實體的字串型欄位（bson 名稱），供 WithSearch 使用。
type Builder struct {
	conditions   bson.M
	options      Options
	stringFields []string
}

func NewBuilder(stringFields []string) *Builder {
	return &Builder{
		conditions:   bson.M{},
		stringFields: stringFields,
		options: Options{
			Page:  DefaultPage,
			Limit: DefaultLimit,
			Skip:  0,
		},
	}
}

// WithPagination 正規化 page / limit；非法或缺漏時回退預設值
func (b *Builder) WithPagination(page, limit string) *Builder {
	p := parsePositive(page, DefaultPage)
	l := parsePositive(limit, DefaultLimit)
	b.options.Page = p
	b.options.Limit = l
	b.options.Skip = (p - 1) * l
	return b
}

// WithSearch 對所有可搜尋欄位建立大小寫不敏感的子字串比對（$or）。
// term 會先經 regexp.QuoteMeta 跳脫，使用者輸入的 metacharacter 以字面值比對。
// 可搜尋欄位全數被排除時靜默略過。
func (b *Builder) WithSearch(term string, extraExcluded ...string) *Builder {
	if term == "" {
		return b
	}

	excluded := make(map[string]struct{}, len(searchExcludedFields)+len(extraExcluded))
	for f := range searchExcludedFields {
		excluded[f] = struct{}{}
	}
	for _, f := range extraExcluded {
		excluded[f] = struct{}{}
	}

	pattern := regexp.QuoteMeta(term)
	var or []bson.M
	for _, field := range b.stringFields {
		if _, skip := excluded[field]; skip {
			continue
		}
		or = append(or, bson.M{field: bson.M{"$regex": pattern, "$options": "i"}})
	}
	if len(or) == 0 {
		return b
	}
	b.conditions["$or"] = or
	return b
}

// 布林型過濾欄位；query string 的 "true" 轉 true，其餘值轉 false
var booleanFilterFields = map[string]struct{}{
	"published": {},
	"isActive":  {},
}

// WithFilters 對每個非空值設定等值條件；布林欄位先轉型，否則字串值比對不到
func (b *Builder) WithFilters(filters map[string]string) *Builder {
	for key, value := range filters {
		if value == "" {
			continue
		}
		if _, boolean := booleanFilterFields[key]; boolean {
			b.conditions[key] = value == "true"
			continue
		}
		b.conditions[key] = value
	}
	return b
}

// WithBaseQuery 合併呼叫端的原生條件，相同 key 後者覆寫前者
func (b *Builder) WithBaseQuery(base bson.M) *Builder {
	for key, value := range base {
		b.conditions[key] = value
	}
	return b
}

// Build 回傳累積結果的快照；排序預設為 createdAt 倒序
func (b *Builder) Build() Descriptor {
	conditions := make(bson.M, len(b.conditions))
	for key, value := range b.conditions {
		conditions[key] = value
	}
	opts := b.options
	if opts.Sort == nil {
		opts.Sort = bson.D{{Key: "createdAt", Value: -1}}
	}
	return Descriptor{Conditions: conditions, Options: opts}
}

func parsePositive(raw string, fallback int64) int64 {
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
