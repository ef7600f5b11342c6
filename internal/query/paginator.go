package query

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/pkg/response"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// ErrNilCollection Paginate 的前置條件：collection 不可為 nil
var ErrNilCollection = errors.New("paginate: collection is nil")

// Collection 是 Paginator 對文件儲存層的最小依賴
type Collection[T any] interface {
	EntityName() string
	StringFields() []string
	Find(ctx context.Context, conditions bson.M, opts Options) ([]T, error)
	Count(ctx context.Context, conditions bson.M) (int64, error)
}

// Extras 呼叫端的額外設定
type Extras struct {
	// 搜尋時額外排除的欄位
	ExcludeFromSearch []string
	// 直接合併進條件的原生查詢（如 {tags: {$in: [...]}}）
	BaseQuery bson.M
}

// Result 統一的分頁結果
type Result[T any] struct {
	Data       []T
	Pagination response.Pagination
}

// Envelope 以複數化實體名稱為 key 的回應形狀
func (r *Result[T]) Envelope(entityName string) map[string]any {
	return map[string]any{
		Pluralize(entityName): map[string]any{
			"data":       r.Data,
			"pagination": r.Pagination,
		},
	}
}

// 具名參數，其餘 query key 一律視為等值 filter
var reservedParams = map[string]struct{}{
	"page":   {},
	"limit":  {},
	"search": {},
}

// Paginate 依 request query 參數組出描述，並行執行 count + find 後
// 回傳統一的分頁結果。count 與 find 針對同一組條件（非分頁子集）。
func Paginate[T any](ctx context.Context, coll Collection[T], params map[string]string, extras *Extras) (*Result[T], error) {
	if coll == nil {
		return nil, ErrNilCollection
	}

	filters := make(map[string]string)
	for key, value := range params {
		if _, reserved := reservedParams[key]; reserved {
			continue
		}
		filters[key] = value
	}

	builder := NewBuilder(coll.StringFields()).
		WithPagination(params["page"], params["limit"]).
		WithFilters(filters)
	if extras != nil {
		builder.WithSearch(params["search"], extras.ExcludeFromSearch...)
		if extras.BaseQuery != nil {
			builder.WithBaseQuery(extras.BaseQuery)
		}
	} else {
		builder.WithSearch(params["search"])
	}
	descriptor := builder.Build()
	normalizeRefFilters(descriptor.Conditions)

	var (
		data  []T
		total int64
	)
	// count 與 find 互相獨立，並行送出
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		found, err := coll.Find(groupCtx, descriptor.Conditions, descriptor.Options)
		if err != nil {
			return err
		}
		data = found
		return nil
	})
	group.Go(func() error {
		count, err := coll.Count(groupCtx, descriptor.Conditions)
		if err != nil {
			return err
		}
		total = count
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	if data == nil {
		data = []T{}
	}
	limit := descriptor.Options.Limit
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return &Result[T]{
		Data: data,
		Pagination: response.Pagination{
			Page:       descriptor.Options.Page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// normalizeRefFilters 將關聯欄位的 hex 字串轉成 ObjectID，否則等值比對永遠落空
func normalizeRefFilters(conditions bson.M) {
	for _, key := range []string{"author", "ownerId", "customerId"} {
		if raw, ok := conditions[key].(string); ok {
			if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
				conditions[key] = oid
			}
		}
	}
}

// Pluralize 實體名稱複數化（envelope key 用）
func Pluralize(name string) string {
	name = strings.ToLower(name)
	switch {
	case name == "":
		return name
	case strings.HasSuffix(name, "y") && !strings.HasSuffix(name, "ay") &&
		!strings.HasSuffix(name, "ey") && !strings.HasSuffix(name, "oy") && !strings.HasSuffix(name, "uy"):
		return name[:len(name)-1] + "ies"
	case strings.HasSuffix(name, "s") || strings.HasSuffix(name, "x") ||
		strings.HasSuffix(name, "ch") || strings.HasSuffix(name, "sh"):
		return name + "es"
	default:
		return name + "s"
	}
}
