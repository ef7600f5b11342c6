package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type article struct {
	Title string `bson:"title"`
}

// fakeCollection 記錄收到的條件與選項，回傳預先設定的結果
type fakeCollection struct {
	docs  []article
	total int64

	findErr  error
	countErr error

	gotConditions bson.M
	gotOptions    Options
}

func (f *fakeCollection) EntityName() string     { return "article" }
func (f *fakeCollection) StringFields() []string { return []string{"title"} }

func (f *fakeCollection) Find(ctx context.Context, conditions bson.M, opts Options) ([]article, error) {
	f.gotConditions = conditions
	f.gotOptions = opts
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.docs, nil
}

func (f *fakeCollection) Count(ctx context.Context, conditions bson.M) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.total, nil
}

func TestPaginateNilCollection(t *testing.T) {
	_, err := Paginate[article](context.Background(), nil, nil, nil)
	assert.ErrorIs(t, err, ErrNilCollection)
}

func TestPaginateDefaults(t *testing.T) {
	coll := &fakeCollection{docs: []article{{Title: "a"}}, total: 1}

	result, err := Paginate[article](context.Background(), coll, map[string]string{}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Pagination.Page)
	assert.Equal(t, int64(10), result.Pagination.Limit)
	assert.Equal(t, int64(1), result.Pagination.Total)
	assert.Equal(t, int64(1), result.Pagination.TotalPages)
	assert.Equal(t, int64(0), coll.gotOptions.Skip)
}

func TestPaginateSkipAndTotalPages(t *testing.T) {
	coll := &fakeCollection{total: 25}

	result, err := Paginate[article](context.Background(), coll, map[string]string{
		"page":  "3",
		"limit": "10",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(20), coll.gotOptions.Skip)
	assert.Equal(t, int64(3), result.Pagination.TotalPages) // 25 / 10 無條件進位
}

func TestPaginateExactDivisionTotalPages(t *testing.T) {
	coll := &fakeCollection{total: 30}

	result, err := Paginate[article](context.Background(), coll, map[string]string{"limit": "10"}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Pagination.TotalPages)
}

func TestPaginateEmptyResultIsNotNil(t *testing.T) {
	coll := &fakeCollection{}

	result, err := Paginate[article](context.Background(), coll, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
}

func TestPaginateNonReservedParamsBecomeFilters(t *testing.T) {
	coll := &fakeCollection{}

	_, err := Paginate[article](context.Background(), coll, map[string]string{
		"page":   "1",
		"limit":  "5",
		"search": "",
		"role":   "admin",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "admin", coll.gotConditions["role"])
	assert.NotContains(t, coll.gotConditions, "page")
	assert.NotContains(t, coll.gotConditions, "limit")
	assert.NotContains(t, coll.gotConditions, "search")
}

func TestPaginateNormalizesReferenceFilters(t *testing.T) {
	coll := &fakeCollection{}
	oid := primitive.NewObjectID()

	_, err := Paginate[article](context.Background(), coll, map[string]string{
		"author": oid.Hex(),
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, oid, coll.gotConditions["author"])
}

func TestPaginateBaseQueryWins(t *testing.T) {
	coll := &fakeCollection{}

	_, err := Paginate[article](context.Background(), coll, map[string]string{
		"published": "false",
	}, &Extras{BaseQuery: bson.M{"published": true}})
	require.NoError(t, err)

	assert.Equal(t, true, coll.gotConditions["published"])
}

func TestPaginatePropagatesErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := Paginate[article](context.Background(), &fakeCollection{findErr: boom}, nil, nil)
	assert.ErrorIs(t, err, boom)

	_, err = Paginate[article](context.Background(), &fakeCollection{countErr: boom}, nil, nil)
	assert.ErrorIs(t, err, boom)
}

func TestEnvelopeKeyIsPluralized(t *testing.T) {
	result := &Result[article]{Data: []article{}}

	envelope := result.Envelope("article")
	_, ok := envelope["articles"]
	assert.True(t, ok)
}

func TestPluralize(t *testing.T) {
	cases := map[string]string{
		"blog":     "blogs",
		"category": "categories",
		"status":   "statuses",
		"box":      "boxes",
		"church":   "churches",
		"dish":     "dishes",
		"day":      "days",
		"user":     "users",
		"":         "",
	}
	for singular, plural := range cases {
		assert.Equal(t, plural, Pluralize(singular), singular)
	}
}
