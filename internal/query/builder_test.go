package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestWithPaginationDefaults(t *testing.T) {
	cases := []struct {
		name      string
		page      string
		limit     string
		wantPage  int64
		wantLimit int64
		wantSkip  int64
	}{
		{name: "empty falls back", page: "", limit: "", wantPage: 1, wantLimit: 10, wantSkip: 0},
		{name: "valid values", page: "3", limit: "20", wantPage: 3, wantLimit: 20, wantSkip: 40},
		{name: "zero falls back", page: "0", limit: "0", wantPage: 1, wantLimit: 10, wantSkip: 0},
		{name: "negative falls back", page: "-2", limit: "-5", wantPage: 1, wantLimit: 10, wantSkip: 0},
		{name: "garbage falls back", page: "abc", limit: "1.5", wantPage: 1, wantLimit: 10, wantSkip: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			descriptor := NewBuilder(nil).WithPagination(tc.page, tc.limit).Build()
			assert.Equal(t, tc.wantPage, descriptor.Options.Page)
			assert.Equal(t, tc.wantLimit, descriptor.Options.Limit)
			assert.Equal(t, tc.wantSkip, descriptor.Options.Skip)
		})
	}
}

func TestWithSearchBuildsOrClause(t *testing.T) {
	descriptor := NewBuilder([]string{"title", "content", "password"}).
		WithSearch("hello").
		Build()

	or, ok := descriptor.Conditions["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 2) // password 被排除

	assert.Equal(t, bson.M{"title": bson.M{"$regex": "hello", "$options": "i"}}, or[0])
	assert.Equal(t, bson.M{"content": bson.M{"$regex": "hello", "$options": "i"}}, or[1])
}

func TestWithSearchEscapesMetacharacters(t *testing.T) {
	descriptor := NewBuilder([]string{"title"}).
		WithSearch("a.b*c").
		Build()

	or := descriptor.Conditions["$or"].([]bson.M)
	assert.Equal(t, `a\.b\*c`, or[0]["title"].(bson.M)["$regex"])
}

func TestWithSearchEmptyTermIsNoop(t *testing.T) {
	descriptor := NewBuilder([]string{"title"}).WithSearch("").Build()
	assert.NotContains(t, descriptor.Conditions, "$or")
}

func TestWithSearchAllFieldsExcluded(t *testing.T) {
	descriptor := NewBuilder([]string{"email"}).
		WithSearch("term", "email").
		Build()
	assert.NotContains(t, descriptor.Conditions, "$or")
}

func TestWithFilters(t *testing.T) {
	descriptor := NewBuilder(nil).
		WithFilters(map[string]string{
			"role":      "admin",
			"published": "true",
			"status":    "",
		}).
		Build()

	assert.Equal(t, "admin", descriptor.Conditions["role"])
	assert.Equal(t, true, descriptor.Conditions["published"])
	assert.NotContains(t, descriptor.Conditions, "status")
}

func TestWithFiltersPublishedFalse(t *testing.T) {
	descriptor := NewBuilder(nil).
		WithFilters(map[string]string{"published": "false"}).
		Build()
	assert.Equal(t, false, descriptor.Conditions["published"])
}

func TestWithFiltersIsActiveCoercedToBool(t *testing.T) {
	descriptor := NewBuilder(nil).
		WithFilters(map[string]string{"isActive": "true"}).
		Build()
	assert.Equal(t, true, descriptor.Conditions["isActive"])

	descriptor = NewBuilder(nil).
		WithFilters(map[string]string{"isActive": "false"}).
		Build()
	assert.Equal(t, false, descriptor.Conditions["isActive"])
}

func TestWithBaseQueryOverridesFilters(t *testing.T) {
	descriptor := NewBuilder(nil).
		WithFilters(map[string]string{"published": "false"}).
		WithBaseQuery(bson.M{"published": true, "tags": bson.M{"$in": []string{"go"}}}).
		Build()

	assert.Equal(t, true, descriptor.Conditions["published"])
	assert.Equal(t, bson.M{"$in": []string{"go"}}, descriptor.Conditions["tags"])
}

func TestBuildDefaultSort(t *testing.T) {
	descriptor := NewBuilder(nil).Build()
	require.Len(t, descriptor.Options.Sort, 1)
	assert.Equal(t, "createdAt", descriptor.Options.Sort[0].Key)
	assert.Equal(t, -1, descriptor.Options.Sort[0].Value)
}

func TestBuildReturnsSnapshot(t *testing.T) {
	builder := NewBuilder(nil).WithFilters(map[string]string{"role": "admin"})
	first := builder.Build()
	builder.WithFilters(map[string]string{"status": "active"})

	assert.NotContains(t, first.Conditions, "status")
}
