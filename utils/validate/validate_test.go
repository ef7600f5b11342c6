package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleReq struct {
	Title string `json:"title" binding:"required,max=200"`
	Count int    `json:"-"`
}

func TestJsonFieldName(t *testing.T) {
	assert.Equal(t, "title", jsonFieldName(&sampleReq{}, "Title"))
	assert.Equal(t, "Count", jsonFieldName(&sampleReq{}, "Count"))
	assert.Equal(t, "Missing", jsonFieldName(&sampleReq{}, "Missing"))
}

func TestGetFieldFormat(t *testing.T) {
	assert.Equal(t, []string{"required", "max=200"}, getFieldFormat(&sampleReq{}, "Title"))
	assert.Nil(t, getFieldFormat(&sampleReq{}, "Count"))
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole("admin"))
	assert.True(t, IsValidRole("merchant"))
	assert.False(t, IsValidRole("superuser"))
	assert.False(t, IsValidRole(""))
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus("active"))
	assert.True(t, IsValidStatus("suspended"))
	assert.False(t, IsValidStatus("archived"))
	assert.False(t, IsValidStatus(""))
}

func TestPayloadToMap(t *testing.T) {
	m, err := PayloadToMap(sampleReq{Title: "hello"})
	assert.NoError(t, err)
	assert.Equal(t, "hello", m["title"])
	_, hidden := m["Count"]
	assert.False(t, hidden)
}
