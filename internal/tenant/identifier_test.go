package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"acme", "acme"},
		{" ACME_Shop! ", "acmeshop"},
		{"My-Shop", "my-shop"},
		{"shop123", "shop123"},
		{"中文店名", ""},
		{"   ", ""},
		{"", ""},
		{"a.b.c", "abc"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Sanitize(tc.in), tc.in)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My Great Shop", "my-great-shop"},
		{"  spaced   out  ", "spaced-out"},
		{"Acme", "acme"},
		{"Shop #1!", "shop-1"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), tc.in)
	}
}

func TestHostSubdomain(t *testing.T) {
	cases := []struct {
		host string
		want string
	}{
		{"acme.example.com", "acme"},
		{"acme.example.com:8080", "acme"},
		{"a.b.example.com", "a"},
		{"example.com", ""},
		{"localhost", ""},
		{"localhost:3000", ""},
		{"acme.localhost", ""},
		{"127.0.0.1", ""},
		{"127.0.0.1:8080", ""},
		{"::1", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HostSubdomain(tc.host), tc.host)
	}
}
