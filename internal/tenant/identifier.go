package tenant

import (
	"net"
	"strings"
)

// Sanitize 清洗租戶識別字串：轉小寫、去除前後空白，
// 並移除所有 [a-z0-9-] 以外的字元。例如 " ACME_Shop! " → "acmeshop"。
// 回傳空字串代表識別無法使用。
func Sanitize(identifier string) string {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	var builder strings.Builder
	builder.Grow(len(identifier))
	for _, r := range identifier {
		switch {
		case r >= 'a' && r <= 'z':
			builder.WriteRune(r)
		case r >= '0' && r <= '9':
			builder.WriteRune(r)
		case r == '-':
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// Slugify 由店名產生 subdomain 候選：先把空白換成連字號再走 Sanitize。
// 例如 "My Great Shop" → "my-great-shop"。
func Slugify(name string) string {
	name = strings.Join(strings.Fields(strings.TrimSpace(name)), "-")
	return Sanitize(name)
}

// HostSubdomain 從 Host 取出最左 label 作為租戶識別。
// localhost、IP literal、沒有子網域（label 數 < 3，如 "example.com"）都回傳空字串。
func HostSubdomain(host string) string {
	if host == "" {
		return ""
	}
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return ""
	}
	if net.ParseIP(host) != nil {
		return ""
	}
	labels := strings.Split(host, ".")
	if len(labels) < 3 {
		return ""
	}
	return labels[0]
}
