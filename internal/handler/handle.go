package handler

import (
	"storefront/internal/core"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProviderSet Provider 对象集合
var ProviderSet = wire.NewSet(
	NewAuthHandler,
	NewAdminUserHandler,
	NewBlogHandler,
	NewTaxonomyHandler,
	NewContactHandler,
	NewSettingHandler,
	NewShopHandler,
	NewCatalogHandler,
	NewHealthHandler,
)

// currentUser 取出 auth middleware 掛上的使用者身分
func currentUser(c *gin.Context) (primitive.ObjectID, core.Role, bool) {
	userID := c.GetString(core.ContextUserIDKey)
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, "", false
	}
	role, _ := c.Get(core.ContextUserRoleKey)
	r, ok := role.(core.Role)
	if !ok {
		return primitive.NilObjectID, "", false
	}
	return id, r, true
}

// queryParams 攤平 query string 供 Paginator 使用（重複 key 取第一個）
func queryParams(c *gin.Context) map[string]string {
	values := c.Request.URL.Query()
	params := make(map[string]string, len(values))
	for key, list := range values {
		if len(list) > 0 {
			params[key] = list[0]
		}
	}
	return params
}
