package core

import "github.com/golang-jwt/jwt/v4"

type Claims struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}

// context keys（gin.Context.Set/Get）
const (
	ContextUserIDKey   = "userID"
	ContextUserRoleKey = "userRole"
	ContextShopKey     = "tenant_shop"
	ContextTenantKey   = "tenant_subdomain"
	ContextTenantDBKey = "tenant_database"
)
