package router

import (
	"storefront/internal/handler"
	"storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AuthRouter struct {
	authHandler *handler.AuthHandler
	auth        *middleware.Auth
}

func NewAuthRouter(
	authHandler *handler.AuthHandler,
	auth *middleware.Auth,
) *AuthRouter {
	return &AuthRouter{
		authHandler: authHandler,
		auth:        auth,
	}
}

func (ar *AuthRouter) RegisterRoutes(r *gin.Engine) {
	g := r.Group("/auth")
	{
		g.POST("/register", ar.authHandler.Register)
		g.POST("/login", ar.authHandler.Login)
		g.POST("/refresh", ar.authHandler.Refresh)
		g.POST("/logout", ar.auth.Handler(), ar.authHandler.Logout)
	}
}
