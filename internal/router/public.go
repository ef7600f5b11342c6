package router

import (
	"storefront/internal/handler"

	"github.com/gin-gonic/gin"
)

// PublicRouter 掛載不需登入也不需租戶解析的對外 API。
type PublicRouter struct {
	blogHandler    *handler.BlogHandler
	contactHandler *handler.ContactHandler
}

func NewPublicRouter(
	blogHandler *handler.BlogHandler,
	contactHandler *handler.ContactHandler,
) *PublicRouter {
	return &PublicRouter{
		blogHandler:    blogHandler,
		contactHandler: contactHandler,
	}
}

func (pr *PublicRouter) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/blogs", pr.blogHandler.ListPublic)
		api.GET("/blogs/:slug", pr.blogHandler.GetBySlug)
		api.POST("/contacts", pr.contactHandler.Create)
	}
}
