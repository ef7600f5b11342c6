package router

import (
	"storefront/internal/core"
	"storefront/internal/handler"
	"storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AdminRouter struct {
	auth            *middleware.Auth
	userHandler     *handler.AdminUserHandler
	blogHandler     *handler.BlogHandler
	taxonomyHandler *handler.TaxonomyHandler
	contactHandler  *handler.ContactHandler
	settingHandler  *handler.SettingHandler
	shopHandler     *handler.ShopHandler
}

func NewAdminRouter(
	auth *middleware.Auth,
	userHandler *handler.AdminUserHandler,
	blogHandler *handler.BlogHandler,
	taxonomyHandler *handler.TaxonomyHandler,
	contactHandler *handler.ContactHandler,
	settingHandler *handler.SettingHandler,
	shopHandler *handler.ShopHandler,
) *AdminRouter {
	return &AdminRouter{
		auth:            auth,
		userHandler:     userHandler,
		blogHandler:     blogHandler,
		taxonomyHandler: taxonomyHandler,
		contactHandler:  contactHandler,
		settingHandler:  settingHandler,
		shopHandler:     shopHandler,
	}
}

func (ar *AdminRouter) RegisterRoutes(r *gin.Engine) {
	admin := r.Group("/admin", ar.auth.Handler())

	users := admin.Group("/users", ar.auth.RequireRoles(core.RoleAdmin))
	{
		users.GET("", ar.userHandler.List)
		users.GET("/:userID", ar.userHandler.Get)
		users.POST("", ar.userHandler.Create)
		users.PUT("/:userID", ar.userHandler.Update)
		users.PATCH("/:userID/status", ar.userHandler.UpdateStatus)
		users.DELETE("/:userID", ar.userHandler.Delete)
	}
	// 改密碼不限 admin，本人即可
	admin.PATCH("/me/password", ar.userHandler.ChangePassword)

	blogs := admin.Group("/blogs", ar.auth.RequireRoles(core.RoleAdmin, core.RoleEditor))
	{
		blogs.GET("", ar.blogHandler.List)
		blogs.GET("/:blogID", ar.blogHandler.Get)
		blogs.POST("", ar.blogHandler.Create)
		blogs.PUT("/:blogID", ar.blogHandler.Update)
		blogs.DELETE("/:blogID", ar.blogHandler.Delete)
	}

	tags := admin.Group("/tags", ar.auth.RequireRoles(core.RoleAdmin, core.RoleEditor))
	{
		tags.GET("", ar.taxonomyHandler.ListTags)
		tags.POST("", ar.taxonomyHandler.CreateTag)
		tags.PUT("/:tagID", ar.taxonomyHandler.UpdateTag)
		tags.DELETE("/:tagID", ar.taxonomyHandler.DeleteTag)
	}

	categories := admin.Group("/categories", ar.auth.RequireRoles(core.RoleAdmin, core.RoleEditor))
	{
		categories.GET("", ar.taxonomyHandler.ListCategories)
		categories.POST("", ar.taxonomyHandler.CreateCategory)
		categories.PUT("/:categoryID", ar.taxonomyHandler.UpdateCategory)
		categories.DELETE("/:categoryID", ar.taxonomyHandler.DeleteCategory)
	}

	contacts := admin.Group("/contacts", ar.auth.RequireRoles(core.RoleAdmin, core.RoleEditor))
	{
		contacts.GET("", ar.contactHandler.List)
		contacts.GET("/:contactID", ar.contactHandler.Get)
		contacts.PATCH("/:contactID/status", ar.contactHandler.UpdateStatus)
		contacts.DELETE("/:contactID", ar.contactHandler.Delete)
	}

	settings := admin.Group("/settings", ar.auth.RequireRoles(core.RoleAdmin))
	{
		settings.GET("", ar.settingHandler.List)
		settings.GET("/:key", ar.settingHandler.Get)
		settings.PUT("", ar.settingHandler.Upsert)
		settings.DELETE("/:settingID", ar.settingHandler.Delete)
	}

	shops := admin.Group("/shops")
	{
		// 建立與查詢自己的商店開放給一般使用者，其餘依角色
		shops.POST("", ar.shopHandler.Create)
		shops.GET("/mine", ar.shopHandler.ListMine)
		shops.GET("", ar.auth.RequireRoles(core.RoleAdmin), ar.shopHandler.List)
		shops.GET("/:shopID", ar.auth.RequireRoles(core.RoleAdmin, core.RoleMerchant), ar.shopHandler.Get)
		shops.PUT("/:shopID", ar.auth.RequireRoles(core.RoleAdmin, core.RoleMerchant), ar.shopHandler.Update)
	}
}
