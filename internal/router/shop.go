package router

import (
	"storefront/internal/core"
	"storefront/internal/handler"
	"storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

// ShopRouter 掛載租戶端 API；/shop 不在 tenant middleware 的 skip 名單內，
// 進到 handler 時 context 上已有 shop 與對應的資料庫 stores。
type ShopRouter struct {
	auth           *middleware.Auth
	catalogHandler *handler.CatalogHandler
}

func NewShopRouter(
	auth *middleware.Auth,
	catalogHandler *handler.CatalogHandler,
) *ShopRouter {
	return &ShopRouter{
		auth:           auth,
		catalogHandler: catalogHandler,
	}
}

func (sr *ShopRouter) RegisterRoutes(r *gin.Engine) {
	shop := r.Group("/shop")

	products := shop.Group("/products")
	{
		products.GET("", sr.catalogHandler.ListProducts)
		products.GET("/:productID", sr.catalogHandler.GetProduct)

		manage := products.Group("", sr.auth.Handler(), sr.auth.RequireRoles(core.RoleAdmin, core.RoleMerchant))
		{
			manage.POST("", sr.catalogHandler.CreateProduct)
			manage.PUT("/:productID", sr.catalogHandler.UpdateProduct)
			manage.DELETE("/:productID", sr.catalogHandler.DeleteProduct)
		}
	}

	orders := shop.Group("/orders")
	{
		// 下單開放給前台結帳流程
		orders.POST("", sr.catalogHandler.CreateOrder)

		manage := orders.Group("", sr.auth.Handler(), sr.auth.RequireRoles(core.RoleAdmin, core.RoleMerchant))
		{
			manage.GET("", sr.catalogHandler.ListOrders)
			manage.GET("/:orderID", sr.catalogHandler.GetOrder)
			manage.PATCH("/:orderID/status", sr.catalogHandler.UpdateOrderStatus)
		}
	}

	customers := shop.Group("/customers")
	{
		// 結帳時的客戶建檔
		customers.POST("", sr.catalogHandler.CreateCustomer)

		manage := customers.Group("", sr.auth.Handler(), sr.auth.RequireRoles(core.RoleAdmin, core.RoleMerchant))
		{
			manage.GET("", sr.catalogHandler.ListCustomers)
			manage.GET("/:customerID", sr.catalogHandler.GetCustomer)
			manage.PUT("/:customerID", sr.catalogHandler.UpdateCustomer)
			manage.DELETE("/:customerID", sr.catalogHandler.DeleteCustomer)
		}
	}
}
