package router

import (
	"net/http"
	docs "storefront/cmd/docs"
	"storefront/config"
	"storefront/internal/middleware"
	"storefront/internal/pkg/response"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var ProviderSet = wire.NewSet(
	NewRouter,
	NewAuthRouter,
	NewAdminRouter,
	NewPublicRouter,
	NewShopRouter,
	NewHealthRouter,
)

// 透過依賴注入組出完整路由
func NewRouter(
	config *config.Configuration,
	traceEntry *middleware.TraceEntry,
	recovery *middleware.Recovery,
	cors *middleware.Cors,
	logger *middleware.Logger,
	responseMiddleware *middleware.Response,
	tenant *middleware.Tenant,
	authRouter *AuthRouter,
	adminRouter *AdminRouter,
	publicRouter *PublicRouter,
	shopRouter *ShopRouter,
	healthRouter *HealthRouter,
) *gin.Engine {

	switch config.App.Env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(traceEntry.Handler())
	router.Use(logger.LoggerHandler())
	router.Use(cors.CorsHandler())
	router.Use(recovery.ErrorHandler())
	router.Use(responseMiddleware.FormatHandler())
	// 租戶解析掛在全域，skip 名單放行非租戶路由
	router.Use(tenant.Handler())

	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, response.Response{
			Code:    0,
			Data:    gin.H{"version": config.App.Version},
			Message: "OK",
		})
		c.Abort()
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if config.App.SwaggerEnabled {
		router.GET("/swagger/*any", func(c *gin.Context) {
			docs.SwaggerInfo.Host = c.Request.Host

			if config.App.Env == "production" {
				docs.SwaggerInfo.Schemes = []string{"https"}
			}
		}, ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	healthRouter.RegisterRoutes(router)
	authRouter.RegisterRoutes(router)
	adminRouter.RegisterRoutes(router)
	publicRouter.RegisterRoutes(router)
	shopRouter.RegisterRoutes(router)
	pprof.Register(router)
	return router
}
