package handler

import (
	"storefront/internal/dto"
	cErr "storefront/internal/pkg/error"
	"storefront/internal/pkg/response"
	"storefront/internal/service"
	"storefront/internal/telemetry"
	"storefront/utils/validate"

	"github.com/gin-gonic/gin"
)

type ShopHandler struct {
	trace       *telemetry.Trace
	shopService *service.ShopService
}

func NewShopHandler(trace *telemetry.Trace, shopService *service.ShopService) *ShopHandler {
	return &ShopHandler{trace: trace, shopService: shopService}
}

// Create 建立商店
// @Summary 建立商店並佈建租戶資料庫
// @Tags Admin-Shop
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateShopDto true "商店內容"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /admin/shops [post]
func (h *ShopHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	ownerID, _, ok := currentUser(c)
	if !ok {
		response.AbortWithError(c, cErr.Unauthorized("authentication required"))
		return
	}
	var req dto.CreateShopDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	shop, err := h.shopService.CreateShop(ctx, ownerID, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, gin.H{"shop": shop})
}

// List 商店列表（管理端）
// @Summary 取得商店列表
// @Tags Admin-Shop
// @Security BearerAuth
// @Produce json
// @Param page query int false "頁碼"
// @Param limit query int false "每頁筆數"
// @Param search query string false "關鍵字"
// @Param isActive query bool false "啟用狀態"
// @Success 200 {object} map[string]any
// @Router /admin/shops [get]
func (h *ShopHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	result, err := h.shopService.ListShops(ctx, queryParams(c))
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, result.Envelope("shop"))
}

// ListMine 自己擁有的商店
// @Summary 取得目前使用者擁有的商店
// @Tags Admin-Shop
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]any
// @Router /admin/shops/mine [get]
func (h *ShopHandler) ListMine(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	ownerID, _, ok := currentUser(c)
	if !ok {
		response.AbortWithError(c, cErr.Unauthorized("authentication required"))
		return
	}
	shops, err := h.shopService.ListMine(ctx, ownerID)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"shops": shops})
}

// Get 單一商店
// @Summary 取得商店
// @Tags Admin-Shop
// @Security BearerAuth
// @Produce json
// @Param shopID path string true "Shop ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /admin/shops/{shopID} [get]
func (h *ShopHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "shopID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	shop, err := h.shopService.GetShopByID(ctx, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"shop": shop})
}

// Update 更新商店
// @Summary 更新商店；啟用狀態僅 admin 可變更
// @Tags Admin-Shop
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param shopID path string true "Shop ID"
// @Param body body dto.UpdateShopDto true "商店更新內容"
// @Success 200 {object} map[string]any
// @Failure 403 {object} map[string]string
// @Router /admin/shops/{shopID} [put]
func (h *ShopHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "shopID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	actorID, actorRole, ok := currentUser(c)
	if !ok {
		response.AbortWithError(c, cErr.Unauthorized("authentication required"))
		return
	}
	var req dto.UpdateShopDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	shop, err := h.shopService.UpdateShop(ctx, id, actorID.Hex(), actorRole, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"shop": shop})
}
