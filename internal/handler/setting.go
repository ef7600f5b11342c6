package handler

import (
	"storefront/internal/dto"
	"storefront/internal/pkg/response"
	"storefront/internal/service"
	"storefront/internal/telemetry"
	"storefront/utils/validate"

	"github.com/gin-gonic/gin"
)

type SettingHandler struct {
	trace          *telemetry.Trace
	settingService *service.SettingService
}

func NewSettingHandler(trace *telemetry.Trace, settingService *service.SettingService) *SettingHandler {
	return &SettingHandler{trace: trace, settingService: settingService}
}

// List 設定列表
// @Summary 取得站台設定列表
// @Tags Admin-Setting
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]any
// @Router /admin/settings [get]
func (h *SettingHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	settings, err := h.settingService.List(ctx)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"settings": settings})
}

// Get 以 key 取得設定
// @Summary 以 key 取得設定
// @Tags Admin-Setting
// @Security BearerAuth
// @Produce json
// @Param key path string true "設定鍵"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /admin/settings/{key} [get]
func (h *SettingHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	setting, err := h.settingService.GetByKey(ctx, c.Param("key"))
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"setting": setting})
}

// Upsert 寫入設定
// @Summary 寫入設定（key 不存在時建立）
// @Tags Admin-Setting
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.UpsertSettingDto true "設定內容"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /admin/settings [put]
func (h *SettingHandler) Upsert(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.UpsertSettingDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	setting, err := h.settingService.Upsert(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"setting": setting})
}

// Delete 刪除設定
// @Summary 刪除設定（軟刪除）
// @Tags Admin-Setting
// @Security BearerAuth
// @Produce json
// @Param settingID path string true "Setting ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/settings/{settingID} [delete]
func (h *SettingHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "settingID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.settingService.Delete(ctx, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "setting deleted successfully"})
}
