package handler

import (
	"storefront/internal/dto"
	"storefront/internal/pkg/response"
	"storefront/internal/service"
	"storefront/internal/telemetry"
	"storefront/utils/validate"

	"github.com/gin-gonic/gin"
)

type TaxonomyHandler struct {
	trace           *telemetry.Trace
	taxonomyService *service.TaxonomyService
}

func NewTaxonomyHandler(trace *telemetry.Trace, taxonomyService *service.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{trace: trace, taxonomyService: taxonomyService}
}

// ---------- Tag ----------

// ListTags 標籤列表
// @Summary 取得標籤列表
// @Tags Admin-Taxonomy
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]any
// @Router /admin/tags [get]
func (h *TaxonomyHandler) ListTags(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	tags, err := h.taxonomyService.ListTags(ctx)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"tags": tags})
}

// CreateTag 新增標籤
// @Summary 新增標籤
// @Tags Admin-Taxonomy
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateTagDto true "標籤內容"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /admin/tags [post]
func (h *TaxonomyHandler) CreateTag(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreateTagDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	tag, err := h.taxonomyService.CreateTag(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, gin.H{"tag": tag})
}

// UpdateTag 更新標籤
// @Summary 更新標籤
// @Tags Admin-Taxonomy
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param tagID path string true "Tag ID"
// @Param body body dto.UpdateTagDto true "標籤更新內容"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /admin/tags/{tagID} [put]
func (h *TaxonomyHandler) UpdateTag(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "tagID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateTagDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	tag, err := h.taxonomyService.UpdateTag(ctx, id, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"tag": tag})
}

// DeleteTag 刪除標籤
// @Summary 刪除標籤（軟刪除）
// @Tags Admin-Taxonomy
// @Security BearerAuth
// @Produce json
// @Param tagID path string true "Tag ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/tags/{tagID} [delete]
func (h *TaxonomyHandler) DeleteTag(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "tagID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.taxonomyService.DeleteTag(ctx, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "tag deleted successfully"})
}

// ---------- Category ----------

// ListCategories 分類列表
// @Summary 取得分類列表
// @Tags Admin-Taxonomy
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]any
// @Router /admin/categories [get]
func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	categories, err := h.taxonomyService.ListCategories(ctx)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"categories": categories})
}

// CreateCategory 新增分類
// @Summary 新增分類
// @Tags Admin-Taxonomy
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateCategoryDto true "分類內容"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /admin/categories [post]
func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreateCategoryDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	category, err := h.taxonomyService.CreateCategory(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, gin.H{"category": category})
}

// UpdateCategory 更新分類
// @Summary 更新分類
// @Tags Admin-Taxonomy
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param categoryID path string true "Category ID"
// @Param body body dto.UpdateCategoryDto true "分類更新內容"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /admin/categories/{categoryID} [put]
func (h *TaxonomyHandler) UpdateCategory(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "categoryID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateCategoryDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	category, err := h.taxonomyService.UpdateCategory(ctx, id, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"category": category})
}

// DeleteCategory 刪除分類
// @Summary 刪除分類（軟刪除）
// @Tags Admin-Taxonomy
// @Security BearerAuth
// @Produce json
// @Param categoryID path string true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/categories/{categoryID} [delete]
func (h *TaxonomyHandler) DeleteCategory(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "categoryID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.taxonomyService.DeleteCategory(ctx, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "category deleted successfully"})
}
