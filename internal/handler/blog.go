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

type BlogHandler struct {
	trace       *telemetry.Trace
	blogService *service.BlogService
}

func NewBlogHandler(trace *telemetry.Trace, blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{trace: trace, blogService: blogService}
}

// ListPublic 公開文章列表
// @Summary 公開已發佈文章列表
// @Tags Blog
// @Produce json
// @Param page query int false "頁碼"
// @Param limit query int false "每頁筆數"
// @Param search query string false "關鍵字"
// @Success 200 {object} map[string]any
// @Router /api/blogs [get]
func (h *BlogHandler) ListPublic(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	result, err := h.blogService.ListPublished(ctx, queryParams(c))
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, result.Envelope("blog"))
}

// GetBySlug 公開單篇文章
// @Summary 以 slug 取得已發佈文章
// @Tags Blog
// @Produce json
// @Param slug path string true "Slug"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /api/blogs/{slug} [get]
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	blog, err := h.blogService.GetPublishedBySlug(ctx, c.Param("slug"))
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"blog": blog})
}

// List 管理端文章列表（含未發佈）
// @Summary 管理端文章列表
// @Tags Admin-Blog
// @Security BearerAuth
// @Produce json
// @Param page query int false "頁碼"
// @Param limit query int false "每頁筆數"
// @Param search query string false "關鍵字"
// @Param published query bool false "發佈狀態"
// @Param author query string false "作者 ID"
// @Success 200 {object} map[string]any
// @Router /admin/blogs [get]
func (h *BlogHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	result, err := h.blogService.ListBlogs(ctx, queryParams(c), nil)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, result.Envelope("blog"))
}

// Get 管理端單篇文章
// @Summary 管理端取得文章
// @Tags Admin-Blog
// @Security BearerAuth
// @Produce json
// @Param blogID path string true "Blog ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /admin/blogs/{blogID} [get]
func (h *BlogHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "blogID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	blog, err := h.blogService.GetBlogByID(ctx, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"blog": blog})
}

// Create 新增文章
// @Summary 新增文章
// @Tags Admin-Blog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateBlogDto true "文章內容"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /admin/blogs [post]
func (h *BlogHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	authorID, _, ok := currentUser(c)
	if !ok {
		response.AbortWithError(c, cErr.Unauthorized("authentication required"))
		return
	}
	var req dto.CreateBlogDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	blog, err := h.blogService.CreateBlog(ctx, authorID, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, gin.H{"blog": blog})
}

// Update 更新文章
// @Summary 更新文章
// @Tags Admin-Blog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param blogID path string true "Blog ID"
// @Param body body dto.UpdateBlogDto true "文章更新內容"
// @Success 200 {object} map[string]any
// @Failure 403 {object} map[string]string
// @Router /admin/blogs/{blogID} [put]
func (h *BlogHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "blogID")
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
	var req dto.UpdateBlogDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	blog, err := h.blogService.UpdateBlog(ctx, id, actorID.Hex(), actorRole, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"blog": blog})
}

// Delete 刪除文章
// @Summary 刪除文章（軟刪除）
// @Tags Admin-Blog
// @Security BearerAuth
// @Produce json
// @Param blogID path string true "Blog ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/blogs/{blogID} [delete]
func (h *BlogHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "blogID")
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
	if err := h.blogService.DeleteBlog(ctx, id, actorID.Hex(), actorRole); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "blog deleted successfully"})
}
