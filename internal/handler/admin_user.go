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

type AdminUserHandler struct {
	trace       *telemetry.Trace
	userService *service.UserService
}

func NewAdminUserHandler(trace *telemetry.Trace, userService *service.UserService) *AdminUserHandler {
	return &AdminUserHandler{trace: trace, userService: userService}
}

// List 用戶列表
// @Summary 取得用戶列表
// @Tags Admin-User
// @Security BearerAuth
// @Produce json
// @Param page query int false "頁碼"
// @Param limit query int false "每頁筆數"
// @Param search query string false "關鍵字"
// @Param role query string false "角色"
// @Param status query string false "狀態"
// @Success 200 {object} map[string]any
// @Failure 500 {object} map[string]string
// @Router /admin/users [get]
func (h *AdminUserHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	result, err := h.userService.ListUsers(ctx, queryParams(c))
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, result.Envelope("user"))
}

// Get 取得用戶
// @Summary 取得單一用戶資訊
// @Tags Admin-User
// @Security BearerAuth
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /admin/users/{userID} [get]
func (h *AdminUserHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "userID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	user, err := h.userService.GetUserByID(ctx, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"user": user})
}

// Create 新增用戶
// @Summary 新增用戶
// @Tags Admin-User
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateUserDto true "用戶資訊"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /admin/users [post]
func (h *AdminUserHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.CreateUserDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	user, err := h.userService.CreateUser(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, gin.H{"user": user})
}

// Update 更新用戶
// @Summary 更新用戶
// @Tags Admin-User
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param body body dto.UpdateUserDto true "用戶更新資訊"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /admin/users/{userID} [put]
func (h *AdminUserHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "userID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateUserDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	user, err := h.userService.UpdateUser(ctx, id, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"user": user})
}

// UpdateStatus 更新用戶狀態
// @Summary 更新用戶狀態
// @Tags Admin-User
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param body body dto.UpdateUserStatusDto true "狀態資訊"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /admin/users/{userID}/status [patch]
func (h *AdminUserHandler) UpdateStatus(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "userID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateUserStatusDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if !validate.IsValidStatus(string(req.Status)) {
		response.AbortWithError(c, cErr.BadRequest("unknown status: "+string(req.Status)))
		return
	}

	status := req.Status
	user, err := h.userService.UpdateUser(ctx, id, &dto.UpdateUserDto{Status: &status})
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"user": user, "message": "user status updated successfully"})
}

// ChangePassword 修改自己的密碼
// @Summary 修改密碼
// @Tags Admin-User
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.ChangePasswordDto true "新舊密碼"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/me/password [patch]
func (h *AdminUserHandler) ChangePassword(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, _, ok := currentUser(c)
	if !ok {
		response.AbortWithError(c, cErr.Unauthorized("authentication required"))
		return
	}
	var req dto.ChangePasswordDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.userService.ChangePassword(ctx, id, &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "password changed successfully"})
}

// Delete 刪除用戶
// @Summary 刪除用戶（軟刪除）
// @Tags Admin-User
// @Security BearerAuth
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/users/{userID} [delete]
func (h *AdminUserHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "userID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.userService.DeleteUser(ctx, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "user deleted successfully"})
}
