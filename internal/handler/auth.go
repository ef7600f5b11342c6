package handler

import (
	"storefront/internal/core"
	"storefront/internal/dto"
	cErr "storefront/internal/pkg/error"
	"storefront/internal/pkg/response"
	"storefront/internal/service"
	"storefront/internal/telemetry"
	"storefront/utils/validate"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	trace       *telemetry.Trace
	authService *service.AuthService
}

func NewAuthHandler(trace *telemetry.Trace, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{trace: trace, authService: authService}
}

// Register 註冊
// @Summary 註冊新帳號
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterDto true "註冊資訊"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.RegisterDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	user, err := h.authService.Register(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, gin.H{"user": user})
}

// Login 登入
// @Summary 帳密登入，簽發 access/refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.LoginDto true "登入資訊"
// @Success 200 {object} dto.TokenResponseDto
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.LoginDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	tokens, user, err := h.authService.Login(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"tokens": tokens, "user": user})
}

// Refresh 換發 token
// @Summary 以 refresh token 換發新 token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.RefreshDto true "refresh token"
// @Success 200 {object} dto.TokenResponseDto
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.RefreshDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	tokens, err := h.authService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"tokens": tokens})
}

// Logout 登出
// @Summary 登出並撤銷目前 token
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	raw, ok := c.Get("claims")
	if !ok {
		response.AbortWithError(c, cErr.Unauthorized("authentication required"))
		return
	}
	claims := raw.(*core.Claims)
	if err := h.authService.Logout(ctx, claims); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "logged out"})
}
