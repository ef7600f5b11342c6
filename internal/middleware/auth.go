package middleware

import (
	"strings"

	"storefront/internal/core"
	cErr "storefront/internal/pkg/error"
	"storefront/internal/pkg/response"
	"storefront/internal/service"
	"storefront/internal/telemetry"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	trace       *telemetry.Trace
	authService *service.AuthService
}

func NewAuth(trace *telemetry.Trace, authService *service.AuthService) *Auth {
	return &Auth{trace: trace, authService: authService}
}

// Handler 驗證 Bearer token：簽章、效期、黑名單；通過後掛 userID/userRole
func (m *Auth) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanAuthMiddleware))

		meta := core.TraceAuthMeta{Status: "rejected"}
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			m.trace.ApplyTraceAttributes(span, meta)
			end(nil)
			response.AbortWithError(c, cErr.Unauthorized("missing bearer token"))
			return
		}

		claims, err := m.authService.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			m.trace.ApplyTraceAttributes(span, meta)
			end(nil)
			response.AbortWithError(c, cErr.InvalidSession("invalid or expired token"))
			return
		}
		if m.authService.IsRevoked(ctx, claims.ID) {
			m.trace.ApplyTraceAttributes(span, meta)
			end(nil)
			response.AbortWithError(c, cErr.InvalidSession("token revoked"))
			return
		}

		meta.UserID = claims.UserID
		meta.Role = string(claims.Role)
		meta.Status = "accepted"
		m.trace.ApplyTraceAttributes(span, meta)
		end(nil)

		c.Set(core.ContextUserIDKey, claims.UserID)
		c.Set(core.ContextUserRoleKey, claims.Role)
		c.Set("claims", claims)
		c.Next()
	}
}

// RequireRoles 角色白名單；須接在 Handler 之後
func (m *Auth) RequireRoles(roles ...core.Role) gin.HandlerFunc {
	allowed := make(map[core.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(c *gin.Context) {
		role, ok := c.Get(core.ContextUserRoleKey)
		if !ok {
			response.AbortWithError(c, cErr.Unauthorized("authentication required"))
			return
		}
		if _, permitted := allowed[role.(core.Role)]; !permitted {
			response.AbortWithError(c, cErr.Forbidden("insufficient role"))
			return
		}
		c.Next()
	}
}
