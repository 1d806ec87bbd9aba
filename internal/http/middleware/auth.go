// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file provides bearer-token authentication and role enforcement.
// RequireAuth verifies the Authorization header and stores the caller's
// identity in the Gin context; RequireRole gates route groups on the role
// claim. The two are deliberately split so the role check can answer 403
// while missing or invalid credentials always answer 401.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avasilev/go-recovery-backend/internal/auth"
	"github.com/avasilev/go-recovery-backend/internal/domain"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	ctxKeyUserID = "userID"
	ctxKeyRole   = "userRole"
)

// UserID returns the authenticated caller's ID from the Gin context.
func UserID(c *gin.Context) string {
	if v, ok := c.Get(ctxKeyUserID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// RoleFrom returns the authenticated caller's role from the Gin context.
func RoleFrom(c *gin.Context) domain.Role {
	if v, ok := c.Get(ctxKeyRole); ok {
		if r, ok := v.(domain.Role); ok {
			return r
		}
	}
	return ""
}

// RequireAuth verifies the "Bearer <token>" Authorization header with the
// given JWT service. On success the user ID and role are stored in the
// context; any failure aborts with 401 and the standard error envelope.
func RequireAuth(tokens *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			abortAuth(c, http.StatusUnauthorized, "unauthorized", "missing or malformed bearer token")
			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			abortAuth(c, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
			return
		}

		c.Set(ctxKeyUserID, claims.Subject)
		c.Set(ctxKeyRole, claims.Role)
		c.Next()
	}
}

// RequireRole gates a route group on the caller's role claim. It must run
// after RequireAuth. A missing identity answers 401; a role mismatch answers
// 403 so callers learn the route exists but is not theirs.
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserID(c) == "" {
			abortAuth(c, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}
		if RoleFrom(c) != role {
			abortAuth(c, http.StatusForbidden, "forbidden", "insufficient role")
			return
		}
		c.Next()
	}
}

// abortAuth writes the standard error envelope and stops the chain.
func abortAuth(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"request_id": c.Writer.Header().Get(requestIDHeader),
		"code":       code,
		"message":    msg,
	})
}
