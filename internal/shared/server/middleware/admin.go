package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"coverletter-backend/internal/shared/auth"
	"coverletter-backend/internal/shared/server/respond"
)

const adminEmailKey = "adminEmail"

// AdminAuth guards the admin surface: requests must carry a Bearer token
// issued by the Google sign-in flow with the admin claim set.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(header, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
		claims, err := auth.VerifyToken(token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}
		if !claims.Admin {
			respond.Error(c, http.StatusForbidden, "forbidden", "admin access required", nil)
			return
		}

		c.Set(adminEmailKey, claims.Email)
		c.Next()
	}
}

// AdminEmailFromContext fetches the admin email set by AdminAuth.
func AdminEmailFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(adminEmailKey)
	if email, ok := val.(string); ok {
		return email
	}
	return ""
}
