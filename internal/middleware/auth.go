// Package middleware provides HTTP middleware for the booking backend.
package middleware

import (
	"net/http"
	"strings"

	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/models"
	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/service"
	"github.com/gin-gonic/gin"
)

// identityKey is the gin context key holding the verified token claims.
const identityKey = "identity"

// RequireAuth extracts the bearer token, verifies it and attaches the claims
// to the request context. Requests without a valid token are rejected with
// 401 before reaching any handler.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header missing"})
			return
		}

		claims, err := authService.VerifyToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

// RequireRole rejects authenticated callers whose role is not in the allowed
// set. Must run after RequireAuth.
func RequireRole(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Identity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		for _, role := range allowed {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}

// Identity returns the claims attached by RequireAuth.
func Identity(c *gin.Context) (*service.Claims, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*service.Claims)
	return claims, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
