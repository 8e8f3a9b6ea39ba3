package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hamzak/maktab/internal/app/models"
	"github.com/hamzak/maktab/internal/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers
const (
	ContextUserIDKey   = "userID"
	ContextUserRoleKey = "userRole"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth validates the session token from the Authorization header. The
// admin clients send the raw token without a Bearer prefix, so both forms
// are accepted. Failures produce 403 with a bare {message} body, which is
// what those clients key their redirect-to-login on.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortForbidden(c, "No token provided")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortForbidden(c, "Invalid token")
			return
		}

		claims, err := m.jwtService.ValidateSessionToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortForbidden(c, "Token expired")
				return
			}
			abortForbidden(c, "Invalid token")
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUserRoleKey, claims.UserRole)

		c.Next()
	}
}

// RoleRequired restricts a route to the given roles. It must run after
// JWTAuth.
func (m *AuthMiddleware) RoleRequired(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get(ContextUserRoleKey)
		if !exists {
			abortForbidden(c, "No token provided")
			return
		}

		role, ok := roleValue.(models.RoleType)
		if !ok {
			abortForbidden(c, "Invalid token")
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		abortForbidden(c, "Access denied")
	}
}

func abortForbidden(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": message})
}
