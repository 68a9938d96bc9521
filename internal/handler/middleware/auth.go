package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"parkhub/internal/domain/client"
	"parkhub/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator shared.TokenValidator
}

const (
	ctxClientIDKey   = "client_id"
	ctxClientRoleKey = "client_role"
)

func NewAuthMiddleware(tokenValidator shared.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		clientID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxClientIDKey, clientID)
		c.Set(ctxClientRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"client_id": clientID.String(),
			"role":      role.String(),
		})
		c.Next()
	}
}

// RequireStaff gates operational endpoints. Must run after RequireAuth().
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetClientRole(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if role != client.RoleStaff {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetClientID(c *gin.Context) (uuid.UUID, bool) {
	clientID, exists := c.Get(ctxClientIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := clientID.(uuid.UUID)
	return id, ok
}

func GetClientRole(c *gin.Context) (client.Role, bool) {
	clientRole, exists := c.Get(ctxClientRoleKey)
	if !exists {
		return "", false
	}

	role, ok := clientRole.(client.Role)
	return role, ok
}
