package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/apperrors"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextUsername = "username"
	ContextRole     = "role"
)

// AuthMiddleware protects the write routes when authentication is enabled
type AuthMiddleware struct {
	jwtService *auth.JWTService
	enabled    bool
}

// NewAuthMiddleware creates a new AuthMiddleware. With enabled false every request passes.
func NewAuthMiddleware(jwtService *auth.JWTService, enabled bool) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		enabled:    enabled,
	}
}

// Enabled reports whether tokens are checked
func (m *AuthMiddleware) Enabled() bool {
	return m.enabled
}

// JWTAuth middleware for JWT token validation
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// Swagger UI sometimes sends the token as a query parameter
			authHeader = c.Query("token")
		}

		tokenString, err := auth.ExtractBearerToken(strings.Trim(authHeader, "\"'"))
		if err != nil {
			HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrTokenInvalid, "Autenticación requerida"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				HandleAPIError(c, apperrors.ErrTokenExpired)
				return
			}
			HandleAPIError(c, apperrors.ErrTokenInvalid)
			return
		}

		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RoleRequired middleware to check if the authenticated operator has requiredRole
func (m *AuthMiddleware) RoleRequired(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		if role := c.GetString(ContextRole); role != requiredRole {
			HandleAPIError(c, apperrors.ErrTokenInvalid)
			return
		}
		c.Next()
	}
}
