package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikerosasdev/crud-alumnos/internal/pkg/auth"
)

func newProtectedRouter(m *AuthMiddleware) *gin.Engine {
	r := gin.New()
	r.DELETE("/api/alumnos/deleteAlumno/:id", m.JWTAuth(), m.RoleRequired(auth.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "user": c.GetString(ContextUsername)})
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "k", AccessTokenExp: time.Hour, TokenIssuer: "crud-alumnos"})
	token, _, err := jwtService.GenerateToken("admin")
	require.NoError(t, err)

	expired := auth.NewJWTService(auth.JWTConfig{SecretKey: "k", AccessTokenExp: -time.Minute, TokenIssuer: "crud-alumnos"})
	expiredToken, _, err := expired.GenerateToken("admin")
	require.NoError(t, err)

	tests := []struct {
		name    string
		enabled bool
		header  string
		status  int
	}{
		{"disabled lets everything through", false, "", http.StatusOK},
		{"missing token", true, "", http.StatusUnauthorized},
		{"garbage token", true, "Bearer nope", http.StatusUnauthorized},
		{"expired token", true, "Bearer " + expiredToken, http.StatusUnauthorized},
		{"valid token", true, "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newProtectedRouter(NewAuthMiddleware(jwtService, tt.enabled))
			req := httptest.NewRequest(http.MethodDelete, "/api/alumnos/deleteAlumno/1", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.status != http.StatusOK {
				assert.Contains(t, w.Body.String(), `"success":false`)
			}
		})
	}
}
