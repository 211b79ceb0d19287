package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mikerosasdev/crud-alumnos/internal/app/models/dto"
	"github.com/mikerosasdev/crud-alumnos/internal/middleware"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/apperrors"
)

func newAuthRouter(svc *mockAuthService) *gin.Engine {
	c := NewAuthController(svc)
	r := gin.New()
	r.POST("/api/auth/login", middleware.ValidateRequest(func() interface{} { return &dto.LoginRequest{} }), c.Login)
	return r
}

func TestLogin(t *testing.T) {
	svc := &mockAuthService{
		loginFn: func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
			if req.Username != "admin" || req.Password != "s3cret" {
				return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Usuario o contraseña incorrectos")
			}
			return &dto.TokenResponse{Success: true, AccessToken: "tok", TokenType: "Bearer", ExpiresIn: 60}, nil
		},
	}
	r := newAuthRouter(svc)

	w, body := do(r, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"s3cret"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok", body["accessToken"])

	w, body = do(r, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Usuario o contraseña incorrectos", body["message"])

	w, _ = do(r, http.MethodPost, "/api/auth/login", `{"username":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
