package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikerosasdev/crud-alumnos/internal/app/models/dto"
	"github.com/mikerosasdev/crud-alumnos/internal/app/services"
	"github.com/mikerosasdev/crud-alumnos/internal/middleware"
)

var errInvalidBody = errors.New("validated body has unexpected type")

// AuthController handles admin login
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login handles admin login
// @Summary Admin login
// @Description Exchanges the admin credentials for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	req, ok := ctx.MustGet("validatedBody").(*dto.LoginRequest)
	if !ok {
		middleware.HandleAPIError(ctx, errInvalidBody)
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
