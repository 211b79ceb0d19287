package services

import (
	"context"
	"crypto/subtle"

	"github.com/mikerosasdev/crud-alumnos/internal/app/models/dto"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/apperrors"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// AdminCredentials is the single operator account of the panel
type AdminCredentials struct {
	Username     string
	PasswordHash string
}

// AuthService handles authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type authServiceImpl struct {
	admin      AdminCredentials
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(admin AdminCredentials, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		admin:      admin,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login checks the admin credentials and issues an access token
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.admin.Username)) == 1
	// bcrypt runs even for an unknown username
	passOK := auth.CheckPassword(s.admin.PasswordHash, req.Password)
	if !userOK || !passOK {
		s.logger.Warn().Str("username", req.Username).Msg("Failed login attempt")
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Usuario o contraseña incorrectos")
	}

	token, expiresIn, err := s.jwtService.GenerateToken(s.admin.Username)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to generate access token")
		return nil, err
	}

	s.logger.Info().Str("username", s.admin.Username).Msg("Admin logged in")
	return &dto.TokenResponse{
		Success:     true,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
