package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikerosasdev/crud-alumnos/internal/app/models/dto"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/apperrors"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/logger"
)

// Messages used when the error itself carries none for the user
const (
	msgNotFound      = "Recurso no encontrado"
	msgValidation    = "Datos inválidos"
	msgBadRequest    = "Solicitud inválida"
	msgUnauthorized  = "Autenticación requerida"
	msgTokenExpired  = "La sesión ha expirado"
	msgInternalError = "Error interno del servidor"
)

// HandleAPIError maps err to a status code and writes the standard error envelope
func HandleAPIError(c *gin.Context, err error) {
	status, detail := classify(err)

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("requestId", GetRequestID(c)).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func classify(err error) (int, *dto.ErrorDetail) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound,
			apperrors.UserMessage(err, msgNotFound))

	case errors.Is(err, apperrors.ErrDuplicatePhone):
		detail := dto.NewErrorDetail(dto.ErrorCodeDuplicatePhone, apperrors.UserMessage(err, apperrors.DuplicatePhonePrefix)).
			WithField("telefonos")
		var dup *apperrors.DuplicatePhoneError
		if errors.As(err, &dup) {
			detail = detail.WithDetails(dup.Numbers)
		}
		return http.StatusBadRequest, detail

	case errors.Is(err, apperrors.ErrDuplicateEmail):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeDuplicateEmail,
			apperrors.UserMessage(err, msgValidation)).WithField("correo")

	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists,
			apperrors.UserMessage(err, msgBadRequest))

	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed,
			apperrors.UserMessage(err, msgValidation)).WithSeverity(dto.ErrorSeverityWarning)

	case errors.Is(err, apperrors.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, dto.NewErrorDetail(dto.ErrorCodeFileTooLarge,
			apperrors.UserMessage(err, msgBadRequest))

	case apperrors.Is(err, apperrors.ErrUnsupportedImage, apperrors.ErrInvalidPhotoFormat):
		detail := dto.NewErrorDetail(dto.ErrorCodeInvalidImage, apperrors.UserMessage(err, msgBadRequest)).
			WithField("fotografia")
		var custom *apperrors.CustomError
		if errors.As(err, &custom) && custom.Details != nil {
			detail = detail.WithDetails(custom.Details)
		}
		return http.StatusBadRequest, detail

	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed,
			apperrors.UserMessage(err, msgBadRequest))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials,
			apperrors.UserMessage(err, msgUnauthorized))

	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, msgTokenExpired)

	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, msgUnauthorized)

	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, msgInternalError).
			WithSeverity(dto.ErrorSeverityCritical)
	}
}
