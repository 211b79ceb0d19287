package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikerosasdev/crud-alumnos/internal/app/models/dto"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/alumnos/getAlumnos", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
	}{
		{"not found", apperrors.ErrAlumnoNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Alumno no encontrado"},
		{"wrapped not found", fmt.Errorf("loading: %w", apperrors.ErrAlumnoNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Alumno no encontrado"},
		{"duplicate phone", apperrors.NewDuplicatePhoneError([]string{"5551234567", "5559876543"}), http.StatusBadRequest, dto.ErrorCodeDuplicatePhone,
			"Los siguientes números de teléfono ya existen: 5551234567, 5559876543"},
		{"duplicate email", apperrors.ErrDuplicateEmail, http.StatusBadRequest, dto.ErrorCodeDuplicateEmail, "El correo ya está registrado"},
		{"write conflict", apperrors.ErrWriteConflict, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "El registro cambió mientras se guardaba, intenta de nuevo"},
		{"validation", apperrors.NewValidationError("El nombre es requerido"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "El nombre es requerido"},
		{"photo too large", apperrors.NewCustomError(apperrors.ErrFileTooLarge, "La fotografía no debe exceder 5 MB"), http.StatusRequestEntityTooLarge, dto.ErrorCodeFileTooLarge, "La fotografía no debe exceder 5 MB"},
		{"bad photo", apperrors.NewCustomError(apperrors.ErrInvalidPhotoFormat, "La fotografía debe medir 350x350 píxeles"), http.StatusBadRequest, dto.ErrorCodeInvalidImage, "La fotografía debe medir 350x350 píxeles"},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Autenticación requerida"},
		{"expired", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "La sesión ha expirado"},
		{"unexpected", errors.New("dial tcp: connection refused"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Error interno del servidor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := serveError(t, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.False(t, body.Success)
			assert.Equal(t, tt.message, body.Message)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.False(t, body.Timestamp.IsZero())
		})
	}
}

func TestHandleAPIError_DuplicatePhoneDetails(t *testing.T) {
	_, body := serveError(t, apperrors.NewDuplicatePhoneError([]string{"5551234567"}))

	assert.Equal(t, "telefonos", body.Error.Field)
	assert.Equal(t, []interface{}{"5551234567"}, body.Error.Details)
}

func TestHandleAPIError_InternalDetailsNotLeaked(t *testing.T) {
	w, _ := serveError(t, errors.New("pq: password authentication failed for user postgres"))

	assert.NotContains(t, w.Body.String(), "password authentication")
}
