package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mikerosasdev/crud-alumnos/internal/app/models/dto"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/validation"
)

// RegisterValidations adds the alumnos rules to gin's binding validator so `binding` tags can use them
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	return validation.Register(v)
}

// ValidateRequest binds the JSON body into a fresh value from newObj and stores it under "validatedBody"
func ValidateRequest(newObj func() interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		obj := newObj()
		if err := c.ShouldBindJSON(obj); err != nil {
			message := "Formato de solicitud inválido"
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				message = validation.Message(verrs[0])
			}
			detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message).
				WithSeverity(dto.ErrorSeverityWarning)
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
			return
		}

		c.Set("validatedBody", obj)
		c.Next()
	}
}
