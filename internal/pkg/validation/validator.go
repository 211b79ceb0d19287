package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldMessages are shown when a required or malformed field is rejected
var fieldMessages = map[string]string{
	"status":     "El estatus es requerido",
	"nombre":     "El nombre es requerido",
	"apellidos":  "Los apellidos son requeridos",
	"calle":      "La calle es requerida",
	"colonia":    "La colonia es requerida",
	"correo":     "Un correo válido es requerido",
	"fotografia": "La fotografía es requerida",
	"telefonos":  "Todos los teléfonos deben ser válidos y únicos",
	"username":   "El usuario es requerido",
	"password":   "La contraseña es requerida",
}

const (
	msgRepeatedPhones = "Los números de teléfono no deben repetirse"
	msgQuotes         = "No se permiten comillas en los campos"
	msgInvalidStatus  = "El estatus debe ser activo o inactivo"
	msgGeneric        = "Datos inválidos"
)

// Validator validates structs with the alumnos rule set
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the custom tags registered
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := Register(v); err != nil {
		// registration only fails on programmer error (bad tag name)
		panic(err)
	}
	return &Validator{validate: v}
}

// Struct validates s and returns the user-facing message of the first failing rule.
// ok is false when validation failed.
func (v *Validator) Struct(s interface{}) (message string, ok bool, err error) {
	err = v.validate.Struct(s)
	if err == nil {
		return "", true, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "", false, err
	}
	return Message(verrs[0]), false, nil
}

// Message translates a single field error into the form's Spanish wording
func Message(fe validator.FieldError) string {
	field := fe.Field()
	if idx := strings.IndexByte(field, '['); idx >= 0 {
		field = field[:idx]
	}

	switch fe.Tag() {
	case TagNoQuotes:
		return msgQuotes
	case "unique":
		return msgRepeatedPhones
	case "oneof":
		if field == "status" {
			return msgInvalidStatus
		}
	}

	if msg, ok := fieldMessages[field]; ok {
		return msg
	}
	return msgGeneric
}
