package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// EmailPattern matches the address format accepted by the alumnos form
	EmailPattern = `^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`

	// PhonePattern - exactly 10 digits
	PhonePattern = `^\d{10}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Phone *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Phone: regexp.MustCompile(PhonePattern),
}

// Custom validator tags
const (
	TagPhone    = "phone10"
	TagEmail    = "alumnoemail"
	TagNoQuotes = "noquotes"
)

// IsValidPhone reports whether phone is exactly ten digits
func IsValidPhone(phone string) bool {
	return CompiledPatterns.Phone.MatchString(phone)
}

// IsValidEmail applies the form's email rule; the address is lower-cased first
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(email))
}

// HasQuotes reports whether s contains a single or double quote
func HasQuotes(s string) bool {
	return strings.ContainsAny(s, `"'`)
}

// Register adds the custom tags and json field naming to v
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation(TagPhone, func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation(TagEmail, func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation(TagNoQuotes, func(fl validator.FieldLevel) bool {
		return !HasQuotes(fl.Field().String())
	})
}
