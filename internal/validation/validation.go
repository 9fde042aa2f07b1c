package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/rafaelnuansa/faculty-backend/internal/errors"
)

// Validator evaluates struct tag rules and reports failures keyed by JSON field name.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator that names fields after their json (or form) tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	return v.Check(i).OrNil()
}

// Check always returns a non-nil ValidationError so callers can append
// store-backed failures before deciding whether the request is rejected.
func (v *Validator) Check(i interface{}) *apperrors.ValidationError {
	verr := apperrors.NewValidationError()
	err := v.validate.Struct(i)
	if err == nil {
		return verr
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.Add("request", err.Error())
		return verr
	}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), Message(fe.Field(), fe.Tag(), fe.Param()))
	}
	return verr
}

// Message renders the human message for a failed rule.
func Message(field, tag, param string) string {
	label := Label(field)
	switch tag {
	case "required":
		return fmt.Sprintf("The %s field is required.", label)
	case "min":
		// Present-but-empty optional fields are declared as min=1.
		if param == "1" {
			return fmt.Sprintf("The %s field is required.", label)
		}
		return fmt.Sprintf("The %s field must be at least %s characters.", label, param)
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", label, param)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", label)
	case "uuid":
		return fmt.Sprintf("The %s field must be a valid UUID.", label)
	default:
		return fmt.Sprintf("The %s field is invalid.", label)
	}
}

// Label turns a field key such as category_id into "category id".
func Label(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
