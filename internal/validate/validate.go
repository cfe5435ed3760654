// Package validate checks decoded request bodies against their struct tags
// and reports the first offending field by its JSON name.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vbonduro/carcheck/internal/catalog"
	"github.com/vbonduro/carcheck/internal/domain"
)

// Error describes a rejected field.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("field %q: %s", e.Field, e.Message)
}

// Invalid builds an Error for checks done outside struct tags.
func Invalid(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register validation %q: %v", tag, err))
		}
	}
	mustRegister("severity", func(fl validator.FieldLevel) bool {
		return catalog.IsSeverity(fl.Field().String())
	})
	mustRegister("vehicle_area", func(fl validator.FieldLevel) bool {
		return catalog.IsArea(fl.Field().String())
	})
	mustRegister("inspection_status", func(fl validator.FieldLevel) bool {
		switch domain.Status(fl.Field().String()) {
		case domain.StatusInProgress, domain.StatusCompleted:
			return true
		}
		return false
	})
	// The plain email rule rejects "" behind a non-nil pointer, which is how
	// a client clears the address.
	mustRegister("optional_email", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || v.Var(s, "email") == nil
	})
	mustRegister("signature", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || strings.HasPrefix(s, "data:image/")
	})

	return &Validator{validate: v}
}

// Struct validates s and returns *Error for the first failing field.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	return &Error{Field: fe.Field(), Message: message(fe)}
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email", "optional_email":
		return field + " must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String && fe.Param() == "1" {
			return field + " must not be empty"
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", field, fe.Param())
	case "severity":
		return field + " must be one of: " + ids(catalog.Severities, func(s catalog.Severity) string { return s.ID })
	case "vehicle_area":
		return field + " must be one of: " + ids(catalog.Areas, func(a catalog.Area) string { return a.ID })
	case "inspection_status":
		return field + " must be one of: in_progress, completed"
	case "signature":
		return field + " must be an image data URL"
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

func ids[T any](list []T, id func(T) string) string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		out = append(out, id(v))
	}
	return strings.Join(out, ", ")
}
