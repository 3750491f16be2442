package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/smith-legal/staff-portal/internal/models"
)

// Validator wraps go-playground/validator with the domain rules for staff
// profiles (province and gender enumerations).
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with the domain rules registered. JSON tag names
// are reported in validation errors instead of struct field names.
func New() *Validator {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// sa_province: one of the nine South African provinces.
	_ = validate.RegisterValidation("sa_province", func(fl validator.FieldLevel) bool {
		return models.IsValidProvince(fl.Field().String())
	})

	// gender: Male, Female or Other.
	_ = validate.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		return models.IsValidGender(fl.Field().String())
	})

	return &Validator{validate: validate}
}

// Validate runs struct validation and returns ValidationErrors, or nil when
// the value is valid.
func (v *Validator) Validate(s interface{}) ValidationErrors {
	err := v.validate.Struct(s)
	if err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the error type returned for invalid request payloads.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(msgs, "; ")
}

// ToValidationErrors converts a validator error into ValidationErrors with
// readable per-field messages.
func ToValidationErrors(err error) ValidationErrors {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationErrors{{Field: "request", Message: err.Error()}}
	}

	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", fe.Param())
	case "sa_province":
		return fmt.Sprintf("must be one of: %s", strings.Join(models.SAProvinces, ", "))
	case "gender":
		return fmt.Sprintf("must be one of: %s", strings.Join(models.Genders, ", "))
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
