package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/GardenBot_Go/internal/garden"
)

// Request bounds
const (
	MaxIDLength   = 100
	MaxExchangeXP = 1_000_000
	MaxCreditXP   = 10_000
	MinCreditXP   = 1
	TagSessionID  = "sessionid"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Use json names in error maps
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation(TagSessionID, validateSessionID)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by the JSON field name.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case TagSessionID:
			errs[field] = "Must be 1-64 letters, digits, '_', '-', '.' or ':'"
		case "max":
			if e.Kind() == reflect.String {
				errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
			} else {
				errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
			}
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateSessionID(fl validator.FieldLevel) bool {
	return garden.ValidateSessionID(fl.Field().String()) == nil
}
