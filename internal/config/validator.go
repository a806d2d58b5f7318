package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/pogoutil/internal/domain"
)

var validate = validator.New()

// Validate checks the configuration against its struct tags.
// Every failing field is reported; the error wraps domain.ErrInvalidInput.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		problems = append(problems, describe(e))
	}

	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(problems, "; "))
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", e.Field(), e.Param(), e.Value())
	case "min":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "file":
		return fmt.Sprintf("%s must point to an existing file, got %q", e.Field(), e.Value())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
