package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// echoValidator adapts go-playground/validator to the echo.Validator
// interface so handlers can call c.Validate on bound request structs.
type echoValidator struct {
	v *validator.Validate
}

func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate returns a single error joining one readable message per failed
// field. Tag names not covered below fall back to a generic phrasing.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var b strings.Builder
	for i, fe := range fieldErrs {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fieldMessage(fe))
	}
	return errors.New(b.String())
}

func fieldMessage(fe validator.FieldError) string {
	name := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return name + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
	}
	return fmt.Sprintf("%s is invalid (%s)", name, fe.Tag())
}
