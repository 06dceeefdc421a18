package triplog

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Input carries the candidate field values for create/update. Validation
// runs before any persistence or collection mutation.
type Input struct {
	Origin      string    `validate:"notblank"`
	Destination string    `validate:"notblank"`
	Mode        string    `validate:"notblank"`
	Start       time.Time `validate:"required"`
	End         time.Time `validate:"required,gtfield=Start"`
	Description string
}

// FieldError names one invalid field with a user-presentable message.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates all field errors found in one Validate call.
// The presentation layer maps these to per-field UI state.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		messages = append(messages, field.Message)
	}
	return "validation failed: " + strings.Join(messages, " ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Whitespace-only text counts as missing.
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(fmt.Sprintf("register notblank validation: %v", err))
	}
	return v
}

// Validate checks the required fields and the end-after-start ordering.
// It is pure: no side effects, no state changes on failure.
func Validate(in Input) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate input: %w", err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrors))}
	for _, fieldError := range fieldErrors {
		out.Fields = append(out.Fields, FieldError{
			Field:   fieldError.StructField(),
			Message: messageFor(fieldError),
		})
	}
	return out
}

func messageFor(fieldError validator.FieldError) string {
	if fieldError.StructField() == "End" && fieldError.Tag() == "gtfield" {
		return "End date & time must be after start date & time."
	}
	return fieldError.StructField() + " is required."
}
