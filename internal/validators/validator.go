package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-video-notes/models"
	"github.com/go-playground/validator/v10"
)

// StructValidator implements Validator on top of go-playground/validator.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator returns a validator with the custom tags registered.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names in errors so messages match the wire format
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("aitype", validateAIType)
	_ = v.RegisterValidation("trimmed_required", validateTrimmedRequired)

	return &StructValidator{validate: v}
}

// Validate checks obj (a struct or a pointer to one). With fields given only
// those struct fields (Go names) are checked.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ErrUnsupportedType
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		for _, f := range fields {
			if _, ok := value.Type().FieldByName(f); !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
		}
		err = v.validate.StructPartialCtx(ctx, value.Interface(), fields...)
	} else {
		err = v.validate.StructCtx(ctx, value.Interface())
	}

	return wrapValidationError(err)
}

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "trimmed_required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "aitype":
		return e.Field() + " must be one of: explain summarize flashcards quiz"
	case "hexcolor":
		return e.Field() + " must be a hex color"
	case "ltefield":
		return e.Field() + " must not exceed " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

func validateAIType(fl validator.FieldLevel) bool {
	switch models.AIRequestType(fl.Field().String()) {
	case models.AIExplain, models.AISummarize, models.AIFlashcards, models.AIQuiz:
		return true
	}
	return false
}

func validateTrimmedRequired(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
