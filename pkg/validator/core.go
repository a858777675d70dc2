package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/regform/pkg/field"
)

// ValidationError represents a single failed field with translation support.
type ValidationError struct {
	Kind           field.Kind
	Field          string
	Message        string
	TranslationKey string
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidationFailed) detect any ValidationErrors.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(kind field.Kind) bool {
	for _, err := range ve {
		if err.Kind == kind {
			return true
		}
	}
	return false
}

// Get returns the message recorded for kind, or "" if the field passed.
func (ve ValidationErrors) Get(kind field.Kind) string {
	for _, err := range ve {
		if err.Kind == kind {
			return err.Message
		}
	}
	return ""
}

func (ve ValidationErrors) Kinds() []field.Kind {
	kinds := make([]field.Kind, 0, len(ve))
	for _, err := range ve {
		kinds = append(kinds, err.Kind)
	}
	return kinds
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
