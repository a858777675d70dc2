package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/regform/pkg/field"
)

// ErrMissingField signals a snapshot that lacks one or more kinds.
// It is a caller bug, not a validation failure.
var ErrMissingField = errors.New("snapshot is missing field values")

// Source reads the current raw value of a field from the hosting form.
// The bool result is false when the form has no such input at all, which is
// different from an input left empty.
type Source interface {
	Value(kind field.Kind) (string, bool)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(kind field.Kind) (string, bool)

func (f SourceFunc) Value(kind field.Kind) (string, bool) { return f(kind) }

// Snapshot holds the raw value of every field at one point in time.
type Snapshot map[field.Kind]string

// Collect reads every kind from src into a fresh snapshot. Kinds src does
// not have are left out, so Check reports them.
func Collect(src Source) Snapshot {
	snap := make(Snapshot, field.Count)
	for _, k := range field.All() {
		if v, ok := src.Value(k); ok {
			snap[k] = v
		}
	}
	return snap
}

// Check reports a snapshot that does not cover exactly the closed kind set.
func (s Snapshot) Check() error {
	var missing []string
	for _, k := range field.All() {
		if _, ok := s[k]; !ok {
			missing = append(missing, k.String())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	for k := range s {
		if !k.Valid() {
			return fmt.Errorf("%w: %s", field.ErrUnknownKind, k)
		}
	}
	return nil
}
