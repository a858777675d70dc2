package engine

import (
	"strings"
	"unicode"

	"github.com/dmitrymomot/regform/pkg/field"
	"github.com/dmitrymomot/regform/pkg/validator"
)

// Verdict is the outcome of checking one field value against its rule.
// Message is empty for valid verdicts.
type Verdict struct {
	Kind    field.Kind
	Valid   bool
	Message string
}

// ValidateOne trims raw and matches it in full against the rule for kind.
// It has no side effects; forwarding the verdict anywhere is up to the caller.
// Panics if kind is outside the closed set.
func ValidateOne(kind field.Kind, raw string) Verdict {
	rule := validator.RuleFor(kind)
	if rule.Match(strings.TrimFunc(raw, isSpace)) {
		return Verdict{Kind: kind, Valid: true}
	}
	return Verdict{Kind: kind, Message: rule.Message}
}

// All folds verdicts with logical AND. An empty slice is vacuously true.
func All(verdicts []Verdict) bool {
	ok := true
	for _, v := range verdicts {
		ok = ok && v.Valid
	}
	return ok
}

// isSpace reports what browsers strip when trimming input: ASCII whitespace,
// the Unicode separators and the byte order mark.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\uFEFF':
		return true
	}
	return unicode.In(r, unicode.Z)
}
