package regform

import (
	"net/url"

	"github.com/dmitrymomot/regform/pkg/field"
)

// TermsField is the form name of the consent checkbox.
const TermsField = "terms"

// ConsentSource reports whether the user accepted the terms.
type ConsentSource interface {
	ConsentGiven() bool
}

// ConsentFunc adapts a function to ConsentSource.
type ConsentFunc func() bool

func (f ConsentFunc) ConsentGiven() bool { return f() }

// Values is an in-memory field source, handy for tests and server-side use.
// A kind without an entry is absent, not empty.
type Values map[field.Kind]string

func (v Values) Value(kind field.Kind) (string, bool) {
	s, ok := v[kind]
	return s, ok
}

// FormValues reads fields and the consent checkbox from posted form data,
// keyed by input name (see field.Kind.InputNames).
type FormValues url.Values

// Value returns the first input name of kind that was posted. An input that
// was not posted at all is reported absent.
func (f FormValues) Value(kind field.Kind) (string, bool) {
	for _, name := range kind.InputNames() {
		if _, ok := f[name]; ok {
			return url.Values(f).Get(name), true
		}
	}
	return "", false
}

// ConsentGiven is true when the terms checkbox was submitted checked.
// Browsers omit unchecked checkboxes; "off", "false" and "0" also count as
// unchecked.
func (f FormValues) ConsentGiven() bool {
	switch url.Values(f).Get(TermsField) {
	case "", "off", "false", "0":
		return false
	default:
		return true
	}
}
