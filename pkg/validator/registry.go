package validator

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/regform/pkg/field"
)

// Rule pairs a compiled pattern with the message shown when a value fails it.
// Rules are built once at package init and never mutated.
type Rule struct {
	Message        string
	TranslationKey string

	pattern  *regexp.Regexp
	requires []*regexp.Regexp
}

// newRule compiles expr as a whole-string pattern. Each entry of requires must
// additionally be found somewhere in the value; RE2 has no lookahead, so
// "contains at least one X" constraints are expressed this way.
func newRule(expr, message, key string, requires ...string) Rule {
	r := Rule{
		Message:        message,
		TranslationKey: key,
		pattern:        regexp.MustCompile(`^(?:` + expr + `)$`),
	}
	for _, req := range requires {
		r.requires = append(r.requires, regexp.MustCompile(req))
	}
	return r
}

// Pattern returns the anchored source of the rule's main pattern.
func (r Rule) Pattern() string {
	if r.pattern == nil {
		return ""
	}
	return r.pattern.String()
}

// Match reports whether value satisfies the rule in full. The value is
// matched as given; trimming is the caller's job.
func (r Rule) Match(value string) bool {
	if r.pattern == nil || !r.pattern.MatchString(value) {
		return false
	}
	for _, req := range r.requires {
		if !req.MatchString(value) {
			return false
		}
	}
	return true
}

// Error builds the ValidationError reported when kind fails this rule.
func (r Rule) Error(kind field.Kind) ValidationError {
	return ValidationError{
		Kind:           kind,
		Field:          kind.String(),
		Message:        r.Message,
		TranslationKey: r.TranslationKey,
	}
}

const passwordSymbols = `@$!%*?&`

// space is the whitespace class of browser regular expressions. RE2's \s
// alone is only [\t\n\f\r ].
const space = `\s\v\p{Z}\x{FEFF}`

var (
	nameRule = newRule(`[A-Za-z]{3,}`,
		"Name must be at least 3 letters.",
		"validation.name")

	emailRule = newRule(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`,
		"Enter a valid email address (e.g., example@domain.com).",
		"validation.email")

	phoneRule = newRule(`(\+?\d{1,3})?\d{10}`,
		"Phone number should be 10 digits or include country code.",
		"validation.phone")

	passwordRule = newRule(`[A-Za-z\d`+passwordSymbols+`]{8,}`,
		"Password must be at least 8 characters, include uppercase, lowercase, a digit, and a special character.",
		"validation.password",
		`[a-z]`, `[A-Z]`, `\d`, `[`+passwordSymbols+`]`)

	addressRule = newRule(`[A-Za-z0-9`+space+`,.'-]{5,}`,
		"Address must be at least 5 characters long.",
		"validation.address")

	cityRule = newRule(`[A-Za-z`+space+`]{2,}`,
		"City must be at least 2 letters.",
		"validation.city")

	postalCodeRule = newRule(`[0-9]{5,6}`,
		"Postal code must be 5 or 6 digits.",
		"validation.postal_code")

	countryRule = newRule(`[A-Za-z`+space+`]{2,}`,
		"Country must be at least 2 letters.",
		"validation.country")

	// DateRule checks the YYYY-MM-DD shape only; calendar validity is not
	// checked. No registration field uses it.
	DateRule = newRule(`\d{4}-\d{2}-\d{2}`,
		"Enter a valid date (YYYY-MM-DD).",
		"validation.date")
)

// registry is indexed by field.Kind. Its length is fixed by field.Count, so
// adding a kind without a rule leaves a zero Rule that the registry test
// catches.
var registry = [field.Count + 1]Rule{
	field.FirstName:  nameRule,
	field.LastName:   nameRule,
	field.Email:      emailRule,
	field.Phone:      phoneRule,
	field.Address:    addressRule,
	field.City:       cityRule,
	field.PostalCode: postalCodeRule,
	field.Country:    countryRule,
	field.Password:   passwordRule,
}

// RuleFor returns the rule that governs kind.
// It panics if kind is outside the closed set.
func RuleFor(kind field.Kind) Rule {
	if !kind.Valid() {
		panic(fmt.Errorf("%w: %s", field.ErrUnknownKind, kind))
	}
	return registry[kind]
}
