package field

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned (or panicked with) when a value outside the
// closed Kind set is used.
var ErrUnknownKind = errors.New("unknown field kind")

// Kind identifies one of the registration form fields.
type Kind int

const (
	FirstName Kind = iota + 1
	LastName
	Email
	Phone
	Address
	City
	PostalCode
	Country
	Password
)

// Count is the number of kinds in the closed set.
const Count = int(Password)

var names = [...]string{
	FirstName:  "firstName",
	LastName:   "lastName",
	Email:      "email",
	Phone:      "phone",
	Address:    "address",
	City:       "city",
	PostalCode: "postalCode",
	Country:    "country",
	Password:   "password",
}

var labels = [...]string{
	FirstName:  "First name",
	LastName:   "Last name",
	Email:      "Email",
	Phone:      "Phone",
	Address:    "Address",
	City:       "City",
	PostalCode: "Postal code",
	Country:    "Country",
	Password:   "Password",
}

// All returns every kind in form order.
// The returned slice is a fresh copy.
func All() []Kind {
	return []Kind{FirstName, LastName, Email, Phone, Address, City, PostalCode, Country, Password}
}

// Valid reports whether k belongs to the closed set.
func (k Kind) Valid() bool {
	return k >= FirstName && k <= Password
}

// String returns the form field name, e.g. "postalCode".
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return names[k]
}

// Label returns a human readable label for the field.
func (k Kind) Label() string {
	if !k.Valid() {
		return k.String()
	}
	return labels[k]
}

// aliases are extra input names the registration page may use for a kind.
var aliases = map[string]Kind{
	"Password": Password,
}

// InputNames returns the input names that may carry k in the hosting form,
// canonical name first.
func (k Kind) InputNames() []string {
	if !k.Valid() {
		return nil
	}
	out := []string{names[k]}
	for alias, ak := range aliases {
		if ak == k {
			out = append(out, alias)
		}
	}
	return out
}

// Parse maps an input name to its Kind. Matching is exact; aliases such as
// "Password" are accepted.
func Parse(name string) (Kind, error) {
	for _, k := range All() {
		if names[k] == name {
			return k, nil
		}
	}
	if k, ok := aliases[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
