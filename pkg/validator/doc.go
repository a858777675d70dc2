// Package validator is the rule registry for the registration form.
//
// Every field.Kind maps to exactly one Rule: a compiled whole-string pattern,
// optional "must contain" patterns, and a fixed human-readable message naming
// the violated constraint. The registry is built at package init and is
// read-only afterwards, so it is safe to share without locking.
//
// # Rules
//
//   - FirstName, LastName: at least 3 ASCII letters
//   - Email: local part of letters, digits and ._%+- then @ then dotted
//     domain ending in a label of at least 2 letters
//   - Phone: optional "+" with a 1-3 digit country code, then 10 digits
//   - Password: 8+ characters from letters, digits and @$!%*?&, with at
//     least one lowercase, one uppercase, one digit and one symbol
//   - Address: 5+ characters from letters, digits, whitespace and ,.'-
//   - City, Country: 2+ letters or whitespace
//   - PostalCode: exactly 5 or 6 digits
//
// DateRule (YYYY-MM-DD, format only) is exported on its own and is not bound
// to any field.
//
// # Usage
//
//	rule := validator.RuleFor(field.Email)
//	if !rule.Match(strings.TrimSpace(input)) {
//	    fmt.Println(rule.Message)
//	}
//
// # Error Handling
//
// ValidationErrors implements error and matches ErrValidationFailed with
// errors.Is. Use ExtractValidationErrors to get back per-field details.
package validator
