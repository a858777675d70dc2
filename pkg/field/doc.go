// Package field defines the closed set of registration form fields.
//
// A Kind is the only identity the rest of the module uses for a field: the
// rule registry is indexed by it, snapshots are keyed by it, and presenters
// receive verdicts tagged with it. String() yields the hosting form's input
// name; InputNames adds any aliases the page uses, and Parse maps a name back
// to its Kind.
//
//	for _, k := range field.All() {
//		fmt.Println(k, k.Label())
//	}
package field
