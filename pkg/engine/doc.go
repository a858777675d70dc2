// Package engine evaluates registration form snapshots against the rule
// registry in pkg/validator.
//
// ValidateOne is the pure per-field check: it trims the raw value and matches
// it in full against the field's rule. Engine.ValidateForm applies it to every
// field of a Snapshot, forwards each Verdict to a Reporter, and folds the
// verdicts with All into a single Result.Valid flag. Every field is evaluated
// on every pass; there is no short-circuiting and no caching between passes.
//
// A Snapshot must hold a value for every field.Kind. Omitting one is a
// programming error and ValidateForm panics with ErrMissingField rather than
// treating the field as empty.
//
//	eng := engine.New(engine.WithReporter(board))
//	res := eng.ValidateForm(ctx, engine.Snapshot{
//	    field.FirstName: "Alice",
//	    // ... every other kind
//	})
//	if err := res.Err(); err != nil {
//	    // validator.ValidationErrors with one entry per failing field
//	}
package engine
