// Package regform validates a nine-field registration form and decides
// whether a submission may go through.
//
// The hosting page is reached through narrow ports: an engine.Source for
// field values, a ConsentSource for the terms checkbox, an engine.Reporter
// for per-field verdicts, and a notifications.Deliverer for the submission
// notices. Form ties them to the validation engine and applies the trigger
// policy:
//
//   - Submit validates every field, then sends the consent notice if the
//     terms are not accepted, or the success notice if every field passed.
//     At most one notice is sent per attempt.
//   - Blur, on any input including the terms checkbox, re-validates the
//     whole form and never sends a notice.
//
// Basic usage:
//
//	board := presenter.NewBoard()
//	form := regform.New(regform.FormValues(r.PostForm), regform.FormValues(r.PostForm),
//		regform.WithReporter(board),
//		regform.WithDeliverer(dialog),
//	)
//	switch form.Submit(ctx) {
//	case regform.OutcomeSubmitted:
//		// proceed
//	case regform.OutcomeInvalid, regform.OutcomeConsentMissing:
//		// board holds the per-field messages
//	}
//
// NewFromEnv reads Config (APP_ENV, APP_NAME, LOG_LEVEL, LOG_FORMAT) and sets
// up logging to match.
//
// Validation here is a usability aid. It is not a security boundary and the
// receiving side must validate again.
package regform
