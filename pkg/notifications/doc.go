// Package notifications delivers one-off notices about form submission.
//
// A Notification carries a type (info, success, warning, error), a title and
// a message. Deliverer is the outbound port; the package ships a few
// implementations:
//
//   - MultiDeliverer fans out to several channels, logging failures
//   - LogDeliverer writes notices to an *slog.Logger
//   - MemoryDeliverer records notices in memory for tests and previews
//   - NoOpDeliverer drops everything
//
// ConsentMissing and Submitted build the two notices a submission can
// produce.
//
//	d := notifications.NewMultiDeliverer([]notifications.Deliverer{
//	    notifications.NewLogDeliverer(log),
//	    dialog,
//	})
//	_ = d.Deliver(ctx, notifications.Submitted())
package notifications
