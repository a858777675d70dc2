package engine

import "context"

// Reporter receives every verdict produced by a form validation pass.
type Reporter interface {
	Report(ctx context.Context, v Verdict)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(ctx context.Context, v Verdict)

func (f ReporterFunc) Report(ctx context.Context, v Verdict) { f(ctx, v) }

// MultiReporter forwards each verdict to every reporter in order.
type MultiReporter []Reporter

func (m MultiReporter) Report(ctx context.Context, v Verdict) {
	for _, r := range m {
		if r != nil {
			r.Report(ctx, v)
		}
	}
}

// NopReporter discards verdicts.
type NopReporter struct{}

func (NopReporter) Report(context.Context, Verdict) {}
