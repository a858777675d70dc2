package engine

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/regform/pkg/field"
	"github.com/dmitrymomot/regform/pkg/logger"
	"github.com/dmitrymomot/regform/pkg/validator"
)

// Result is the outcome of one ValidateForm pass.
type Result struct {
	// Valid is true iff every verdict is valid.
	Valid bool
	// Verdicts holds one verdict per kind, in field.All() order.
	Verdicts []Verdict
}

// Verdict returns the verdict recorded for kind.
func (r Result) Verdict(kind field.Kind) (Verdict, bool) {
	for _, v := range r.Verdicts {
		if v.Kind == kind {
			return v, true
		}
	}
	return Verdict{}, false
}

// Invalid returns the failing verdicts in field order.
func (r Result) Invalid() []Verdict {
	var out []Verdict
	for _, v := range r.Verdicts {
		if !v.Valid {
			out = append(out, v)
		}
	}
	return out
}

// Err returns nil for a valid result and validator.ValidationErrors otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	var errs validator.ValidationErrors
	for _, v := range r.Invalid() {
		errs.Add(validator.RuleFor(v.Kind).Error(v.Kind))
	}
	return errs
}

// Engine validates full form snapshots and forwards every verdict to a Reporter.
// It keeps no state between calls.
type Engine struct {
	reporter Reporter
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithReporter sets the verdict sink. Nil is ignored.
func WithReporter(r Reporter) Option {
	return func(e *Engine) {
		if r != nil {
			e.reporter = r
		}
	}
}

// WithLogger sets the logger for debug records. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Engine. Without a reporter, verdicts are only returned.
func New(opts ...Option) *Engine {
	e := &Engine{
		reporter: NopReporter{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(logger.Component("engine"))
	return e
}

// ValidateForm checks every field of snap, reports each verdict, and returns
// the aggregate. All fields are evaluated even after a failure so the user
// sees every error at once.
//
// It panics if snap does not hold exactly the closed kind set; see
// Snapshot.Check.
func (e *Engine) ValidateForm(ctx context.Context, snap Snapshot) Result {
	if err := snap.Check(); err != nil {
		panic(err)
	}

	verdicts := make([]Verdict, 0, field.Count)
	for _, k := range field.All() {
		v := ValidateOne(k, snap[k])
		e.reporter.Report(ctx, v)
		if !v.Valid {
			e.logger.LogAttrs(ctx, slog.LevelDebug, "field invalid",
				logger.Field(k),
			)
		}
		verdicts = append(verdicts, v)
	}

	res := Result{Valid: All(verdicts), Verdicts: verdicts}
	e.logger.LogAttrs(ctx, slog.LevelDebug, "form validated",
		slog.Bool("valid", res.Valid),
		slog.Int("invalid_count", len(verdicts)-countValid(verdicts)),
	)
	return res
}

// ValidateSource collects a snapshot from src and validates it.
// Like ValidateForm, it panics if src lacks any field.
func (e *Engine) ValidateSource(ctx context.Context, src Source) Result {
	return e.ValidateForm(ctx, Collect(src))
}

func countValid(verdicts []Verdict) int {
	n := 0
	for _, v := range verdicts {
		if v.Valid {
			n++
		}
	}
	return n
}
