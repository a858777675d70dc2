package regform

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/regform/pkg/config"
	"github.com/dmitrymomot/regform/pkg/engine"
	"github.com/dmitrymomot/regform/pkg/field"
	"github.com/dmitrymomot/regform/pkg/logger"
	"github.com/dmitrymomot/regform/pkg/notifications"
)

// Form wires the validation engine to the hosting page: it reads field values
// and consent from the page, pushes verdicts to the presentation layer, and
// sends at most one notice per submit attempt.
type Form struct {
	source    engine.Source
	consent   ConsentSource
	reporter  engine.Reporter
	deliverer notifications.Deliverer
	logger    *slog.Logger
	engine    *engine.Engine
}

// Option configures a Form.
type Option func(*Form)

// WithReporter sets where per-field verdicts go.
func WithReporter(r engine.Reporter) Option {
	return func(f *Form) {
		if r != nil {
			f.reporter = r
		}
	}
}

// WithDeliverer sets where submission notices go.
func WithDeliverer(d notifications.Deliverer) Option {
	return func(f *Form) {
		if d != nil {
			f.deliverer = d
		}
	}
}

// WithLogger sets the logger shared by the form and its engine.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// New creates a Form reading values from source and the terms checkbox from
// consent. Both are required.
func New(source engine.Source, consent ConsentSource, opts ...Option) *Form {
	if source == nil || consent == nil {
		panic("regform: source and consent are required")
	}

	f := &Form{
		source:    source,
		consent:   consent,
		reporter:  engine.NopReporter{},
		deliverer: notifications.NoOpDeliverer{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.engine = engine.New(
		engine.WithReporter(f.reporter),
		engine.WithLogger(f.logger),
	)
	return f
}

// NewFromEnv loads Config from the environment and builds a Form whose logger
// follows it and writes to stderr. Notices are logged unless WithDeliverer
// says otherwise; later options override the defaults.
func NewFromEnv(source engine.Source, consent ConsentSource, opts ...Option) (*Form, error) {
	return newFromEnv(os.Stderr, source, consent, opts)
}

func newFromEnv(w io.Writer, source engine.Source, consent ConsentSource, opts []Option, cfgOpts ...config.Option) (*Form, error) {
	cfg, err := LoadConfig(cfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("regform: load config: %w", err)
	}

	log, err := cfg.NewLogger(w)
	if err != nil {
		return nil, err
	}

	defaults := []Option{
		WithLogger(log),
		WithDeliverer(notifications.NewLogDeliverer(log)),
	}
	return New(source, consent, append(defaults, opts...)...), nil
}

// Submit handles a submit attempt.
//
// The whole form is validated first so every field shows its verdict. Then,
// if the terms are not accepted, the consent notice is sent and the
// validation result is discarded. Otherwise the success notice is sent only
// when every field passed.
//
// It panics with engine.ErrMissingField if the source lacks any field; an
// input left empty is not missing and simply fails its rule.
func (f *Form) Submit(ctx context.Context) Outcome {
	ctx = engine.WithTrigger(ctx, engine.TriggerSubmit)
	res := f.engine.ValidateSource(ctx, f.source)

	if !f.consent.ConsentGiven() {
		f.finish(ctx, OutcomeConsentMissing)
		f.notify(ctx, notifications.ConsentMissing())
		return OutcomeConsentMissing
	}

	if !res.Valid {
		f.finish(ctx, OutcomeInvalid, slog.Int("invalid_count", len(res.Invalid())))
		return OutcomeInvalid
	}

	f.finish(ctx, OutcomeSubmitted)
	f.notify(ctx, notifications.Submitted())
	return OutcomeSubmitted
}

// Blur handles focus leaving the named input, which may be any input of the
// form including the terms checkbox. The entire form is re-validated, not
// just that input, so submit-time and interactive feedback always agree.
// Blur never sends notices.
//
// Like Submit, it panics if the source lacks any field.
func (f *Form) Blur(ctx context.Context, input string) engine.Result {
	ctx = engine.WithTrigger(ctx, engine.TriggerBlur)
	attrs := []slog.Attr{slog.String("input", input)}
	if k, err := field.Parse(input); err == nil {
		attrs = append(attrs, logger.Field(k))
	}
	f.logger.LogAttrs(ctx, slog.LevelDebug, "field blurred", attrs...)
	return f.engine.ValidateSource(ctx, f.source)
}

func (f *Form) finish(ctx context.Context, o Outcome, attrs ...slog.Attr) {
	f.logger.LogAttrs(ctx, slog.LevelInfo, "submit attempt finished", append([]slog.Attr{logger.Outcome(o)}, attrs...)...)
}

// notify delivers n; a delivery failure is logged and does not change the outcome.
func (f *Form) notify(ctx context.Context, n notifications.Notification) {
	if err := f.deliverer.Deliver(ctx, n); err != nil {
		f.logger.LogAttrs(ctx, slog.LevelError, "failed to deliver notification",
			logger.NotificationID(n.ID),
			logger.Error(err),
		)
	}
}
