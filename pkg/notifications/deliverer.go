package notifications

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/regform/pkg/logger"
)

// Deliverer shows a notification to the user through some channel.
type Deliverer interface {
	Deliver(ctx context.Context, notif Notification) error
}

// DelivererFunc adapts a function to Deliverer.
type DelivererFunc func(ctx context.Context, notif Notification) error

func (f DelivererFunc) Deliver(ctx context.Context, notif Notification) error {
	return f(ctx, notif)
}

// MultiDeliverer combines multiple delivery channels.
type MultiDeliverer struct {
	deliverers []Deliverer
	logger     *slog.Logger
}

// MultiDelivererOption configures a MultiDeliverer.
type MultiDelivererOption func(*MultiDeliverer)

// WithMultiDelivererLogger sets the logger for the MultiDeliverer.
func WithMultiDelivererLogger(logger *slog.Logger) MultiDelivererOption {
	return func(m *MultiDeliverer) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewMultiDeliverer creates a new multi-channel deliverer.
func NewMultiDeliverer(deliverers []Deliverer, opts ...MultiDelivererOption) *MultiDeliverer {
	m := &MultiDeliverer{
		deliverers: deliverers,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Deliver sends notification through all configured channels.
// A failing channel is logged and skipped; Deliver itself never fails.
func (m *MultiDeliverer) Deliver(ctx context.Context, notif Notification) error {
	for i, d := range m.deliverers {
		if err := d.Deliver(ctx, notif); err != nil {
			m.logger.LogAttrs(ctx, slog.LevelError, "failed to deliver notification",
				logger.NotificationID(notif.ID),
				slog.Int("deliverer_index", i),
				logger.Error(err),
			)
		}
	}
	return nil
}

// NoOpDeliverer is a deliverer that does nothing.
type NoOpDeliverer struct{}

func (NoOpDeliverer) Deliver(context.Context, Notification) error {
	return nil
}

// LogDeliverer writes notifications to a logger. Error notices are logged at
// warn level, everything else at info.
type LogDeliverer struct {
	logger *slog.Logger
}

func NewLogDeliverer(l *slog.Logger) *LogDeliverer {
	if l == nil {
		l = slog.Default()
	}
	return &LogDeliverer{logger: l}
}

func (d *LogDeliverer) Deliver(ctx context.Context, notif Notification) error {
	level := slog.LevelInfo
	if notif.Type == TypeError || notif.Type == TypeWarning {
		level = slog.LevelWarn
	}
	d.logger.LogAttrs(ctx, level, notif.Title,
		logger.NotificationID(notif.ID),
		slog.String("type", string(notif.Type)),
		slog.String("message", notif.Message),
	)
	return nil
}
