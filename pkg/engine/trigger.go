package engine

import (
	"context"
	"log/slog"
)

// Trigger names the user interaction that started a validation pass.
type Trigger string

const (
	TriggerSubmit Trigger = "submit"
	TriggerBlur   Trigger = "blur"
)

type triggerKey struct{}

// WithTrigger stores t in ctx.
func WithTrigger(ctx context.Context, t Trigger) context.Context {
	return context.WithValue(ctx, triggerKey{}, t)
}

// TriggerFromContext returns the trigger stored in ctx, if any.
func TriggerFromContext(ctx context.Context) (Trigger, bool) {
	if ctx == nil {
		return "", false
	}
	t, ok := ctx.Value(triggerKey{}).(Trigger)
	return t, ok
}

// TriggerAttr is a logger context extractor that adds the "trigger" attribute.
func TriggerAttr(ctx context.Context) (slog.Attr, bool) {
	t, ok := TriggerFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("trigger", string(t)), true
}
