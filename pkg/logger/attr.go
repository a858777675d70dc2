package logger

import (
	"fmt"
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records a form field identity under the key "field".
// Never pass a field value here.
func Field(kind fmt.Stringer) slog.Attr {
	return slog.String("field", kind.String())
}

// Outcome records a submission outcome under the key "outcome".
func Outcome(outcome fmt.Stringer) slog.Attr {
	return slog.String("outcome", outcome.String())
}

// NotificationID records a delivered notice id under "notification_id".
func NotificationID(id string) slog.Attr {
	return slog.String("notification_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
