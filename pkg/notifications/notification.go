package notifications

import (
	"time"

	"github.com/google/uuid"
)

// Type represents the notification type/severity.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Notification is a one-off notice shown to the person filling the form.
type Notification struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// New creates a notification with a fresh ID and the current time.
func New(typ Type, title, message string) Notification {
	return Notification{
		ID:        uuid.New().String(),
		Type:      typ,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}
}

const (
	ConsentMissingTitle   = "Terms not accepted"
	ConsentMissingMessage = "You must agree to the Terms of Service and Privacy Policy to submit the form."

	SubmittedTitle   = "Submitted"
	SubmittedMessage = "Your registration has been successfully submitted!"
)

// ConsentMissing is the notice sent when a submit is attempted without
// accepting the terms.
func ConsentMissing() Notification {
	return New(TypeError, ConsentMissingTitle, ConsentMissingMessage)
}

// Submitted is the notice sent after a successful submission.
func Submitted() Notification {
	return New(TypeSuccess, SubmittedTitle, SubmittedMessage)
}
