package presenter

import (
	"context"

	"github.com/dmitrymomot/regform/pkg/engine"
	"github.com/dmitrymomot/regform/pkg/field"
)

// ValidMessage is the text shown under a field that passed validation.
const ValidMessage = "Valid"

// State is the display state of a field and its message element.
type State string

const (
	StateUnset   State = ""
	StateValid   State = "valid"
	StateInvalid State = "invalid"
)

// Display is what the form shows for one field.
type Display struct {
	State   State
	Message string
}

// Board keeps the latest display for every field. It implements
// engine.Reporter, so every validation pass overwrites what it shows.
type Board struct {
	fields map[field.Kind]Display
}

func NewBoard() *Board {
	return &Board{fields: make(map[field.Kind]Display, field.Count)}
}

// Report records v as the field's current display.
func (b *Board) Report(_ context.Context, v engine.Verdict) {
	if v.Valid {
		b.fields[v.Kind] = Display{State: StateValid, Message: ValidMessage}
		return
	}
	b.fields[v.Kind] = Display{State: StateInvalid, Message: v.Message}
}

// Display returns what kind currently shows; StateUnset before any pass.
func (b *Board) Display(kind field.Kind) Display {
	return b.fields[kind]
}

// Invalid lists the fields currently shown as invalid, in form order.
func (b *Board) Invalid() []field.Kind {
	var out []field.Kind
	for _, k := range field.All() {
		if b.fields[k].State == StateInvalid {
			out = append(out, k)
		}
	}
	return out
}

// Reset clears every field back to StateUnset.
func (b *Board) Reset() {
	clear(b.fields)
}
