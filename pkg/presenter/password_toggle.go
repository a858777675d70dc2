package presenter

import (
	"context"

	"github.com/dmitrymomot/regform/pkg/statemachine"
)

// Control is one of the two buttons next to the password input.
type Control string

const (
	// ControlOpen reveals the password. Shown while the password is masked.
	ControlOpen Control = "open"
	// ControlClosed masks the password again. Shown while it is revealed.
	ControlClosed Control = "closed"
)

const (
	masked   = statemachine.StringState("masked")
	revealed = statemachine.StringState("revealed")
)

// PasswordToggle models the show/hide affordance of the password field.
// Exactly one of the two controls is displayed at any time.
type PasswordToggle struct {
	machine *statemachine.Machine
	shown   Control
}

// NewPasswordToggle starts masked with the open control displayed.
func NewPasswordToggle() *PasswordToggle {
	p := &PasswordToggle{shown: ControlOpen}
	swap := func(c Control) statemachine.Action {
		return func(context.Context, statemachine.State, statemachine.State, statemachine.Event) error {
			p.shown = c
			return nil
		}
	}
	p.machine = statemachine.MustNew(masked,
		statemachine.WithTransition(masked, revealed, statemachine.StringEvent(ControlOpen),
			statemachine.WithAction(swap(ControlClosed)),
		),
		statemachine.WithTransition(revealed, masked, statemachine.StringEvent(ControlClosed),
			statemachine.WithAction(swap(ControlOpen)),
		),
	)
	return p
}

// Click handles a click on c and reports whether anything changed.
// Clicking a control that does not apply to the current state is a no-op.
func (p *PasswordToggle) Click(ctx context.Context, c Control) bool {
	return p.machine.Fire(ctx, statemachine.StringEvent(c)) == nil
}

// Masked reports whether the password characters are hidden.
func (p *PasswordToggle) Masked() bool {
	return p.machine.Current() == masked
}

// InputType is the input element type to render: "password" or "text".
func (p *PasswordToggle) InputType() string {
	if p.Masked() {
		return "password"
	}
	return "text"
}

// Shown reports whether control c is currently displayed.
func (p *PasswordToggle) Shown(c Control) bool {
	return p.shown == c
}
