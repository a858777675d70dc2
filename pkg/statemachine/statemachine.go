package statemachine

import (
	"context"
	"fmt"
)

// State represents a state in the state machine.
type State interface {
	Name() string
}

// Event represents an event that can trigger a state transition.
type Event interface {
	Name() string
}

// Action runs side effects during a transition. Returning an error keeps the
// machine in its current state.
type Action func(ctx context.Context, from, to State, event Event) error

// Transition defines a state change triggered by an event.
type Transition struct {
	From    State
	To      State
	Event   Event
	Actions []Action // run in order before the state changes
}

// StringState is a plain string State.
type StringState string

func (s StringState) Name() string { return string(s) }

// StringEvent is a plain string Event.
type StringEvent string

func (e StringEvent) Name() string { return string(e) }

// Machine is an in-memory finite state machine. It is meant to be driven from
// a single goroutine, such as a UI event loop, and does no locking.
type Machine struct {
	current     State
	transitions map[string]map[string]Transition // from -> event -> transition
}

// Option configures a Machine during construction.
type Option func(*Machine) error

// New creates a machine in the initial state.
func New(initial State, opts ...Option) (*Machine, error) {
	if initial == nil {
		return nil, fmt.Errorf("initial state cannot be nil")
	}
	m := &Machine{
		current:     initial,
		transitions: make(map[string]map[string]Transition),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is like New but panics on error.
func MustNew(initial State, opts ...Option) *Machine {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// WithTransition registers a transition with optional actions.
func WithTransition(from, to State, event Event, opts ...TransitionOption) Option {
	return func(m *Machine) error {
		t := Transition{From: from, To: to, Event: event}
		for _, opt := range opts {
			opt(&t)
		}
		return m.add(t)
	}
}

// TransitionOption configures a single transition.
type TransitionOption func(*Transition)

// WithAction appends an action to the transition. Nil is ignored.
func WithAction(a Action) TransitionOption {
	return func(t *Transition) {
		if a != nil {
			t.Actions = append(t.Actions, a)
		}
	}
}

func (m *Machine) add(t Transition) error {
	if t.From == nil || t.To == nil || t.Event == nil {
		return ErrInvalidTransition
	}
	byEvent, ok := m.transitions[t.From.Name()]
	if !ok {
		byEvent = make(map[string]Transition)
		m.transitions[t.From.Name()] = byEvent
	}
	if _, dup := byEvent[t.Event.Name()]; dup {
		return NewErrDuplicateTransition(t.From.Name(), t.Event.Name())
	}
	byEvent[t.Event.Name()] = t
	return nil
}

// Current returns the state the machine is in.
func (m *Machine) Current() State {
	return m.current
}

// Fire applies event to the current state.
func (m *Machine) Fire(ctx context.Context, event Event) error {
	if event == nil {
		return ErrInvalidEvent
	}

	from, name := m.current.Name(), event.Name()
	t, ok := m.transitions[from][name]
	if !ok {
		return NewErrNoTransitionAvailable(from, name)
	}

	for _, action := range t.Actions {
		if err := action(ctx, m.current, t.To, event); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}

	m.current = t.To
	return nil
}
