package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("invalid transition: from, to, or event cannot be nil")
	ErrInvalidEvent      = errors.New("invalid event: event cannot be nil")
)

// ErrNoTransitionAvailable means the current state defines no transition for the event.
type ErrNoTransitionAvailable struct {
	StateName string
	EventName string
}

func (e *ErrNoTransitionAvailable) Error() string {
	return fmt.Sprintf("no transition available from state '%s' for event '%s'", e.StateName, e.EventName)
}

func NewErrNoTransitionAvailable(state, event string) *ErrNoTransitionAvailable {
	return &ErrNoTransitionAvailable{StateName: state, EventName: event}
}

// ErrDuplicateTransition means a state already has a transition for the event.
type ErrDuplicateTransition struct {
	StateName string
	EventName string
}

func (e *ErrDuplicateTransition) Error() string {
	return fmt.Sprintf("transition from state '%s' for event '%s' is already defined", e.StateName, e.EventName)
}

func NewErrDuplicateTransition(state, event string) *ErrDuplicateTransition {
	return &ErrDuplicateTransition{StateName: state, EventName: event}
}

func IsNoTransitionAvailableError(err error) bool {
	var e *ErrNoTransitionAvailable
	return errors.As(err, &e)
}

func IsDuplicateTransitionError(err error) bool {
	var e *ErrDuplicateTransition
	return errors.As(err, &e)
}
