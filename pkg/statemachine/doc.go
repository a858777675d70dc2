// Package statemachine is a small finite state machine for UI affordances.
//
// States and events are anything with a Name; StringState and StringEvent
// cover the common case. Each state has at most one transition per event.
// A transition may carry actions, which run before the state changes and can
// abort it by returning an error.
//
//	const (
//	    Hidden  = statemachine.StringState("hidden")
//	    Visible = statemachine.StringState("visible")
//	    Show    = statemachine.StringEvent("show")
//	)
//
//	m := statemachine.MustNew(Hidden,
//	    statemachine.WithTransition(Hidden, Visible, Show),
//	)
//	err := m.Fire(ctx, Show)
//
// Fire returns *ErrNoTransitionAvailable when the current state has no
// transition for the event; IsNoTransitionAvailableError detects it.
//
// A Machine does no locking. Drive it from one goroutine.
package statemachine
