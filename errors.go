package tablefsm

import (
	"errors"
	"fmt"
)

// ErrEmptyTable is returned by New when the transition table declares no
// states at all: with no rows there is no first-declared key to serve as the
// default initial state.
var ErrEmptyTable = errors.New("tablefsm: transition table is empty")

// ErrUnreachableState is returned by New when a declared source state, other
// than the first-declared one, is never the target of any transition. Such a
// state could never be entered, which almost always indicates a typo or a
// missing transition in the table.
type ErrUnreachableState[S comparable] struct {
	State S
}

func (e *ErrUnreachableState[S]) Error() string {
	return fmt.Sprintf("tablefsm: state %v has no incoming transition", e.State)
}

// ErrUndefinedTargetState is returned by New when a transition targets a
// state that is never declared as a source. Every target must have its own
// row, even if that row is empty (a terminal state).
type ErrUndefinedTargetState[S comparable] struct {
	State S
}

func (e *ErrUndefinedTargetState[S]) Error() string {
	return fmt.Sprintf("tablefsm: transition targets undeclared state %v", e.State)
}

// ErrInvalidInitialState is returned by New when an explicitly supplied
// initial state is not among the declared source states.
type ErrInvalidInitialState[S comparable] struct {
	State S
}

func (e *ErrInvalidInitialState[S]) Error() string {
	return fmt.Sprintf("tablefsm: initial state %v is not declared in the table", e.State)
}

// ErrUnknownEvent is returned by Send when the event does not appear anywhere
// in the table. The check is against the global event set, so an event that
// is merely invalid for the current state is not an ErrUnknownEvent.
type ErrUnknownEvent[E comparable] struct {
	Event E
}

func (e *ErrUnknownEvent[E]) Error() string {
	return fmt.Sprintf("tablefsm: unknown event %v", e.Event)
}

// ErrNoTransition is returned by Send when the current state has outgoing
// transitions but none for the given event. This fails loudly rather than
// silently ignoring the event, to avoid masking caller bugs; only terminal
// states treat unmatched events as no-ops.
type ErrNoTransition[S, E comparable] struct {
	From  S
	Event E
}

func (e *ErrNoTransition[S, E]) Error() string {
	return fmt.Sprintf("tablefsm: no transition for event %v from state %v", e.Event, e.From)
}

// ErrUnknownState is returned when attempting to restore a snapshot that
// references a state not declared in the table. This prevents the machine
// from entering an invalid, undeclared state.
type ErrUnknownState[S comparable] struct {
	State S
}

func (e *ErrUnknownState[S]) Error() string {
	return fmt.Sprintf("tablefsm: unknown state %v encountered during unmarshaling", e.State)
}
