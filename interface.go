package tablefsm

import . "github.com/enetx/g"

// StateMachine is the contract shared by FSM and its thread-safe wrapper.
type StateMachine[S, E comparable] interface {
	Send(E) error
	Current() S
	Initial() S
	PossibleEvents() Slice[E]
	States() Slice[S]
	Events() Slice[E]
	History() Slice[S]
	Reset()
	AddListener(Listener[S, E]) Int
	RemoveListener(Int)
	ToDOT() String
	MarshalJSON() ([]byte, error)
	UnmarshalJSON(data []byte) error
}

// Interface compliance check.
var _ StateMachine[String, String] = (*FSM[String, String])(nil)
