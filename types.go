package tablefsm

import (
	"sync"

	"github.com/enetx/g"
)

type (
	// Listener is a callback notified after every successfully dispatched
	// event. It receives the committed state, the state before dispatch and
	// the event that was sent. For a terminal no-op, current equals previous.
	Listener[S, E comparable] func(current, previous S, event E)

	// Table is a declarative transition table mapping source states to their
	// outgoing (event -> next state) rows. Rows and the events within a row
	// iterate in declaration order; the first declared row doubles as the
	// default initial state.
	Table[S, E comparable] struct {
		rows g.MapOrd[S, g.MapOrd[E, S]]
	}

	// FSM is the runtime state machine built from a validated Table.
	FSM[S, E comparable] struct {
		table   g.MapOrd[S, g.MapOrd[E, S]]
		initial S
		current S
		history g.Slice[S]

		stateKeys   g.Set[S]
		stateValues g.Set[S]
		eventIDs    g.Set[E]

		listeners g.MapOrd[g.Int, Listener[S, E]]
		nextID    g.Int
	}

	// SyncFSM is a thread-safe wrapper around an FSM.
	// It protects all state-mutating and state-reading operations with a
	// sync.RWMutex, making it safe for use across multiple goroutines.
	// All methods on SyncFSM are the thread-safe counterparts to the methods
	// on the base FSM.
	SyncFSM[S, E comparable] struct {
		fsm *FSM[S, E]
		mu  sync.RWMutex
	}

	// Snapshot is a serializable representation of the machine's runtime
	// state. The table itself is never serialized.
	Snapshot[S comparable] struct {
		Current S          `json:"current"`
		History g.Slice[S] `json:"history"`
	}
)
