// Package tablefsm provides a table-driven, generic finite state machine.
// A machine is built from a declarative transition table mapping
// (state, event) pairs to next states; the table is validated for structural
// soundness at construction time and is immutable afterwards. It is built
// with types and utilities from the github.com/enetx/g library.
//
// Declaration order in the table is load-bearing: the first declared state is
// the default initial state and the only one exempt from the reachability
// check. Every other declared state must be the target of some transition,
// and every target must itself be declared.
//
// The base FSM performs no locking and dispatches synchronously; use Sync for
// a thread-safe wrapper. Calling Send from inside a listener is unspecified
// and should be avoided.
package tablefsm

import "github.com/enetx/g"

// New builds a state machine from the given transition table.
//
// The machine starts in the first-declared state unless an explicit initial
// state is supplied. Construction fails with ErrEmptyTable, ErrUnreachableState,
// ErrUndefinedTargetState or ErrInvalidInitialState; on failure no machine is
// returned.
func New[S, E comparable](table *Table[S, E], initial ...S) (*FSM[S, E], error) {
	rows := table.snapshot()
	if rows.Empty() {
		return nil, ErrEmptyTable
	}

	stateKeys := g.NewSet[S](rows.Len())
	stateValues := g.NewSet[S]()
	eventIDs := g.NewSet[E]()

	var first S

	idx := 0
	for state, row := range rows.Iter() {
		if idx == 0 {
			first = state
		}
		idx++

		stateKeys.Insert(state)

		for event, to := range row.Iter() {
			eventIDs.Insert(event)
			stateValues.Insert(to)
		}
	}

	start := first
	if len(initial) > 0 {
		start = initial[0]
		if !stateKeys.Contains(start) {
			return nil, &ErrInvalidInitialState[S]{State: start}
		}
	}

	// The first-declared state needs no incoming edge; every other declared
	// state does.
	idx = 0
	for state := range rows.Iter() {
		if idx > 0 && !stateValues.Contains(state) {
			return nil, &ErrUnreachableState[S]{State: state}
		}
		idx++
	}

	for state := range stateValues.Iter() {
		if !stateKeys.Contains(state) {
			return nil, &ErrUndefinedTargetState[S]{State: state}
		}
	}

	return &FSM[S, E]{
		table:       rows,
		initial:     start,
		current:     start,
		history:     g.Slice[S]{start},
		stateKeys:   stateKeys,
		stateValues: stateValues,
		eventIDs:    eventIDs,
		listeners:   g.NewMapOrd[g.Int, Listener[S, E]](),
	}, nil
}

// Current returns the machine's current state.
func (f *FSM[S, E]) Current() S { return f.current }

// Initial returns the state the machine started in.
func (f *FSM[S, E]) Initial() S { return f.initial }

// Send dispatches an event to the machine.
//
// An event absent from the whole table fails with ErrUnknownEvent. If the
// current state is terminal (a declared row with no outgoing transitions) the
// state does not change; if the current state has transitions but none for
// this event, Send fails with ErrNoTransition and the state is untouched.
//
// On success the new state is committed first, then every registered listener
// is invoked in registration order with (current, previous, event). Listener
// panics are not recovered; by then the state change is already committed.
func (f *FSM[S, E]) Send(event E) error {
	if !f.eventIDs.Contains(event) {
		return &ErrUnknownEvent[E]{Event: event}
	}

	row := f.table.Get(f.current).UnwrapOr(g.NewMapOrd[E, S]())
	previous := f.current

	if !row.Empty() {
		next := row.Get(event)
		if next.IsNone() {
			return &ErrNoTransition[S, E]{From: f.current, Event: event}
		}

		f.current = next.Some()
		f.history.Push(f.current)
	}

	for _, listener := range f.listeners.Iter() {
		listener(f.current, previous, event)
	}

	return nil
}

// PossibleEvents returns the events the current state can act on, in
// declaration order. Terminal states return an empty slice even though they
// still accept every known event as a no-op.
func (f *FSM[S, E]) PossibleEvents() g.Slice[E] {
	row := f.table.Get(f.current).UnwrapOr(g.NewMapOrd[E, S]())

	var events g.Slice[E]
	for event := range row.Iter() {
		events.Push(event)
	}

	return events
}

// States returns all states declared in the table.
func (f *FSM[S, E]) States() g.Slice[S] {
	return f.stateKeys.ToSlice()
}

// Events returns all events appearing anywhere in the table.
func (f *FSM[S, E]) Events() g.Slice[E] {
	return f.eventIDs.ToSlice()
}

// History returns a copy of the list of visited states, starting with the
// initial state. Terminal no-op dispatches do not append to it.
func (f *FSM[S, E]) History() g.Slice[S] {
	return f.history.Clone()
}

// Reset returns the machine to its initial state and clears the history.
// Listeners stay registered and are not notified.
func (f *FSM[S, E]) Reset() {
	f.current = f.initial
	f.history = g.Slice[S]{f.initial}
}

// AddListener registers a listener and returns a handle for removing it.
// Listeners are invoked in registration order and are never deduplicated.
func (f *FSM[S, E]) AddListener(listener Listener[S, E]) g.Int {
	id := f.nextID
	f.nextID++
	f.listeners.Set(id, listener)

	return id
}

// RemoveListener unregisters the listener with the given handle. Removing an
// unknown handle is a no-op.
func (f *FSM[S, E]) RemoveListener(id g.Int) {
	f.listeners.Delete(id)
}

// Clone creates a new machine on the same validated table with an independent
// current state, history and listener registry. Listeners registered so far
// are carried over; later registrations and removals do not cross between the
// original and the clone.
func (f *FSM[S, E]) Clone() *FSM[S, E] {
	return &FSM[S, E]{
		table:       f.table,
		initial:     f.initial,
		current:     f.initial,
		history:     g.Slice[S]{f.initial},
		stateKeys:   f.stateKeys,
		stateValues: f.stateValues,
		eventIDs:    f.eventIDs,
		listeners:   f.listeners.Clone(),
		nextID:      f.nextID,
	}
}

// Sync wraps the machine in a SyncFSM for concurrent use.
func (f *FSM[S, E]) Sync() *SyncFSM[S, E] {
	return &SyncFSM[S, E]{fsm: f}
}
