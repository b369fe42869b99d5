package tablefsm

import . "github.com/enetx/g"

// Interface compliance check.
var _ StateMachine[String, String] = (*SyncFSM[String, String])(nil)

// Send is the thread-safe version of FSM.Send.
// It atomically dispatches an event, including listener notification.
func (sf *SyncFSM[S, E]) Send(event E) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Send(event)
}

// Current is the thread-safe version of FSM.Current.
// It returns the machine's current state.
func (sf *SyncFSM[S, E]) Current() S {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Current()
}

// Initial is the thread-safe version of FSM.Initial.
// It returns the state the machine started in.
func (sf *SyncFSM[S, E]) Initial() S {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Initial()
}

// PossibleEvents is the thread-safe version of FSM.PossibleEvents.
// It returns the events the current state can act on.
func (sf *SyncFSM[S, E]) PossibleEvents() Slice[E] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.PossibleEvents()
}

// States is the thread-safe version of FSM.States.
// It returns all states declared in the table.
func (sf *SyncFSM[S, E]) States() Slice[S] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.States()
}

// Events is the thread-safe version of FSM.Events.
// It returns all events appearing anywhere in the table.
func (sf *SyncFSM[S, E]) Events() Slice[E] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Events()
}

// History is the thread-safe version of FSM.History.
// It returns a copy of the list of visited states.
func (sf *SyncFSM[S, E]) History() Slice[S] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.History()
}

// Reset is the thread-safe version of FSM.Reset.
// It returns the machine to its initial state and clears the history.
func (sf *SyncFSM[S, E]) Reset() {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.fsm.Reset()
}

// AddListener is the thread-safe version of FSM.AddListener.
// It registers a listener and returns a handle for removing it.
func (sf *SyncFSM[S, E]) AddListener(listener Listener[S, E]) Int {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.AddListener(listener)
}

// RemoveListener is the thread-safe version of FSM.RemoveListener.
// It unregisters the listener with the given handle.
func (sf *SyncFSM[S, E]) RemoveListener(id Int) {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.fsm.RemoveListener(id)
}

// ToDOT is the thread-safe version of FSM.ToDOT.
// It generates a DOT language string representation of the machine.
func (sf *SyncFSM[S, E]) ToDOT() String {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.ToDOT()
}

// MarshalJSON implements the json.Marshaler interface for thread-safe
// serialization of the machine's runtime state to JSON.
func (sf *SyncFSM[S, E]) MarshalJSON() ([]byte, error) {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for thread-safe
// restoration of the machine's runtime state from JSON.
func (sf *SyncFSM[S, E]) UnmarshalJSON(data []byte) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.UnmarshalJSON(data)
}
