package tablefsm

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON implements the json.Marshaler interface. Only the runtime
// state (current state and history) is serialized, never the table; restoring
// requires a machine built from the same table. S must be JSON-marshalable.
func (f *FSM[S, E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(Snapshot[S]{
		Current: f.current,
		History: f.history.Clone(),
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface. Every state in the
// snapshot is checked against the table's declared states before anything is
// adopted, so a failed restore leaves the machine unchanged.
func (f *FSM[S, E]) UnmarshalJSON(data []byte) error {
	var snap Snapshot[S]
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to unmarshal fsm snapshot: %w", err)
	}

	if !f.stateKeys.Contains(snap.Current) {
		return &ErrUnknownState[S]{State: snap.Current}
	}

	for state := range snap.History.Iter() {
		if !f.stateKeys.Contains(state) {
			return &ErrUnknownState[S]{State: state}
		}
	}

	f.current = snap.Current
	f.history = snap.History

	return nil
}
