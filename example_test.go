package tablefsm_test

import (
	"fmt"

	"github.com/enetx/g"
	"github.com/enetx/tablefsm"
)

// Example: article publishing workflow driven by a declarative table.
func Example() {
	table := tablefsm.NewTable[g.String, g.String]().
		Transition("draft", "submit", "in_review").
		Transition("in_review", "reject", "draft").
		Transition("in_review", "approve", "approved").
		Terminal("approved")

	m, err := tablefsm.New(table)
	if err != nil {
		fmt.Println(err)
		return
	}

	m.AddListener(func(current, previous, event g.String) {
		fmt.Printf("%s -> %s on %s\n", previous, current, event)
	})

	m.Send("submit")
	m.Send("approve")

	fmt.Println(m.Current())
	// Output:
	// draft -> in_review on submit
	// in_review -> approved on approve
	// approved
}

// Example: enumerated states and events with an explicit initial state.
func Example_possibleEvents() {
	type (
		doorState int
		doorEvent int
	)

	const (
		closed doorState = iota
		open
		locked
	)

	const (
		evOpen doorEvent = iota
		evClose
		evLock
		evUnlock
	)

	table := tablefsm.NewTable[doorState, doorEvent]().
		Transition(closed, evOpen, open).
		Transition(closed, evLock, locked).
		Transition(open, evClose, closed).
		Transition(locked, evUnlock, closed)

	m, err := tablefsm.New(table, locked)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(m.PossibleEvents().Len())

	m.Send(evUnlock)
	fmt.Println(m.Current() == closed)
	fmt.Println(m.PossibleEvents().Len())
	// Output:
	// 1
	// true
	// 2
}
