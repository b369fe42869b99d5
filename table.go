package tablefsm

import "github.com/enetx/g"

// NewTable creates an empty transition table.
func NewTable[S, E comparable]() *Table[S, E] {
	return &Table[S, E]{rows: g.NewMapOrd[S, g.MapOrd[E, S]]()}
}

// Transition declares that event moves the machine from one state to another.
// The source state's row is created on first use and keeps its position in
// declaration order. Redeclaring the same (from, event) pair overwrites the
// previous target.
func (t *Table[S, E]) Transition(from S, event E, to S) *Table[S, E] {
	row := t.rows.Get(from).UnwrapOr(g.NewMapOrd[E, S]())
	row.Set(event, to)
	t.rows.Set(from, row)

	return t
}

// Terminal declares states with no outgoing transitions. A terminal state
// accepts any globally known event as a no-op. Declaring a state that already
// has a row leaves the row untouched.
func (t *Table[S, E]) Terminal(states ...S) *Table[S, E] {
	for _, state := range states {
		if !t.rows.Contains(state) {
			t.rows.Set(state, g.NewMapOrd[E, S]())
		}
	}

	return t
}

// Len returns the number of declared source states.
func (t *Table[S, E]) Len() g.Int { return t.rows.Len() }

// snapshot deep-copies the rows so the machine owns its table exclusively.
// Builder mutations after New must not reach a constructed machine.
func (t *Table[S, E]) snapshot() g.MapOrd[S, g.MapOrd[E, S]] {
	rows := g.NewMapOrd[S, g.MapOrd[E, S]](t.rows.Len())

	for state, row := range t.rows.Iter() {
		rows.Set(state, row.Clone())
	}

	return rows
}
