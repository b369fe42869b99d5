package tablefsm

import "github.com/enetx/g"

// ToDOT generates a DOT language string representation of the machine for
// visualization. The current state is highlighted, terminal states are drawn
// as double circles, and parallel transitions between the same pair of states
// are collapsed into one edge with stacked event labels. Output follows the
// table's declaration order, so it is deterministic for a given table.
func (f *FSM[S, E]) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph FSM {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	b.WriteString("  __start [shape=point, style=invis];\n")
	b.WriteString(g.Format("  __start -> \"{}\" [label=\" initial\"];\n\n", f.initial))

	grouped := g.NewMapOrd[g.Pair[S, S], g.Slice[g.String]]()

	for from, row := range f.table.Iter() {
		for event, to := range row.Iter() {
			key := g.Pair[S, S]{Key: from, Value: to}

			labels := grouped.Get(key).UnwrapOr(g.Slice[g.String]{})
			labels.Push(g.Format("{}", event))
			grouped.Set(key, labels)
		}
	}

	for state, row := range f.table.Iter() {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", state))

		switch {
		case state == f.current:
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		case row.Empty():
			attrs.Push("fillcolor=\"#d3d3d3\"", "shape=doublecircle")
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", state, attrs.Join(", ")))
	}

	b.WriteByte('\n')

	for pair, labels := range grouped.Iter() {
		b.WriteString(g.Format("  \"{}\" -> \"{}\" [label=\" {} \"];\n", pair.Key, pair.Value, labels.Join("\\n")))
	}

	b.WriteString("}\n")

	return b.String()
}
