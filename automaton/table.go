// Package automaton implements the labelled-transition DFA model M2L-Str
// formulas compile to: a materialized builder-backed Table for the base
// automata, and a set of lazy compositions (complement, intersection,
// projection, determinization) layered over any DFA without ever
// materializing the composed state space up front.
package automaton

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dekarrin/rosed"
)

// DFA is the capability every automaton in this package exposes,
// materialized or composed: a start state, a finality test, and the arcs
// leaving any given state.
type DFA interface {
	Start() string
	Final(state string) bool
	ArcsAt(state string) ArcSet
}

// Table is a materialized, immutable-after-Build DFA: every state and arc
// was explicitly added through a Builder. It backs every base automaton
// (Universal, SymbolDFA, EqualDFA, ContainedInDFA, SingletonDFA, LessDFA).
type Table struct {
	start  string
	final  map[string]bool
	arcs   map[string]*listArcs
	order  []string // insertion order, for deterministic String() output
}

// Start returns the start state.
func (t *Table) Start() string { return t.start }

// Final reports whether state is accepting.
func (t *Table) Final(state string) bool { return t.final[state] }

// ArcsAt returns the arcs leaving state. Panics if state was never added.
func (t *Table) ArcsAt(state string) ArcSet {
	a, ok := t.arcs[state]
	if !ok {
		panic(newPreconditionError("unknown-state", "state %q was never added to this table", state))
	}
	return a
}

// String renders the table as a bracketed state dump, wrapping unusually
// long lines at 100 columns.
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString("<START: ")
	sb.WriteString(t.start)
	sb.WriteString(", STATES:\n")
	for _, state := range t.order {
		line := "\t" + state
		if t.final[state] {
			line += " (final)"
		}
		line += " ["
		symbols := t.arcs[state].Symbols()
		sort.Strings(symbols)
		parts := make([]string, 0, len(symbols))
		for _, sym := range symbols {
			for _, arc := range t.arcs[state].bySymbol[sym] {
				parts = append(parts, arc.String())
			}
		}
		line += strings.Join(parts, ", ") + "]"
		sb.WriteString(rosed.Edit(line).Wrap(100).String())
		sb.WriteString("\n")
	}
	sb.WriteString(">")
	return sb.String()
}

// Builder incrementally constructs a Table. States must be added with
// AddState before they can be referenced by SetStart, SetFinal, or
// AddArc; referencing an unknown state panics, matching the teacher's
// automaton builder convention of failing fast on a dangling reference.
type Builder struct {
	t      *Table
	nextID int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		t: &Table{
			final: make(map[string]bool),
			arcs:  make(map[string]*listArcs),
		},
	}
}

// AddState allocates and returns a new state identifier.
func (b *Builder) AddState() string {
	id := strconv.Itoa(b.nextID)
	b.nextID++
	b.t.arcs[id] = newListArcs()
	b.t.order = append(b.t.order, id)
	return id
}

func (b *Builder) mustHave(state string) {
	if _, ok := b.t.arcs[state]; !ok {
		panic(newPreconditionError("unknown-state", "state %q was never added to this builder", state))
	}
}

// SetStart marks state as the start state.
func (b *Builder) SetStart(state string) {
	b.mustHave(state)
	b.t.start = state
}

// SetFinal marks state as accepting.
func (b *Builder) SetFinal(state string) {
	b.mustHave(state)
	b.t.final[state] = true
}

// AddArc adds an arc from state to next on symbol, guarded by pos/neg.
// Panics if pos and neg overlap, or if state/next were never added.
func (b *Builder) AddArc(state, next, symbol string, pos, neg []string) {
	b.mustHave(state)
	b.mustHave(next)
	if overlaps(pos, neg) {
		panic(newPreconditionError("pos-neg-disjoint", "arc from %q on %q has overlapping pos/neg sets: %v / %v", state, symbol, pos, neg))
	}
	b.t.arcs[state].add(Arc{Symbol: symbol, Pos: pos, Neg: neg, Next: next})
}

// Build finalizes and returns the constructed Table.
func (b *Builder) Build() *Table {
	return b.t
}
