package automaton

import "fmt"

// Rho is the wildcard symbol: an arc table that only has a Rho entry is
// used for any input symbol without an explicit arc of its own. None of
// this module's base automata ever need it, since they always enumerate
// the full alphabet explicitly, but compositions that consult an arc
// table must still honor it wherever one appears.
const Rho = "\x00RHO\x00"

// Arc is a single labelled transition: on Symbol, when every variable in
// Pos is "in" at this position and every variable in Neg is "out", move to
// Next. Pos and Neg must be disjoint.
type Arc struct {
	Symbol string
	Pos    []string
	Neg    []string
	Next   string
}

func (a Arc) String() string {
	return fmt.Sprintf("=(%s, +%v, -%v)=> %s", a.Symbol, a.Pos, a.Neg, a.Next)
}

func hasVar(vars []string, name string) bool {
	for _, v := range vars {
		if v == name {
			return true
		}
	}
	return false
}

func overlaps(a, b []string) bool {
	for _, x := range a {
		if hasVar(b, x) {
			return true
		}
	}
	return false
}

func without(vars []string, name string) []string {
	out := make([]string, 0, len(vars))
	for _, v := range vars {
		if v != name {
			out = append(out, v)
		}
	}
	return out
}

func union(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	for _, v := range b {
		if !hasVar(a, v) {
			out = append(out, v)
		}
	}
	return out
}

// ArcSet is a collection of arcs leaving one state, indexed by symbol and
// supporting fallback lookup through Rho. It is the Go counterpart of a
// SymbolToArcsMapping.
type ArcSet interface {
	// Contains reports whether symbol has an explicit (non-fallback) entry.
	Contains(symbol string) bool
	// Symbols lists every symbol with an explicit entry.
	Symbols() []string
	// ForSymbol returns the arcs for symbol, falling back to the arcs
	// stored under Rho if symbol has no explicit entry.
	ForSymbol(symbol string) []Arc
	// CanMatch reports whether ForSymbol would return anything non-empty.
	CanMatch(symbol string) bool
}

// listArcs is the ArcSet backing a materialized Table state.
type listArcs struct {
	bySymbol map[string][]Arc
}

func newListArcs() *listArcs {
	return &listArcs{bySymbol: make(map[string][]Arc)}
}

func (l *listArcs) add(a Arc) {
	l.bySymbol[a.Symbol] = append(l.bySymbol[a.Symbol], a)
}

func (l *listArcs) Contains(symbol string) bool {
	_, ok := l.bySymbol[symbol]
	return ok
}

func (l *listArcs) Symbols() []string {
	out := make([]string, 0, len(l.bySymbol))
	for s := range l.bySymbol {
		out = append(out, s)
	}
	return out
}

func (l *listArcs) ForSymbol(symbol string) []Arc {
	if arcs, ok := l.bySymbol[symbol]; ok {
		return arcs
	}
	return l.bySymbol[Rho]
}

func (l *listArcs) CanMatch(symbol string) bool {
	return l.Contains(symbol) || l.Contains(Rho)
}
