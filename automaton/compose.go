package automaton

// Lazy compositions. None of these materialize a new state space; they
// answer Start/Final/ArcsAt by delegating to the automata they wrap,
// computing only what a given query needs.

// --- Complement -----------------------------------------------------

type complementDFA struct {
	inner DFA
}

// Complement returns a DFA accepting exactly the strings inner rejects.
// inner must already be deterministic and total (as the base automata,
// intersections of them, and Determinize results are; a Project result is
// not), or the complement's correctness does not hold;
// Complement does not itself determinize inner.
func Complement(inner DFA) DFA {
	return complementDFA{inner: inner}
}

func (c complementDFA) Start() string            { return c.inner.Start() }
func (c complementDFA) Final(state string) bool   { return !c.inner.Final(state) }
func (c complementDFA) ArcsAt(state string) ArcSet { return c.inner.ArcsAt(state) }

// --- Intersection -----------------------------------------------------

type intersectionArcs struct {
	left, right ArcSet
	symbols     []string
}

func newIntersectionArcs(left, right ArcSet) intersectionArcs {
	seen := make(map[string]struct{})
	var symbols []string
	add := func(sym string) {
		if _, ok := seen[sym]; !ok {
			seen[sym] = struct{}{}
			symbols = append(symbols, sym)
		}
	}
	for _, sym := range right.Symbols() {
		if left.CanMatch(sym) {
			add(sym)
		}
	}
	for _, sym := range left.Symbols() {
		if right.CanMatch(sym) {
			add(sym)
		}
	}
	return intersectionArcs{left: left, right: right, symbols: symbols}
}

func (a intersectionArcs) Contains(symbol string) bool {
	for _, s := range a.symbols {
		if s == symbol {
			return true
		}
	}
	return false
}

func (a intersectionArcs) Symbols() []string { return a.symbols }

func (a intersectionArcs) CanMatch(symbol string) bool {
	return a.Contains(symbol)
}

func (a intersectionArcs) ForSymbol(symbol string) []Arc {
	var out []Arc
	for _, leftArc := range a.left.ForSymbol(symbol) {
		for _, rightArc := range a.right.ForSymbol(symbol) {
			if arc, ok := intersectArc(leftArc, rightArc); ok {
				out = append(out, arc)
			}
		}
	}
	return out
}

// intersectArc combines one arc from each side into the arc their
// conjunction requires, or reports ok=false if the two arcs can never fire
// together (symbol mismatch with neither side being Rho, or a pos/neg
// conflict).
func intersectArc(left, right Arc) (Arc, bool) {
	var symbol string
	switch {
	case left.Symbol == right.Symbol || right.Symbol == Rho:
		symbol = left.Symbol
	case left.Symbol == Rho:
		symbol = right.Symbol
	default:
		return Arc{}, false
	}
	pos := union(left.Pos, right.Pos)
	neg := union(left.Neg, right.Neg)
	if overlaps(pos, neg) {
		return Arc{}, false
	}
	return Arc{
		Symbol: symbol,
		Pos:    pos,
		Neg:    neg,
		Next:   pairKey(left.Next, right.Next),
	}, true
}

type intersectionDFA struct {
	left, right DFA
}

// Intersect returns a DFA accepting strings accepted by both left and
// right. Its states are pair-keys of (left state, right state).
func Intersect(left, right DFA) DFA {
	return intersectionDFA{left: left, right: right}
}

func (d intersectionDFA) Start() string {
	return pairKey(d.left.Start(), d.right.Start())
}

func (d intersectionDFA) Final(state string) bool {
	l, r := unpairKey(state)
	return d.left.Final(l) && d.right.Final(r)
}

func (d intersectionDFA) ArcsAt(state string) ArcSet {
	l, r := unpairKey(state)
	return newIntersectionArcs(d.left.ArcsAt(l), d.right.ArcsAt(r))
}

// --- Projection ---------------------------------------------------------

type projectedArcs struct {
	inner    ArcSet
	variable string
}

func (a projectedArcs) Contains(symbol string) bool { return a.inner.Contains(symbol) }
func (a projectedArcs) Symbols() []string           { return a.inner.Symbols() }
func (a projectedArcs) CanMatch(symbol string) bool { return a.inner.CanMatch(symbol) }

func (a projectedArcs) ForSymbol(symbol string) []Arc {
	arcs := a.inner.ForSymbol(symbol)
	out := make([]Arc, 0, len(arcs))
	for _, arc := range arcs {
		switch {
		case hasVar(arc.Pos, a.variable):
			out = append(out, Arc{Symbol: arc.Symbol, Pos: without(arc.Pos, a.variable), Neg: arc.Neg, Next: arc.Next})
		case hasVar(arc.Neg, a.variable):
			out = append(out, Arc{Symbol: arc.Symbol, Pos: arc.Pos, Neg: without(arc.Neg, a.variable), Next: arc.Next})
		default:
			out = append(out, arc)
		}
	}
	return out
}

type projectedDFA struct {
	inner    DFA
	variable string
}

// Project existentially quantifies variable out of inner: arcs that
// mentioned variable now fire regardless of its value. Because two arcs
// that disagreed only on variable can now both apply to the same symbol at
// the same state, the result is generally an NFA masquerading behind the
// DFA interface — it must be run through Determinize before Accept can
// walk it.
func Project(inner DFA, variable string) DFA {
	return projectedDFA{inner: inner, variable: variable}
}

func (d projectedDFA) Start() string          { return d.inner.Start() }
func (d projectedDFA) Final(state string) bool { return d.inner.Final(state) }
func (d projectedDFA) ArcsAt(state string) ArcSet {
	return projectedArcs{inner: d.inner.ArcsAt(state), variable: d.variable}
}

// --- Determinization ------------------------------------------------

type determinizedArcs struct {
	mappings []ArcSet
	symbols  []string
}

func newDeterminizedArcs(mappings []ArcSet) determinizedArcs {
	seen := make(map[string]struct{})
	var symbols []string
	for _, m := range mappings {
		for _, sym := range m.Symbols() {
			if _, ok := seen[sym]; !ok {
				seen[sym] = struct{}{}
				symbols = append(symbols, sym)
			}
		}
	}
	return determinizedArcs{mappings: mappings, symbols: symbols}
}

func (a determinizedArcs) Contains(symbol string) bool {
	for _, s := range a.symbols {
		if s == symbol {
			return true
		}
	}
	return false
}

func (a determinizedArcs) Symbols() []string { return a.symbols }

func (a determinizedArcs) CanMatch(symbol string) bool { return a.Contains(symbol) }

// ForSymbol runs the powerset construction for this macro-state at symbol:
// collect every variable any fired arc mentions, enumerate every
// partition of those variables into (in, out), and for each partition emit
// one arc whose target is the macro-state of every nextstate reachable by
// an arc compatible with that partition. A known limitation, carried over
// unchanged from the construction this is ported from: a mapping whose
// only entry for symbol is a Rho fallback is not specially accounted for
// here, since no base automaton in this package ever emits a Rho arc.
func (a determinizedArcs) ForSymbol(symbol string) []Arc {
	var arcs []struct {
		mapping int
		arc     Arc
	}
	varSeen := make(map[string]struct{})
	var variables []string
	for mi, m := range a.mappings {
		for _, arc := range m.ForSymbol(symbol) {
			arcs = append(arcs, struct {
				mapping int
				arc     Arc
			}{mi, arc})
			for _, v := range arc.Pos {
				if _, ok := varSeen[v]; !ok {
					varSeen[v] = struct{}{}
					variables = append(variables, v)
				}
			}
			for _, v := range arc.Neg {
				if _, ok := varSeen[v]; !ok {
					varSeen[v] = struct{}{}
					variables = append(variables, v)
				}
			}
		}
	}

	out := make([]Arc, 0, 1<<len(variables))
	for mask := 0; mask < (1 << len(variables)); mask++ {
		var pos, neg []string
		for i, v := range variables {
			if mask&(1<<i) != 0 {
				pos = append(pos, v)
			} else {
				neg = append(neg, v)
			}
		}
		var nextstates []string
		for _, e := range arcs {
			if overlaps(pos, e.arc.Neg) || overlaps(neg, e.arc.Pos) {
				continue
			}
			nextstates = append(nextstates, e.arc.Next)
		}
		out = append(out, Arc{Symbol: symbol, Pos: pos, Neg: neg, Next: setKey(nextstates)})
	}
	return out
}

type determinizedDFA struct {
	nfa DFA
}

// Determinize runs the lazy powerset construction over nfa, an automaton
// that may report more than one matching arc for a given state/symbol
// (typically the result of Project). Its states are set-keys of sets of
// nfa states.
func Determinize(nfa DFA) DFA {
	return determinizedDFA{nfa: nfa}
}

func (d determinizedDFA) Start() string {
	return setKey([]string{d.nfa.Start()})
}

func (d determinizedDFA) Final(state string) bool {
	for _, s := range decodeSetKey(state) {
		if d.nfa.Final(s) {
			return true
		}
	}
	return false
}

func (d determinizedDFA) ArcsAt(state string) ArcSet {
	members := decodeSetKey(state)
	mappings := make([]ArcSet, len(members))
	for i, m := range members {
		mappings[i] = d.nfa.ArcsAt(m)
	}
	return newDeterminizedArcs(mappings)
}
