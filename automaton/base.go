package automaton

// Base automata: one builder-backed Table per atomic predicate, ported
// directly from the arc tables worked out in the original translation
// module. Each ranges over alphabet, the finite set of user symbols the
// formula is being compiled against.

// Universal accepts every string over alphabet: a single accepting state
// with a self-loop on every symbol.
func Universal(alphabet []string) *Table {
	b := NewBuilder()
	start := b.AddState()
	b.SetStart(start)
	b.SetFinal(start)
	for _, s := range alphabet {
		b.AddArc(start, start, s, nil, nil)
	}
	return b.Build()
}

// SymbolDFA accepts strings where the letter at the position named by
// variable is exactly symbol. symbol must be a member of alphabet.
func SymbolDFA(symbol string, variable string, alphabet []string) *Table {
	if !hasVar(alphabet, symbol) {
		panic(newPreconditionError("symbol-in-alphabet", "symbol %q is not a member of the translation alphabet", symbol))
	}
	b := NewBuilder()
	start := b.AddState()
	sink := b.AddState()
	b.SetStart(start)
	b.SetFinal(start)
	for _, s := range alphabet {
		b.AddArc(start, start, s, nil, []string{variable})
		next := sink
		if s == symbol {
			next = start
		}
		b.AddArc(start, next, s, []string{variable}, nil)
		b.AddArc(sink, sink, s, nil, nil)
	}
	return b.Build()
}

// EqualDFA accepts strings where left and right denote the same set of
// positions.
func EqualDFA(left, right string, alphabet []string) *Table {
	if left == right {
		return Universal(alphabet)
	}
	b := NewBuilder()
	start := b.AddState()
	sink := b.AddState()
	b.SetStart(start)
	b.SetFinal(start)
	for _, s := range alphabet {
		b.AddArc(start, start, s, nil, []string{left, right})
		b.AddArc(start, start, s, []string{left, right}, nil)
		b.AddArc(start, sink, s, []string{left}, []string{right})
		b.AddArc(start, sink, s, []string{right}, []string{left})
		b.AddArc(sink, sink, s, nil, nil)
	}
	return b.Build()
}

// ContainedInDFA accepts strings where every position in left is also in
// right.
func ContainedInDFA(left, right string, alphabet []string) *Table {
	if left == right {
		return Universal(alphabet)
	}
	b := NewBuilder()
	start := b.AddState()
	sink := b.AddState()
	b.SetStart(start)
	b.SetFinal(start)
	for _, s := range alphabet {
		b.AddArc(start, start, s, nil, []string{left})
		b.AddArc(start, start, s, []string{left, right}, nil)
		b.AddArc(start, sink, s, []string{left}, []string{right})
		b.AddArc(sink, sink, s, nil, nil)
	}
	return b.Build()
}

// SingletonDFA accepts strings where variable denotes a set of exactly one
// position.
func SingletonDFA(variable string, alphabet []string) *Table {
	b := NewBuilder()
	start := b.AddState()
	final := b.AddState()
	sink := b.AddState()
	b.SetStart(start)
	b.SetFinal(final)
	for _, s := range alphabet {
		b.AddArc(start, start, s, nil, []string{variable})
		b.AddArc(start, final, s, []string{variable}, nil)
		b.AddArc(final, final, s, nil, []string{variable})
		b.AddArc(final, sink, s, []string{variable}, nil)
		b.AddArc(sink, sink, s, nil, nil)
	}
	return b.Build()
}

// LessDFA accepts strings where the (singleton) position of left comes
// strictly before the (singleton) position of right.
func LessDFA(left, right string, alphabet []string) *Table {
	b := NewBuilder()
	start := b.AddState()
	final := b.AddState()
	sink := b.AddState()
	b.SetStart(start)
	b.SetFinal(start)
	b.SetFinal(final)
	for _, s := range alphabet {
		b.AddArc(start, sink, s, []string{left, right}, nil)
		b.AddArc(start, start, s, nil, []string{left, right})
		b.AddArc(start, start, s, []string{left}, []string{right})
		b.AddArc(start, final, s, []string{right}, []string{left})
		b.AddArc(final, final, s, nil, []string{left})
		b.AddArc(final, sink, s, []string{left}, nil)
		b.AddArc(sink, sink, s, nil, nil)
	}
	return b.Build()
}
