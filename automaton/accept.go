package automaton

// Limits bounds the resources a membership walk may consume. The zero
// value is unbounded, matching the teacher's convention of a zero-valued
// config struct being immediately usable. It can be decoded from a TOML
// document via github.com/BurntSushi/toml, using the same struct-tag
// decode convention the teacher uses for its world-file config structs.
type Limits struct {
	// MaxMacroStates caps the number of distinct states a single Accept
	// call may visit before giving up with ErrMacroStateBudgetExceeded.
	// 0 means unbounded.
	MaxMacroStates int `toml:"max_macro_states"`
}

// Tracer receives a callback each time Accept reaches a state it has not
// seen before during the current walk, the start state included. It exists purely for
// callers instrumenting determinization blowup during development; the
// core never logs on its own.
type Tracer interface {
	OnVisitState(state string)
}

// Accept walks word through dfa one symbol at a time, starting from
// dfa.Start(), and reports whether the final state is accepting.
//
// At every step the arcs for the input symbol must lead to exactly one
// distinct successor; no arc is ordinary rejection (returns false, nil),
// but more than one distinct successor is an internal invariant violation (the automaton being
// walked was not actually deterministic and total) and panics with an
// InvariantError rather than returning an error, per the error taxonomy:
// this can never be a property of the user's input, only of a bug in how
// the DFA was built.
func Accept(dfa DFA, word []string, limits Limits, tracer Tracer) (bool, error) {
	state := dfa.Start()
	visited := map[string]struct{}{state: {}}
	if tracer != nil {
		tracer.OnVisitState(state)
	}

	for _, symbol := range word {
		next, ok := step(dfa, state, symbol)
		if !ok {
			return false, nil
		}
		state = next
		if _, seen := visited[state]; !seen {
			visited[state] = struct{}{}
			if tracer != nil {
				tracer.OnVisitState(state)
			}
			if limits.MaxMacroStates > 0 && len(visited) > limits.MaxMacroStates {
				return false, ErrMacroStateBudgetExceeded
			}
		}
	}
	return dfa.Final(state), nil
}

// step computes the single successor of state on symbol. ok is false when
// there is no applicable arc (rejection, not an error).
func step(dfa DFA, state, symbol string) (next string, ok bool) {
	arcs := dfa.ArcsAt(state).ForSymbol(symbol)
	if len(arcs) == 0 {
		return "", false
	}
	next = arcs[0].Next
	distinct := map[string]struct{}{next: {}}
	for _, arc := range arcs[1:] {
		distinct[arc.Next] = struct{}{}
	}
	if len(distinct) != 1 {
		targets := make([]string, 0, len(distinct))
		for t := range distinct {
			targets = append(targets, t)
		}
		panic(newInvariantError("single-successor", "state %q has %d distinct successors on symbol %q, want exactly 1: %v", state, len(distinct), symbol, targets))
	}
	return next, true
}
