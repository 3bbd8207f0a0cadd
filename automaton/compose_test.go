package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplement_InvertsFinality(t *testing.T) {
	alphabet := []string{"a", "b"}
	dfa := Universal(alphabet)
	comp := Complement(dfa)

	ok, err := Accept(comp, words("a", "b"), Limits{}, nil)
	assert.NoError(t, err)
	assert.False(t, ok, "complement of a universal automaton accepts nothing")
}

func TestIntersect_BothMustAccept(t *testing.T) {
	alphabet := []string{"a", "b"}
	x, y := "x", "y"

	// Equal(x,y) ∧ ContainedIn(x,y) is just Equal(x,y) once both hold,
	// but exercising both sides through Intersect is the point here.
	eq := EqualDFA(x, y, alphabet)
	contained := ContainedInDFA(x, y, alphabet)
	combined := Intersect(eq, contained)

	// both automata are total over {x,y} regardless of membership, so any
	// word is "accepted" by the raw conjunction at the free-variable level
	// only insofar as neither automaton ever leaves its start state when
	// x and y always agree (both empty, satisfying Equal trivially and
	// ContainedIn trivially).
	state := combined.Start()
	ok := true
	for _, sym := range words("a", "b") {
		arcs := combined.ArcsAt(state).ForSymbol(sym)
		next := ""
		found := false
		for _, arc := range arcs {
			if len(arc.Pos) == 0 && len(arc.Neg) == 2 {
				next = arc.Next
				found = true
				break
			}
		}
		if !found {
			ok = false
			break
		}
		state = next
	}
	assert.True(t, ok)
	assert.True(t, combined.Final(state))
}

func TestProjectThenDeterminize_TotalAndDeterministic(t *testing.T) {
	alphabet := []string{"a", "b"}
	dfa := SymbolDFA("a", "x", alphabet)
	projected := Project(dfa, "x")
	det := Determinize(projected)

	// Trivially satisfiable by picking x = empty set regardless of the
	// string, since x is never constrained to be a singleton; this exercises that
	// Determinize produces a single well-defined successor per symbol.
	ok, err := Accept(det, words("a", "b", "a"), Limits{}, nil)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestAccept_RespectsMacroStateBudget(t *testing.T) {
	// A 3-state chain s0 -a-> s1 -a-> s2(final), each state distinct, so a
	// 2-symbol word visits 3 distinct states total (including the start).
	b := NewBuilder()
	s0 := b.AddState()
	s1 := b.AddState()
	s2 := b.AddState()
	b.SetStart(s0)
	b.SetFinal(s2)
	b.AddArc(s0, s1, "a", nil, nil)
	b.AddArc(s1, s2, "a", nil, nil)
	b.AddArc(s2, s2, "a", nil, nil)
	chain := b.Build()

	_, err := Accept(chain, words("a", "a"), Limits{}, nil)
	assert.NoError(t, err)

	_, err = Accept(chain, words("a", "a"), Limits{MaxMacroStates: 2}, nil)
	assert.ErrorIs(t, err, ErrMacroStateBudgetExceeded)
}

type recordingTracer struct {
	visited []string
}

func (r *recordingTracer) OnVisitState(state string) {
	r.visited = append(r.visited, state)
}

func TestAccept_TracerSeesEveryNewState(t *testing.T) {
	alphabet := []string{"a", "b"}
	dfa := Universal(alphabet)
	tr := &recordingTracer{}

	// Universal has a single state, so the start state is the only new
	// state the walk ever reaches.
	_, err := Accept(dfa, words("a", "b"), Limits{}, tr)
	assert.NoError(t, err)
	assert.Equal(t, []string{dfa.Start()}, tr.visited)
}
