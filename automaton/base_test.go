package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func words(ss ...string) []string { return ss }

func TestUniversal_AcceptsEverything(t *testing.T) {
	alphabet := []string{"a", "b"}
	dfa := Universal(alphabet)

	for _, w := range [][]string{{}, {"a"}, {"b", "a", "b"}} {
		ok, err := Accept(dfa, w, Limits{}, nil)
		assert.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestSymbolDFA_AcceptsExactlyMatchingSymbol(t *testing.T) {
	alphabet := []string{"a", "b"}
	// Symbol('a', x) walked directly, with x free: at each position the
	// arc is chosen whose pos/neg sets match x being in (at tc.pos) or out
	// (everywhere else), so x ranges over a single position. No
	// Project/Determinize is involved.
	dfa := SymbolDFA("a", "x", alphabet)

	testCases := []struct {
		name   string
		word   []string
		pos    int // position of variable x, -1 = nowhere
		expect bool
	}{
		{"x at the a", []string{"b", "a"}, 1, true},
		{"x at the b", []string{"b", "a"}, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			state := dfa.Start()
			ok := true
			for i, sym := range tc.word {
				var pos, neg []string
				if i == tc.pos {
					pos = []string{"x"}
				} else {
					neg = []string{"x"}
				}
				arcs := dfa.ArcsAt(state).ForSymbol(sym)
				next := ""
				found := false
				for _, arc := range arcs {
					if sameSet(arc.Pos, pos) && sameSet(arc.Neg, neg) {
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
			assert.Equal(t, tc.expect, ok && dfa.Final(state))
		})
	}
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for _, x := range a {
		if !hasVar(b, x) {
			return false
		}
	}
	return true
}

func TestSymbolDFA_RejectsSymbolOutsideAlphabet(t *testing.T) {
	assert.Panics(t, func() {
		SymbolDFA("z", "x", []string{"a", "b"})
	})
}

func TestEqualDFA_SameNameIsUniversal(t *testing.T) {
	dfa := EqualDFA("x", "x", []string{"a"})
	ok, err := Accept(dfa, words("a", "a"), Limits{}, nil)
	assert.NoError(t, err)
	assert.True(t, ok)
}
