package translate

import (
	"strings"
	"testing"

	"github.com/dekarrin/m2lstr/automaton"
	"github.com/dekarrin/m2lstr/wff"
	"github.com/stretchr/testify/assert"
)

func asWord(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, len(s))
	for i, r := range s {
		out[i] = string(r)
	}
	return out
}

func checkMembership(t *testing.T, dfa automaton.DFA, accept, reject []string) {
	t.Helper()
	for _, s := range accept {
		ok, err := automaton.Accept(dfa, asWord(s), automaton.Limits{}, nil)
		assert.NoError(t, err)
		assert.Truef(t, ok, "should accept %q", s)
	}
	for _, s := range reject {
		ok, err := automaton.Accept(dfa, asWord(s), automaton.Limits{}, nil)
		assert.NoError(t, err)
		assert.Falsef(t, ok, "should not accept %q", s)
	}
}

// TestTranslate_ExistsTrivial reproduces the original suite's
// Exists(x, x == x) scenario, accepting every nonempty string.
func TestTranslate_ExistsTrivial(t *testing.T) {
	alphabet := strings.Split("a b", " ")
	x := wff.NewVariable("x", wff.FirstOrder)
	formula := wff.NewExists(x, wff.NewEqual(x, x))

	dfa := Translate(formula, alphabet)
	checkMembership(t, dfa,
		[]string{"a", "b", "aa", "ab", "ba", "bb"},
		[]string{""},
	)
}

func TestTranslate_ExistsSymbol(t *testing.T) {
	alphabet := strings.Split("a b", " ")
	x := wff.NewVariable("x", wff.FirstOrder)
	formula := wff.NewExists(x, wff.NewSymbol("a", x))

	dfa := Translate(formula, alphabet)
	checkMembership(t, dfa,
		[]string{"a", "ab", "ba"},
		[]string{"", "b", "bb"},
	)
}

func TestTranslate_ForallSymbol(t *testing.T) {
	alphabet := strings.Split("a b", " ")
	x := wff.NewVariable("x", wff.FirstOrder)
	formula := wff.NewForall(x, wff.NewSymbol("a", x))

	dfa := Translate(formula, alphabet)
	checkMembership(t, dfa,
		[]string{"", "a", "aa", "aaa"},
		[]string{"b", "ab", "ba"},
	)
}

func TestTranslate_And(t *testing.T) {
	alphabet := strings.Split("a b c", " ")
	x := wff.NewVariable("x", wff.FirstOrder)
	y := wff.NewVariable("y", wff.FirstOrder)
	formula := wff.NewAnd(
		wff.NewExists(x, wff.NewSymbol("a", x)),
		wff.NewExists(y, wff.NewSymbol("b", y)),
	)

	dfa := Translate(formula, alphabet)
	checkMembership(t, dfa,
		[]string{"ab", "ba", "abc", "acb", "bac", "bca", "cab", "cba"},
		[]string{"", "a", "b", "c", "aa", "ac", "bb", "bc", "ca", "cb", "cc"},
	)
}

func TestTranslate_Less(t *testing.T) {
	alphabet := strings.Split("a b c", " ")
	x := wff.NewVariable("x", wff.FirstOrder)
	y := wff.NewVariable("y", wff.FirstOrder)
	formula := wff.NewExists(x, wff.NewAnd(
		wff.NewSymbol("a", x),
		wff.NewExists(y, wff.NewAnd(wff.NewSymbol("b", y), wff.NewLess(x, y))),
	))

	dfa := Translate(formula, alphabet)
	checkMembership(t, dfa,
		[]string{"ab", "abc", "acb", "cab"},
		[]string{"", "a", "b", "c", "aa", "ac", "ba", "bb", "bc", "ca", "cb", "cc", "bac", "bca", "cba"},
	)
}

func TestTranslate_First(t *testing.T) {
	alphabet := strings.Split("a b c", " ")
	x := wff.NewVariable("x", wff.FirstOrder)
	y := wff.NewVariable("y", wff.FirstOrder)

	accept := []string{"a", "aa", "ab", "ac"}
	reject := []string{"", "b", "c", "ba", "bb", "bc", "ca", "cb", "cc"}

	formula := wff.NewExists(x, wff.NewAnd(
		wff.NewSymbol("a", x),
		wff.NewNot(wff.NewExists(y, wff.NewLess(y, x))),
	))
	checkMembership(t, Translate(formula, alphabet), accept, reject)

	formula2 := wff.NewExists(x, wff.NewAnd(
		wff.NewSymbol("a", x),
		wff.NewForall(y, x.Leq(y)),
	))
	checkMembership(t, Translate(formula2, alphabet), accept, reject)
}

func TestTranslate_Last(t *testing.T) {
	alphabet := strings.Split("a b c", " ")
	x := wff.NewVariable("x", wff.FirstOrder)
	y := wff.NewVariable("y", wff.FirstOrder)

	accept := []string{"a", "aa", "ba", "ca"}
	reject := []string{"", "b", "c", "ab", "bb", "cb", "ac", "bc", "cc"}

	formula := wff.NewExists(x, wff.NewAnd(
		wff.NewSymbol("a", x),
		wff.NewNot(wff.NewExists(y, wff.NewLess(x, y))),
	))
	checkMembership(t, Translate(formula, alphabet), accept, reject)

	formula2 := wff.NewExists(x, wff.NewAnd(
		wff.NewSymbol("a", x),
		wff.NewForall(y, x.Geq(y)),
	))
	checkMembership(t, Translate(formula2, alphabet), accept, reject)
}

// TestTranslate_SecondAndSecondToLastAreB reproduces the worked example
// from the original implementation's end-to-end example suite, as the
// conjunction of two sub-formulas: in secondIsB, x is the first position
// and y is the position right after it; in secondToLastIsB, x is the last
// position and y is the position right before it. In both, y must hold 'b'.
func TestTranslate_SecondAndSecondToLastAreB(t *testing.T) {
	alphabet := strings.Split("a b", " ")
	x := wff.NewVariable("x", wff.FirstOrder)
	y := wff.NewVariable("y", wff.FirstOrder)
	z := wff.NewVariable("z", wff.FirstOrder)

	secondIsB := wff.NewExists(x, wff.NewAnd(
		wff.NewNot(wff.NewExists(y, wff.NewLess(y, x))),
		wff.NewExists(y, wff.AndAll(
			wff.NewLess(x, y),
			wff.NewNot(wff.NewExists(z, wff.AndAll(wff.NewLess(x, z), wff.NewLess(z, y)))),
			wff.NewSymbol("b", y),
		)),
	))

	secondToLastIsB := wff.NewExists(x, wff.NewAnd(
		wff.NewNot(wff.NewExists(y, wff.NewLess(x, y))),
		wff.NewExists(y, wff.AndAll(
			wff.NewLess(y, x),
			wff.NewNot(wff.NewExists(z, wff.AndAll(wff.NewLess(y, z), wff.NewLess(z, x)))),
			wff.NewSymbol("b", y),
		)),
	))

	formula := wff.NewAnd(secondIsB, secondToLastIsB)
	dfa := Translate(formula, alphabet)

	checkMembership(t, dfa,
		[]string{"bb", "aba", "abb", "bba", "bbb", "abba", "ababa", "abaaaba"},
		[]string{"", "a", "b", "aa", "ab", "ba", "aaa", "aab", "baa", "bab"},
	)
}
