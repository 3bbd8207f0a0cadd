// Package m2lstr compiles monadic second-order logic formulas over finite
// strings (M2L-Str) into deterministic finite automata over a caller's
// alphabet, and decides membership of strings against the result.
//
// It fronts the wff, automaton, and translate subpackages the way the
// teacher repo's facade package fronts its own syntax and frontend
// packages: type aliases for the common types, and thin top-level
// functions for the common path of building a formula, translating it,
// and testing a string for membership.
package m2lstr

import (
	"github.com/dekarrin/m2lstr/automaton"
	"github.com/dekarrin/m2lstr/translate"
	"github.com/dekarrin/m2lstr/wff"
)

// Variable, WFF, and the node constructors are re-exported so most callers
// never need to import the wff package directly.
type (
	Variable = wff.Variable
	WFF      = wff.WFF
)

var (
	NewVariable     = wff.NewVariable
	NewExists       = wff.NewExists
	NewForall       = wff.NewForall
	NewNot          = wff.NewNot
	NewAnd          = wff.NewAnd
	NewOr           = wff.NewOr
	NewIf           = wff.NewIf
	NewContainedIn  = wff.NewContainedIn
	NewEqual        = wff.NewEqual
	NewLess         = wff.NewLess
	NewSingleton    = wff.NewSingleton
	NewSymbol       = wff.NewSymbol
	Simplify        = wff.Simplify
)

// DFA is the compiled form a formula translates to.
type DFA = automaton.DFA

// Limits bounds the resources a membership walk may consume.
type Limits = automaton.Limits

// Translate compiles formula into a DFA over alphabet.
func Translate(formula WFF, alphabet []string) DFA {
	return translate.Translate(formula, alphabet)
}

// Accept decides whether dfa accepts word, a sequence of alphabet symbols.
// limits, if non-zero, bounds the number of distinct states the walk may
// visit before giving up with automaton.ErrMacroStateBudgetExceeded.
func Accept(dfa DFA, word []string, limits Limits) (bool, error) {
	return automaton.Accept(dfa, word, limits, nil)
}
