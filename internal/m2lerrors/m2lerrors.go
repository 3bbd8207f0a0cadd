// Package m2lerrors holds the two error shapes the wff and automaton
// packages raise via panic: a violated construction precondition, and a
// violated internal invariant discovered while walking a DFA. Adapted from
// the private-struct-plus-constructor-functions pattern the teacher uses
// for its own interpreter errors, with the player-facing/technical message
// split dropped since there is no player-facing surface in this domain —
// replaced with a single stable invariant identifier a caller recovering
// from the panic can key off of.
package m2lerrors

import "fmt"

// Precondition reports a violated construction precondition: a Variable
// built with an invalid order, a ContainedIn built with a first-order
// right operand, a Symbol naming a letter outside the translation
// alphabet, an arc whose pos and neg sets overlap, or a reference to a
// state that was never added to a builder.
type Precondition struct {
	Invariant string
	msg       string
}

func (e *Precondition) Error() string { return e.msg }

// NewPrecondition builds a Precondition error. invariant is a short,
// stable, greppable identifier for the violated rule; format/a describe
// the specific violation.
func NewPrecondition(invariant, format string, a ...interface{}) *Precondition {
	return &Precondition{Invariant: invariant, msg: fmt.Sprintf("%s: %s", invariant, fmt.Sprintf(format, a...))}
}

// Invariant reports a violated internal invariant found while walking a
// DFA during membership testing: most importantly, a state reporting more
// than one distinct successor for an input symbol, which can only happen
// if a composition was built over an automaton that was not actually
// deterministic. Always a bug in the construction, never a property of the
// user's input.
type Invariant struct {
	Invariant string
	msg       string
}

func (e *Invariant) Error() string { return e.msg }

// NewInvariant builds an Invariant error.
func NewInvariant(invariant, format string, a ...interface{}) *Invariant {
	return &Invariant{Invariant: invariant, msg: fmt.Sprintf("%s: %s", invariant, fmt.Sprintf(format, a...))}
}
