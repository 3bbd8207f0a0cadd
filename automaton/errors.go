package automaton

import (
	"errors"

	"github.com/dekarrin/m2lstr/internal/m2lerrors"
)

// PreconditionError reports a violated construction precondition (a
// disjointness violation between an arc's pos and neg sets, a reference to
// a state that was never added to a builder). Raised via panic, since these
// are programmer errors rather than recoverable runtime conditions.
type PreconditionError = m2lerrors.Precondition

func newPreconditionError(invariant, format string, a ...interface{}) *PreconditionError {
	return m2lerrors.NewPrecondition(invariant, format, a...)
}

// InvariantError reports a violated internal invariant discovered while
// walking a DFA during membership testing: most importantly, a state
// reporting more than one distinct successor for an input symbol, which
// can only happen if a composition was built over a DFA that was not
// actually deterministic. A state with no successor is ordinary rejection,
// not an invariant violation. This is always a bug in the
// automaton construction, never a user-facing condition, so it is raised
// via panic rather than returned.
type InvariantError = m2lerrors.Invariant

func newInvariantError(invariant, format string, a ...interface{}) *InvariantError {
	return m2lerrors.NewInvariant(invariant, format, a...)
}

// ErrMacroStateBudgetExceeded is returned by Accept when Limits.MaxMacroStates
// is set and a membership walk visits more distinct macro-states than the
// budget allows. Unlike InvariantError, this is a defined, non-panicking
// failure: determinization legitimately can blow up combinatorially, and a
// caller asked to be told about it rather than have the process hang.
var ErrMacroStateBudgetExceeded = errors.New("automaton: macro-state budget exceeded")
