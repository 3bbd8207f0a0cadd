// Package wff implements the well-formed-formula AST for M2L-Str: an
// immutable, acyclic tagged sum type together with the three-pass
// simplifier that rewrites any formula into the reduced set of
// constructors the translator knows how to handle.
package wff

import "github.com/dekarrin/m2lstr/internal/m2lerrors"

// PreconditionError reports a violated construction precondition, such as
// a Variable built with an order outside {1,2} or a ContainedIn built with
// a first-order right operand. It is always raised via panic, never
// returned, since these are programmer errors at construction time rather
// than recoverable runtime conditions.
type PreconditionError = m2lerrors.Precondition

func newPreconditionError(invariant, format string, a ...interface{}) *PreconditionError {
	return m2lerrors.NewPrecondition(invariant, format, a...)
}
