// Package translate wires a simplified well-formed formula to the lazy
// automaton compositions that realize it: a bottom-up structural
// recursion over the formula, reimplemented here as a plain recursive
// switch-on-type function rather than a Visitor object.
package translate

import (
	"fmt"

	"github.com/dekarrin/m2lstr/automaton"
	"github.com/dekarrin/m2lstr/wff"
)

// Translate compiles formula into a DFA over alphabet. formula is
// simplified internally first, so callers never need to call wff.Simplify
// themselves. Alphabet membership of every Symbol predicate is checked
// here; an unrecognized letter panics with an automaton.PreconditionError,
// per the construction-error half of the error taxonomy.
func Translate(formula wff.WFF, alphabet []string) automaton.DFA {
	simplified := wff.Simplify(formula)
	return translate(simplified, alphabet)
}

func translate(n wff.WFF, alphabet []string) automaton.DFA {
	switch n.Type() {
	case wff.TypeExists:
		e := n.AsExists()
		body := translate(e.Body, alphabet)
		projected := automaton.Project(body, e.Variable.Name)
		return automaton.Determinize(projected)
	case wff.TypeNot:
		body := translate(n.AsNot().Body, alphabet)
		return automaton.Complement(body)
	case wff.TypeAnd:
		a := n.AsAnd()
		left := translate(a.Left, alphabet)
		right := translate(a.Right, alphabet)
		return automaton.Intersect(left, right)
	case wff.TypeSymbol:
		s := n.AsSymbol()
		return automaton.SymbolDFA(s.Letter, s.Variable.Name, alphabet)
	case wff.TypeEqual:
		e := n.AsEqual()
		return automaton.EqualDFA(e.Left.Name, e.Right.Name, alphabet)
	case wff.TypeContainedIn:
		c := n.AsContainedIn()
		return automaton.ContainedInDFA(c.Left.Name, c.Right.Name, alphabet)
	case wff.TypeSingleton:
		return automaton.SingletonDFA(n.AsSingleton().Variable.Name, alphabet)
	case wff.TypeLess:
		l := n.AsLess()
		return automaton.LessDFA(l.Left.Name, l.Right.Name, alphabet)
	default:
		panic(fmt.Sprintf("translate: %s is not part of the reduced normal form produced by wff.Simplify", n.Type()))
	}
}
