package wff

import "fmt"

// Simplify rewrites formula into normal form: only Exists, Not, And, and
// the atomic predicates (ContainedIn, Equal, Less, Singleton, Symbol)
// remain. It runs three passes in sequence, each a bottom-up structural
// recursion rather than a Visitor object:
//
//  1. connective elimination: Forall/Or/If are rewritten in terms of
//     Exists/Not/And.
//  2. double-negation elimination: ¬¬φ collapses to φ.
//  3. first-order promotion: ∃¹x.φ becomes ∃²x. Singleton(x) ∧ φ, without
//     touching occurrences of x inside φ, since every atomic predicate
//     treats an order-1 position identically to its order-2 singleton.
func Simplify(formula WFF) WFF {
	formula = eliminateConnectives(formula)
	formula = eliminateDoubleNegation(formula)
	formula = promoteFirstOrder(formula)
	return formula
}

func eliminateConnectives(n WFF) WFF {
	switch n.Type() {
	case TypeExists:
		e := n.AsExists()
		return NewExists(e.Variable, eliminateConnectives(e.Body))
	case TypeForall:
		f := n.AsForall()
		body := eliminateConnectives(f.Body)
		return NewNot(NewExists(f.Variable, NewNot(body)))
	case TypeNot:
		nn := n.AsNot()
		return NewNot(eliminateConnectives(nn.Body))
	case TypeAnd:
		a := n.AsAnd()
		return NewAnd(eliminateConnectives(a.Left), eliminateConnectives(a.Right))
	case TypeOr:
		o := n.AsOr()
		left := eliminateConnectives(o.Left)
		right := eliminateConnectives(o.Right)
		return NewNot(NewAnd(NewNot(left), NewNot(right)))
	case TypeIf:
		i := n.AsIf()
		left := eliminateConnectives(i.Left)
		right := eliminateConnectives(i.Right)
		return NewNot(NewAnd(left, NewNot(right)))
	case TypeContainedIn, TypeEqual, TypeLess, TypeSingleton, TypeSymbol:
		return n
	default:
		panic(fmt.Sprintf("eliminateConnectives: unhandled type %s", n.Type()))
	}
}

func eliminateDoubleNegation(n WFF) WFF {
	switch n.Type() {
	case TypeNot:
		body := eliminateDoubleNegation(n.AsNot().Body)
		if body.Type() == TypeNot {
			return body.AsNot().Body
		}
		return NewNot(body)
	case TypeExists:
		e := n.AsExists()
		return NewExists(e.Variable, eliminateDoubleNegation(e.Body))
	case TypeAnd:
		a := n.AsAnd()
		return NewAnd(eliminateDoubleNegation(a.Left), eliminateDoubleNegation(a.Right))
	case TypeContainedIn, TypeEqual, TypeLess, TypeSingleton, TypeSymbol:
		return n
	default:
		panic(fmt.Sprintf("eliminateDoubleNegation: unexpected %s after connective elimination", n.Type()))
	}
}

func promoteFirstOrder(n WFF) WFF {
	switch n.Type() {
	case TypeExists:
		e := n.AsExists()
		body := promoteFirstOrder(e.Body)
		if e.Variable.Order == FirstOrder {
			promoted := Variable{Name: e.Variable.Name, Order: SecondOrder}
			return NewExists(promoted, NewAnd(NewSingleton(promoted), body))
		}
		return NewExists(e.Variable, body)
	case TypeNot:
		return NewNot(promoteFirstOrder(n.AsNot().Body))
	case TypeAnd:
		a := n.AsAnd()
		return NewAnd(promoteFirstOrder(a.Left), promoteFirstOrder(a.Right))
	case TypeContainedIn, TypeEqual, TypeLess, TypeSingleton, TypeSymbol:
		return n
	default:
		panic(fmt.Sprintf("promoteFirstOrder: unexpected %s after double-negation elimination", n.Type()))
	}
}
