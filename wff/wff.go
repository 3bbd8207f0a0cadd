package wff

import (
	"fmt"

	"github.com/dekarrin/rosed"
)

// Type discriminates the concrete shape of a WFF node.
type Type int

const (
	TypeExists Type = iota
	TypeForall
	TypeNot
	TypeAnd
	TypeOr
	TypeIf
	TypeContainedIn
	TypeEqual
	TypeLess
	TypeSingleton
	TypeSymbol
)

func (t Type) String() string {
	switch t {
	case TypeExists:
		return "EXISTS"
	case TypeForall:
		return "FORALL"
	case TypeNot:
		return "NOT"
	case TypeAnd:
		return "AND"
	case TypeOr:
		return "OR"
	case TypeIf:
		return "IF"
	case TypeContainedIn:
		return "CONTAINED_IN"
	case TypeEqual:
		return "EQUAL"
	case TypeLess:
		return "LESS"
	case TypeSingleton:
		return "SINGLETON"
	case TypeSymbol:
		return "SYMBOL"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// WFF is a well-formed formula node. It is a tagged sum type: callers
// switch on Type() and use the As* downcaster matching that type. Calling
// the wrong As* method panics, matching the invariant that every node
// reports its own concrete type truthfully.
type WFF interface {
	Type() Type
	String() string
	GoString() string
	Equal(o any) bool

	AsExists() *Exists
	AsForall() *Forall
	AsNot() *Not
	AsAnd() *And
	AsOr() *Or
	AsIf() *If
	AsContainedIn() *ContainedIn
	AsEqual() *Equal
	AsLess() *Less
	AsSingleton() *Singleton
	AsSymbol() *Symbol
}

// base supplies the panicking default for every As* method; concrete node
// types embed it and override only the one method matching their own Type.
type base struct {
	self WFF
}

func wrongType(want Type, got Type) string {
	return fmt.Sprintf("not a %s node: this is a %s node", want, got)
}

func (b base) AsExists() *Exists {
	panic(wrongType(TypeExists, b.self.Type()))
}
func (b base) AsForall() *Forall {
	panic(wrongType(TypeForall, b.self.Type()))
}
func (b base) AsNot() *Not {
	panic(wrongType(TypeNot, b.self.Type()))
}
func (b base) AsAnd() *And {
	panic(wrongType(TypeAnd, b.self.Type()))
}
func (b base) AsOr() *Or {
	panic(wrongType(TypeOr, b.self.Type()))
}
func (b base) AsIf() *If {
	panic(wrongType(TypeIf, b.self.Type()))
}
func (b base) AsContainedIn() *ContainedIn {
	panic(wrongType(TypeContainedIn, b.self.Type()))
}
func (b base) AsEqual() *Equal {
	panic(wrongType(TypeEqual, b.self.Type()))
}
func (b base) AsLess() *Less {
	panic(wrongType(TypeLess, b.self.Type()))
}
func (b base) AsSingleton() *Singleton {
	panic(wrongType(TypeSingleton, b.self.Type()))
}
func (b base) AsSymbol() *Symbol {
	panic(wrongType(TypeSymbol, b.self.Type()))
}

// --- Exists -----------------------------------------------------------

// Exists is ∃ord name. body.
type Exists struct {
	base
	Variable Variable
	Body     WFF
}

// NewExists builds an Exists node quantifying variable over body.
func NewExists(variable Variable, body WFF) *Exists {
	n := &Exists{Variable: variable, Body: body}
	n.self = n
	return n
}

func (n *Exists) Type() Type { return TypeExists }
func (n *Exists) AsExists() *Exists { return n }

func (n *Exists) String() string {
	return fmt.Sprintf("∃%s%s %s", n.Variable.orderMark(), n.Variable.Name, n.Body.String())
}

func (n *Exists) GoString() string {
	return fmt.Sprintf("Exists(%s, %s)", n.Variable.GoString(), n.Body.GoString())
}

func (n *Exists) Equal(o any) bool {
	other, ok := asNode[*Exists](o)
	if !ok {
		return false
	}
	return n.Variable == other.Variable && n.Body.Equal(other.Body)
}

// --- Forall -------------------------------------------------------------

// Forall is ∀ord name. body.
type Forall struct {
	base
	Variable Variable
	Body     WFF
}

// NewForall builds a Forall node quantifying variable over body.
func NewForall(variable Variable, body WFF) *Forall {
	n := &Forall{Variable: variable, Body: body}
	n.self = n
	return n
}

func (n *Forall) Type() Type { return TypeForall }
func (n *Forall) AsForall() *Forall { return n }

func (n *Forall) String() string {
	return fmt.Sprintf("∀%s%s %s", n.Variable.orderMark(), n.Variable.Name, n.Body.String())
}

func (n *Forall) GoString() string {
	return fmt.Sprintf("Forall(%s, %s)", n.Variable.GoString(), n.Body.GoString())
}

func (n *Forall) Equal(o any) bool {
	other, ok := asNode[*Forall](o)
	if !ok {
		return false
	}
	return n.Variable == other.Variable && n.Body.Equal(other.Body)
}

// --- Not ------------------------------------------------------------

// Not is ¬body.
type Not struct {
	base
	Body WFF
}

// NewNot builds a Not node negating body.
func NewNot(body WFF) *Not {
	n := &Not{Body: body}
	n.self = n
	return n
}

func (n *Not) Type() Type { return TypeNot }
func (n *Not) AsNot() *Not { return n }

func (n *Not) String() string {
	return fmt.Sprintf("¬%s", n.Body.String())
}

func (n *Not) GoString() string {
	return fmt.Sprintf("Not(%s)", n.Body.GoString())
}

func (n *Not) Equal(o any) bool {
	other, ok := asNode[*Not](o)
	if !ok {
		return false
	}
	return n.Body.Equal(other.Body)
}

// --- And / Or / If, sharing a binary shape ------------------------------

// And is [left ∧ right].
type And struct {
	base
	Left  WFF
	Right WFF
}

// NewAnd builds an And node.
func NewAnd(left, right WFF) *And {
	n := &And{Left: left, Right: right}
	n.self = n
	return n
}

func (n *And) Type() Type { return TypeAnd }
func (n *And) AsAnd() *And { return n }

func (n *And) String() string {
	return fmt.Sprintf("[%s ∧ %s]", n.Left.String(), n.Right.String())
}

func (n *And) GoString() string {
	return fmt.Sprintf("And(%s, %s)", n.Left.GoString(), n.Right.GoString())
}

func (n *And) Equal(o any) bool {
	other, ok := asNode[*And](o)
	if !ok {
		return false
	}
	return n.Left.Equal(other.Left) && n.Right.Equal(other.Right)
}

// Or is [left ∨ right].
type Or struct {
	base
	Left  WFF
	Right WFF
}

// NewOr builds an Or node.
func NewOr(left, right WFF) *Or {
	n := &Or{Left: left, Right: right}
	n.self = n
	return n
}

func (n *Or) Type() Type { return TypeOr }
func (n *Or) AsOr() *Or { return n }

func (n *Or) String() string {
	return fmt.Sprintf("[%s ∨ %s]", n.Left.String(), n.Right.String())
}

func (n *Or) GoString() string {
	return fmt.Sprintf("Or(%s, %s)", n.Left.GoString(), n.Right.GoString())
}

func (n *Or) Equal(o any) bool {
	other, ok := asNode[*Or](o)
	if !ok {
		return false
	}
	return n.Left.Equal(other.Left) && n.Right.Equal(other.Right)
}

// If is [left → right].
type If struct {
	base
	Left  WFF
	Right WFF
}

// NewIf builds an If node.
func NewIf(left, right WFF) *If {
	n := &If{Left: left, Right: right}
	n.self = n
	return n
}

func (n *If) Type() Type { return TypeIf }
func (n *If) AsIf() *If { return n }

func (n *If) String() string {
	return fmt.Sprintf("[%s → %s]", n.Left.String(), n.Right.String())
}

func (n *If) GoString() string {
	return fmt.Sprintf("If(%s, %s)", n.Left.GoString(), n.Right.GoString())
}

func (n *If) Equal(o any) bool {
	other, ok := asNode[*If](o)
	if !ok {
		return false
	}
	return n.Left.Equal(other.Left) && n.Right.Equal(other.Right)
}

// --- ContainedIn / Equal / Less, atomic binary predicates over variables -

// ContainedIn is [left ∈ right] when left is order-1, or [left ⊆ right]
// when left is order-2. Right must always be order-2.
type ContainedIn struct {
	base
	Left  Variable
	Right Variable
}

// NewContainedIn builds a ContainedIn node. Panics with a PreconditionError
// if right is not order-2.
func NewContainedIn(left, right Variable) *ContainedIn {
	if right.Order != SecondOrder {
		panic(newPreconditionError("contained-in-order", "right operand %q must be order-2, got order-%d", right.Name, right.Order))
	}
	n := &ContainedIn{Left: left, Right: right}
	n.self = n
	return n
}

func (n *ContainedIn) Type() Type { return TypeContainedIn }
func (n *ContainedIn) AsContainedIn() *ContainedIn { return n }

func (n *ContainedIn) String() string {
	op := "∈"
	if n.Left.Order == SecondOrder {
		op = "⊆"
	}
	return fmt.Sprintf("[%s %s %s]", n.Left.String(), op, n.Right.String())
}

func (n *ContainedIn) GoString() string {
	return fmt.Sprintf("ContainedIn(%s, %s)", n.Left.GoString(), n.Right.GoString())
}

func (n *ContainedIn) Equal(o any) bool {
	other, ok := asNode[*ContainedIn](o)
	if !ok {
		return false
	}
	return n.Left == other.Left && n.Right == other.Right
}

// Equal is [left == right].
type Equal struct {
	base
	Left  Variable
	Right Variable
}

// NewEqual builds an Equal node.
func NewEqual(left, right Variable) *Equal {
	n := &Equal{Left: left, Right: right}
	n.self = n
	return n
}

func (n *Equal) Type() Type { return TypeEqual }
func (n *Equal) AsEqual() *Equal { return n }

func (n *Equal) String() string {
	return fmt.Sprintf("[%s == %s]", n.Left.String(), n.Right.String())
}

func (n *Equal) GoString() string {
	return fmt.Sprintf("Equal(%s, %s)", n.Left.GoString(), n.Right.GoString())
}

func (n *Equal) Equal(o any) bool {
	other, ok := asNode[*Equal](o)
	if !ok {
		return false
	}
	return n.Left == other.Left && n.Right == other.Right
}

// Less is [left < right].
type Less struct {
	base
	Left  Variable
	Right Variable
}

// NewLess builds a Less node.
func NewLess(left, right Variable) *Less {
	n := &Less{Left: left, Right: right}
	n.self = n
	return n
}

func (n *Less) Type() Type { return TypeLess }
func (n *Less) AsLess() *Less { return n }

func (n *Less) String() string {
	return fmt.Sprintf("[%s < %s]", n.Left.String(), n.Right.String())
}

func (n *Less) GoString() string {
	return fmt.Sprintf("Less(%s, %s)", n.Left.GoString(), n.Right.GoString())
}

func (n *Less) Equal(o any) bool {
	other, ok := asNode[*Less](o)
	if !ok {
		return false
	}
	return n.Left == other.Left && n.Right == other.Right
}

// --- Singleton / Symbol ----------------------------------------------

// Singleton asserts that variable denotes a set of exactly one position.
type Singleton struct {
	base
	Variable Variable
}

// NewSingleton builds a Singleton node.
func NewSingleton(variable Variable) *Singleton {
	n := &Singleton{Variable: variable}
	n.self = n
	return n
}

func (n *Singleton) Type() Type { return TypeSingleton }
func (n *Singleton) AsSingleton() *Singleton { return n }

func (n *Singleton) String() string {
	return fmt.Sprintf("Singleton(%s)", n.Variable.String())
}

func (n *Singleton) GoString() string {
	return fmt.Sprintf("Singleton(%s)", n.Variable.GoString())
}

func (n *Singleton) Equal(o any) bool {
	other, ok := asNode[*Singleton](o)
	if !ok {
		return false
	}
	return n.Variable == other.Variable
}

// Symbol asserts that the letter at position variable is exactly symbol.
type Symbol struct {
	base
	Letter   string
	Variable Variable
}

// NewSymbol builds a Symbol node. Alphabet membership is checked at
// translation time, not here, since construction has no alphabet in view.
func NewSymbol(letter string, variable Variable) *Symbol {
	n := &Symbol{Letter: letter, Variable: variable}
	n.self = n
	return n
}

func (n *Symbol) Type() Type { return TypeSymbol }
func (n *Symbol) AsSymbol() *Symbol { return n }

// symbolWrapWidth is the column width beyond which an unusually long
// symbol payload gets wrapped in its String() rendering; ordinary
// single-character alphabets never come close to it.
const symbolWrapWidth = 60

func (n *Symbol) String() string {
	letter := n.Letter
	if len(letter) > symbolWrapWidth {
		letter = rosed.Edit(letter).Wrap(symbolWrapWidth).String()
	}
	return fmt.Sprintf("%q(%s)", letter, n.Variable.String())
}

func (n *Symbol) GoString() string {
	return fmt.Sprintf("Symbol(%q, %s)", n.Letter, n.Variable.GoString())
}

func (n *Symbol) Equal(o any) bool {
	other, ok := asNode[*Symbol](o)
	if !ok {
		return false
	}
	return n.Letter == other.Letter && n.Variable == other.Variable
}

// asNode extracts a *T from o if its dynamic type matches, matching
// ast.go's Equal convention of type-switching on the argument rather than
// requiring the caller to pre-assert.
func asNode[T WFF](o any) (T, bool) {
	t, ok := o.(T)
	return t, ok
}

// AndAll folds terms with And, left to right. Panics if terms is empty.
func AndAll(terms ...WFF) WFF {
	if len(terms) == 0 {
		panic(newPreconditionError("and-all-empty", "AndAll requires at least one term"))
	}
	result := terms[0]
	for _, t := range terms[1:] {
		result = NewAnd(result, t)
	}
	return result
}

// OrAll folds terms with Or, left to right. Panics if terms is empty.
func OrAll(terms ...WFF) WFF {
	if len(terms) == 0 {
		panic(newPreconditionError("or-all-empty", "OrAll requires at least one term"))
	}
	result := terms[0]
	for _, t := range terms[1:] {
		result = NewOr(result, t)
	}
	return result
}
