package term

import (
	"fmt"
	"strings"
)

// Expr represents an expression tree. Propositions and the proof terms
// that prove them share this one representation; which one a value is
// follows from where it is used, not from its shape.
type Expr interface {
	isExpr()
	String() string
}

// VarExpr is a bound-variable reference in de Bruijn form: Idx counts
// enclosing binders from the innermost outward. Indices greater than or
// equal to the number of enclosing binders denote free variables.
type VarExpr struct {
	Idx int
}

func (VarExpr) isExpr() {}
func (e VarExpr) String() string {
	return fmt.Sprintf("#%d", e.Idx)
}

// ConstExpr is a named constant or opaque atom.
type ConstExpr struct {
	Name string
}

func (ConstExpr) isExpr() {}
func (e ConstExpr) String() string {
	return e.Name
}

// AppExpr is an application of Fn to one or more arguments.
type AppExpr struct {
	Fn   Expr
	Args []Expr
}

func (AppExpr) isExpr() {}
func (e AppExpr) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(e.Fn.String())
	for _, a := range e.Args {
		sb.WriteString(" ")
		sb.WriteString(a.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// EqExpr is an equation between Lhs and Rhs at a stated type.
type EqExpr struct {
	Type Expr
	Lhs  Expr
	Rhs  Expr
}

func (EqExpr) isExpr() {}
func (e EqExpr) String() string {
	return "(= " + e.Type.String() + " " + e.Lhs.String() + " " + e.Rhs.String() + ")"
}

// NotExpr is a logical negation.
type NotExpr struct {
	Arg Expr
}

func (NotExpr) isExpr() {}
func (e NotExpr) String() string {
	return "(not " + e.Arg.String() + ")"
}

// AndExpr is a logical conjunction.
type AndExpr struct {
	Left  Expr
	Right Expr
}

func (AndExpr) isExpr() {}
func (e AndExpr) String() string {
	return "(and " + e.Left.String() + " " + e.Right.String() + ")"
}

// PiExpr is a universal binder (dependent product). Body is evaluated
// in a context extended by one bound variable of type Domain; Binder is
// a display name only and carries no binding semantics.
type PiExpr struct {
	Binder string
	Domain Expr
	Body   Expr
}

func (PiExpr) isExpr() {}
func (e PiExpr) String() string {
	return "(forall (" + e.Binder + " " + e.Domain.String() + ") " + e.Body.String() + ")"
}

// LamExpr is a function abstraction. A proof of a universal statement
// is a LamExpr from the bound variable to a proof of the body.
type LamExpr struct {
	Binder string
	Domain Expr
	Body   Expr
}

func (LamExpr) isExpr() {}
func (e LamExpr) String() string {
	return "(fun (" + e.Binder + " " + e.Domain.String() + ") " + e.Body.String() + ")"
}

// IteExpr is an if-then-else term. It only receives special treatment
// when the if_then_else extension is imported; otherwise it is opaque.
type IteExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (IteExpr) isExpr() {}
func (e IteExpr) String() string {
	return "(ite " + e.Cond.String() + " " + e.Then.String() + " " + e.Else.String() + ")"
}

// Builtin constants.
var (
	Bool     = ConstExpr{Name: "Bool"}
	TrueLit  = ConstExpr{Name: "true"}
	FalseLit = ConstExpr{Name: "false"}
)

// Helper constructors.

// Var creates a de Bruijn variable reference.
func Var(idx int) Expr {
	return VarExpr{Idx: idx}
}

// Const creates a named constant.
func Const(name string) Expr {
	return ConstExpr{Name: name}
}

// App creates an application.
func App(fn Expr, args ...Expr) Expr {
	return AppExpr{Fn: fn, Args: args}
}

// Eq creates an equation at the given type.
func Eq(ty, lhs, rhs Expr) Expr {
	return EqExpr{Type: ty, Lhs: lhs, Rhs: rhs}
}

// Not creates a negation.
func Not(arg Expr) Expr {
	return NotExpr{Arg: arg}
}

// And creates a conjunction.
func And(left, right Expr) Expr {
	return AndExpr{Left: left, Right: right}
}

// Pi creates a universal binder.
func Pi(binder string, domain, body Expr) Expr {
	return PiExpr{Binder: binder, Domain: domain, Body: body}
}

// Lam creates a function abstraction.
func Lam(binder string, domain, body Expr) Expr {
	return LamExpr{Binder: binder, Domain: domain, Body: body}
}

// Ite creates an if-then-else term.
func Ite(cond, then, els Expr) Expr {
	return IteExpr{Cond: cond, Then: then, Else: els}
}

// Equal reports structural equality of two expressions. Binder display
// names participate: two binders differing only in name are distinct.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case VarExpr:
		y, ok := b.(VarExpr)
		return ok && x.Idx == y.Idx
	case ConstExpr:
		y, ok := b.(ConstExpr)
		return ok && x.Name == y.Name
	case AppExpr:
		y, ok := b.(AppExpr)
		if !ok || !Equal(x.Fn, y.Fn) || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !Equal(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case EqExpr:
		y, ok := b.(EqExpr)
		return ok && Equal(x.Type, y.Type) && Equal(x.Lhs, y.Lhs) && Equal(x.Rhs, y.Rhs)
	case NotExpr:
		y, ok := b.(NotExpr)
		return ok && Equal(x.Arg, y.Arg)
	case AndExpr:
		y, ok := b.(AndExpr)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case PiExpr:
		y, ok := b.(PiExpr)
		return ok && x.Binder == y.Binder && Equal(x.Domain, y.Domain) && Equal(x.Body, y.Body)
	case LamExpr:
		y, ok := b.(LamExpr)
		return ok && x.Binder == y.Binder && Equal(x.Domain, y.Domain) && Equal(x.Body, y.Body)
	case IteExpr:
		y, ok := b.(IteExpr)
		return ok && Equal(x.Cond, y.Cond) && Equal(x.Then, y.Then) && Equal(x.Else, y.Else)
	default:
		return false
	}
}
