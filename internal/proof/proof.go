// Package proof builds the proof terms that witness each inference step
// of conditional-equation extraction. Every constructor is a pure
// function applying a named theorem constant to its sub-proofs; the
// resulting terms are never checked here, only assembled.
package proof

import "github.com/gnolang/ceq/internal/term"

// Theorem constants referenced by the constructors.
var (
	eqtIntro  = term.Const("eqt_intro")
	eqfIntro  = term.Const("eqf_intro")
	andElimL  = term.Const("and_eliml")
	andElimR  = term.Const("and_elimr")
	ifImpThen = term.Const("if_imp_then")
	ifImpElse = term.Const("if_imp_else")
)

// EqTrueIntro turns a proof H of a into a proof of (a = true).
func EqTrueIntro(a, h term.Expr) term.Expr {
	return term.App(eqtIntro, a, h)
}

// EqFalseIntro turns a proof H of (not a) into a proof of (a = false).
func EqFalseIntro(a, h term.Expr) term.Expr {
	return term.App(eqfIntro, a, h)
}

// AndElimLeft extracts a proof of a from a proof H of (and a b).
func AndElimLeft(a, b, h term.Expr) term.Expr {
	return term.App(andElimL, a, b, h)
}

// AndElimRight extracts a proof of b from a proof H of (and a b).
func AndElimRight(a, b, h term.Expr) term.Expr {
	return term.App(andElimR, a, b, h)
}

// IfImpThen derives a proof of a from a proof H of (ite c a b) and a
// proof hc of the condition c.
func IfImpThen(c, a, b, h, hc term.Expr) term.Expr {
	return term.App(ifImpThen, c, a, b, h, hc)
}

// IfImpElse derives a proof of b from a proof H of (ite c a b) and a
// proof hnc of (not c).
func IfImpElse(c, a, b, h, hnc term.Expr) term.Expr {
	return term.App(ifImpElse, c, a, b, h, hnc)
}
