// Package ceq derives conditional equations, directed rewrite rules
// paired with proof terms, from proved propositions, for use by a
// term-rewriting simplifier.
//
// ToCeqs decomposes a proposition/proof pair into candidate equations,
// rebuilding a matching proof term for every syntactic step, and keeps
// only candidates a simplifier can actually use: IsCeq rejects any
// equation with an outer-bound data variable missing from the left-hand
// side, since pattern matching could never instantiate it.
package ceq

import (
	"fmt"

	"github.com/gnolang/ceq/internal/proof"
	"github.com/gnolang/ceq/internal/term"
)

// auxHypPrefix seeds the fresh names synthesized for if-then-else
// branch hypotheses.
const auxHypPrefix = "Hc"

// Environment is the read-only capability extraction runs against.
// Implementations must be safe for concurrent use; this package only
// ever reads from it.
type Environment interface {
	// Imported reports whether the named optional extension is loaded.
	Imported(name string) bool
	// IsProposition reports whether ty denotes a logical proposition
	// (rather than data) relative to ctx.
	IsProposition(ty term.Expr, ctx term.Context) bool
}

// ConditionalEquation pairs an equation, optionally under leading
// universal binders, with the term proving it.
type ConditionalEquation struct {
	Eq    term.Expr
	Proof term.Expr
}

// extractor carries one ToCeqs invocation's state: the environment and
// the fresh-name counter. A new extractor is built per call, so
// concurrent extractions never share a counter.
type extractor struct {
	env Environment
	idx int
}

// ToCeqs derives conditional equations from the proposition e and its
// proof h. h must prove e; this is a precondition, not re-verified.
// Every returned pair satisfies IsCeq on its equation; order follows
// the decomposition and duplicates are not suppressed.
func ToCeqs(env Environment, e, h term.Expr) []ConditionalEquation {
	x := &extractor{env: env}
	candidates := x.apply(e, h)

	out := make([]ConditionalEquation, 0, len(candidates))
	for _, c := range candidates {
		if IsCeq(env, c.Eq) {
			out = append(out, c)
		}
	}
	return out
}

func singleton(e, h term.Expr) []ConditionalEquation {
	return []ConditionalEquation{{Eq: e, Proof: h}}
}

// freshName returns the canonical auxiliary hypothesis name on first
// use and distinct suffixed names afterwards.
func (x *extractor) freshName() string {
	if x.idx == 0 {
		x.idx = 1
		return auxHypPrefix
	}
	name := fmt.Sprintf("%s.%d", auxHypPrefix, x.idx)
	x.idx++
	return name
}

func (x *extractor) apply(e, h term.Expr) []ConditionalEquation {
	switch f := e.(type) {
	case term.EqExpr:
		return singleton(e, h)

	case term.NotExpr:
		a := f.Arg
		return singleton(term.Eq(term.Bool, a, term.FalseLit), proof.EqFalseIntro(a, h))

	case term.AndExpr:
		a1, a2 := f.Left, f.Right
		left := x.apply(a1, proof.AndElimLeft(a1, a2, h))
		right := x.apply(a2, proof.AndElimRight(a1, a2, h))
		return append(left, right...)

	case term.PiExpr:
		// Descend under the binder: the proof of the body is the lifted
		// proof of e applied to the fresh bound variable.
		body := f.Body
		bodyProof := term.App(term.LiftFreeVars(h, 1), term.Var(0))
		ceqs := x.apply(body, bodyProof)
		if len(ceqs) == 1 && term.Equal(body, ceqs[0].Eq) {
			// Nothing was rewritten inside; keep e and h as they are
			// instead of re-wrapping the binder.
			return singleton(e, h)
		}
		out := make([]ConditionalEquation, len(ceqs))
		for i, c := range ceqs {
			out[i] = ConditionalEquation{
				Eq:    term.Pi(f.Binder, f.Domain, c.Eq),
				Proof: term.Lam(f.Binder, f.Domain, c.Proof),
			}
		}
		return out

	case term.IteExpr:
		if !x.env.Imported("if_then_else") {
			break
		}
		c := f.Cond
		notC := term.Not(c)
		// Everything moves under one new binder (the branch
		// hypothesis), so lift by one; the hypothesis itself is #0.
		c1 := term.LiftFreeVars(c, 1)
		a1 := term.LiftFreeVars(f.Then, 1)
		b1 := term.LiftFreeVars(f.Else, 1)
		h1 := term.LiftFreeVars(h, 1)
		thenCeqs := x.apply(a1, proof.IfImpThen(c1, a1, b1, h1, term.Var(0)))
		elseCeqs := x.apply(b1, proof.IfImpElse(c1, a1, b1, h1, term.Var(0)))

		thenHyp := x.freshName()
		elseHyp := x.freshName()
		out := make([]ConditionalEquation, 0, len(thenCeqs)+len(elseCeqs))
		for _, p := range thenCeqs {
			out = append(out, ConditionalEquation{
				Eq:    term.Pi(thenHyp, c, p.Eq),
				Proof: term.Lam(thenHyp, c, p.Proof),
			})
		}
		for _, p := range elseCeqs {
			out = append(out, ConditionalEquation{
				Eq:    term.Pi(elseHyp, notC, p.Eq),
				Proof: term.Lam(elseHyp, notC, p.Proof),
			})
		}
		return out
	}

	// Any other proposition becomes the trivial rewrite to true.
	return singleton(term.Eq(term.Bool, e, term.TrueLit), proof.EqTrueIntro(e, h))
}

// IsCeq reports whether e has the canonical shape of a usable
// conditional equation: zero or more leading universal binders over an
// equation whose left-hand side mentions every outer-bound variable,
// except those of proposition type: a simplifier discharges such
// binders with a side proof instead of recovering them by matching.
func IsCeq(env Environment, e term.Expr) bool {
	var resolved []bool
	var ctx term.Context
	for {
		pi, ok := e.(term.PiExpr)
		if !ok {
			break
		}
		resolved = append(resolved, env.IsProposition(pi.Domain, ctx))
		ctx = ctx.Extend(pi.Binder, pi.Domain)
		e = pi.Body
	}

	body, ok := e.(term.EqExpr)
	if !ok {
		return false
	}

	// Mark every stripped binder referenced from the left-hand side.
	term.ForEach(body.Lhs, func(sub term.Expr, offset int) bool {
		v, ok := sub.(term.VarExpr)
		if !ok {
			return true
		}
		idx := v.Idx
		if idx >= offset {
			idx -= offset
			if idx < len(resolved) {
				resolved[len(resolved)-idx-1] = true
			}
			// A larger index is a free variable beyond the binders.
		}
		return true
	})

	for _, r := range resolved {
		if !r {
			return false
		}
	}
	return true
}
