package formatter

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/gnolang/ceq/ceq"
	"github.com/gnolang/ceq/internal/term"
)

func init() {
	color.NoColor = true
}

var nat = term.Const("Nat")

func TestRenderWithNamesResolvesBinders(t *testing.T) {
	e := term.Pi("x", nat,
		term.Eq(nat, term.App(term.Const("f"), term.Var(0)), term.Const("zero")))

	got := RenderWithNames(e, nil)
	assert.Equal(t, "(forall (x : Nat) ((f x) = zero))", got)
}

func TestRenderWithNamesNestedAndFree(t *testing.T) {
	e := term.Pi("x", nat,
		term.Pi("y", nat,
			term.App(term.Const("f"), term.Var(1), term.Var(0), term.Var(5))))

	got := RenderWithNames(e, nil)
	assert.Equal(t, "(forall (x : Nat) (forall (y : Nat) (f x y #5)))", got)
}

func TestRenderWithNamesConnectives(t *testing.T) {
	e := term.And(term.Not(term.Const("P")), term.Ite(term.Const("c"), term.Const("a"), term.Const("b")))

	got := RenderWithNames(e, nil)
	assert.Equal(t, "((not P) and (if c then a else b))", got)
}

func TestGenerateFormattedRules(t *testing.T) {
	rule := ceq.Extracted{
		Path:  "rules.ceq",
		Axiom: "A1",
		Ceq: ceq.ConditionalEquation{
			Eq: term.Pi("x", nat,
				term.Eq(nat, term.App(term.Const("f"), term.Var(0)), term.Const("zero"))),
			Proof: term.Const("H"),
		},
	}

	out := GenerateFormattedRules([]ceq.Extracted{rule})

	assert.Contains(t, out, "rule #1")
	assert.Contains(t, out, "rules.ceq")
	assert.Contains(t, out, "(from A1)")
	assert.Contains(t, out, "given x : Nat")
	assert.Contains(t, out, "(f x) = zero")
	assert.Contains(t, out, "by H")
}

func TestGenerateFormattedRulesEmpty(t *testing.T) {
	assert.Empty(t, GenerateFormattedRules(nil))
}
