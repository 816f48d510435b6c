package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/ceq/internal/term"
)

func TestParseBinderResolvesDeBruijn(t *testing.T) {
	e, err := Parse("(forall (x Nat) (= Nat (f x) zero))")
	require.NoError(t, err)

	want := term.Pi("x", term.Const("Nat"),
		term.Eq(term.Const("Nat"), term.App(term.Const("f"), term.Var(0)), term.Const("zero")))
	assert.True(t, term.Equal(want, e), "got %v", e)
}

func TestParseNestedBindersShadow(t *testing.T) {
	e, err := Parse("(forall (x Nat) (forall (x Nat) (= Nat x zero)))")
	require.NoError(t, err)

	inner := term.Pi("x", term.Const("Nat"),
		term.Eq(term.Const("Nat"), term.Var(0), term.Const("zero")))
	want := term.Pi("x", term.Const("Nat"), inner)
	assert.True(t, term.Equal(want, e), "inner binder must shadow the outer one, got %v", e)
}

func TestParseOuterBinderThroughInner(t *testing.T) {
	e, err := Parse("(forall (x Nat) (forall (y Nat) (= Nat x y)))")
	require.NoError(t, err)

	want := term.Pi("x", term.Const("Nat"),
		term.Pi("y", term.Const("Nat"),
			term.Eq(term.Const("Nat"), term.Var(1), term.Var(0))))
	assert.True(t, term.Equal(want, e), "got %v", e)
}

func TestParseConnectives(t *testing.T) {
	tests := []struct {
		input string
		want  term.Expr
	}{
		{"(not P)", term.Not(term.Const("P"))},
		{"(and P Q)", term.And(term.Const("P"), term.Const("Q"))},
		{"(ite c a b)", term.Ite(term.Const("c"), term.Const("a"), term.Const("b"))},
		{"(fun (x Bool) x)", term.Lam("x", term.Const("Bool"), term.Var(0))},
		{"(f a b)", term.App(term.Const("f"), term.Const("a"), term.Const("b"))},
		{"#2", term.Var(2)},
		{"zero", term.Const("zero")},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			e, err := Parse(tc.input)
			require.NoError(t, err)
			assert.True(t, term.Equal(tc.want, e), "got %v", e)
		})
	}
}

func TestParseAllPreservesOrder(t *testing.T) {
	src := `; rewrite sources
(not P)
(= Nat a b)
`
	forms, err := ParseAll(src)
	require.NoError(t, err)
	require.Len(t, forms, 2)
	assert.True(t, term.Equal(term.Not(term.Const("P")), forms[0]))
	assert.True(t, term.Equal(term.Eq(term.Const("Nat"), term.Const("a"), term.Const("b")), forms[1]))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unclosed form", "(and P"},
		{"empty form", "()"},
		{"binder without name", "(forall () P)"},
		{"missing rparen after binder", "(forall (x Nat P)"},
		{"trailing tokens", "P Q"},
		{"bare rparen", ")"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			assert.Error(t, err)
		})
	}
}

func TestParseErrorCarriesPosition(t *testing.T) {
	_, err := Parse("(and P\n  ()")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2:3")
}

func TestLexerNonASCIISymbols(t *testing.T) {
	tokens := NewLexer("é (α β)").Tokenize()

	var symbols []string
	for _, tok := range tokens {
		if tok.Type == TokenSymbol {
			symbols = append(symbols, tok.Value)
		}
	}
	assert.Equal(t, []string{"é", "α", "β"}, symbols)
	assert.Equal(t, TokenEOF, tokens[len(tokens)-1].Type)
}

func TestParseUnicodeConstant(t *testing.T) {
	e, err := Parse("(not café)")
	require.NoError(t, err)
	assert.True(t, term.Equal(term.Not(term.Const("café")), e))
}

func TestLexerSkipsComments(t *testing.T) {
	tokens := NewLexer("P ; trailing comment\nQ").Tokenize()

	var symbols []string
	for _, tok := range tokens {
		if tok.Type == TokenSymbol {
			symbols = append(symbols, tok.Value)
		}
	}
	assert.Equal(t, []string{"P", "Q"}, symbols)
}

func TestLexerTracksPositions(t *testing.T) {
	tokens := NewLexer("(f\n  x)").Tokenize()

	require.GreaterOrEqual(t, len(tokens), 4)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 1, tokens[0].Column)
	// "x" sits on line 2, column 3
	assert.Equal(t, TokenSymbol, tokens[2].Type)
	assert.Equal(t, "x", tokens[2].Value)
	assert.Equal(t, 2, tokens[2].Line)
	assert.Equal(t, 3, tokens[2].Column)
}
