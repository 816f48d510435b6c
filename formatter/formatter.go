package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/gnolang/ceq/ceq"
	"github.com/gnolang/ceq/internal/term"
)

var (
	ruleStyle   = color.New(color.FgYellow, color.Bold)
	fileStyle   = color.New(color.FgCyan, color.Bold)
	binderStyle = color.New(color.FgHiBlue)
	hypStyle    = color.New(color.FgGreen)
	eqStyle     = color.New(color.FgWhite, color.Bold)
	proofStyle  = color.New(color.FgHiBlack)
)

// GenerateFormattedRules renders extracted conditional equations into a
// human-readable report, one block per rule.
func GenerateFormattedRules(results []ceq.Extracted) string {
	var builder strings.Builder
	for i, r := range results {
		builder.WriteString(buildRule(i+1, r))
	}
	return builder.String()
}

func buildRule(n int, r ceq.Extracted) string {
	var sb strings.Builder

	sb.WriteString(ruleStyle.Sprintf("rule #%d", n))
	sb.WriteString(fileStyle.Sprintf(" %s", r.Path))
	sb.WriteString(fmt.Sprintf(" (from %s)\n", r.Axiom))

	binders, body := splitBinders(r.Ceq.Eq)
	names := make([]string, 0, len(binders))
	for _, b := range binders {
		names = append(names, b.Name)
		domain := RenderWithNames(b.Type, names[:len(names)-1])
		style := binderStyle
		if _, isEq := b.Type.(term.EqExpr); isEq {
			style = hypStyle
		}
		sb.WriteString(style.Sprintf("  given %s : %s\n", b.Name, domain))
	}

	if eq, ok := body.(term.EqExpr); ok {
		lhs := RenderWithNames(eq.Lhs, names)
		rhs := RenderWithNames(eq.Rhs, names)
		sb.WriteString(eqStyle.Sprintf("  %s = %s\n", lhs, rhs))
	} else {
		sb.WriteString(eqStyle.Sprintf("  %s\n", RenderWithNames(body, names)))
	}

	sb.WriteString(proofStyle.Sprintf("  by %s\n", r.Ceq.Proof.String()))
	sb.WriteString("\n")
	return sb.String()
}

// extendNames copies before appending so sibling renders never share a
// backing array.
func extendNames(names []string, name string) []string {
	out := make([]string, len(names)+1)
	copy(out, names)
	out[len(names)] = name
	return out
}

// splitBinders strips the leading universal binders off an equation.
func splitBinders(e term.Expr) ([]term.Binding, term.Expr) {
	var binders []term.Binding
	for {
		pi, ok := e.(term.PiExpr)
		if !ok {
			return binders, e
		}
		binders = append(binders, term.Binding{Name: pi.Binder, Type: pi.Domain})
		e = pi.Body
	}
}

// RenderWithNames renders an expression resolving de Bruijn indices
// against the given enclosing binder names (innermost last). Indices
// past the name list stay in #n form.
func RenderWithNames(e term.Expr, names []string) string {
	switch x := e.(type) {
	case term.VarExpr:
		if x.Idx < len(names) {
			return names[len(names)-x.Idx-1]
		}
		return x.String()
	case term.ConstExpr:
		return x.Name
	case term.AppExpr:
		parts := make([]string, 0, len(x.Args)+1)
		parts = append(parts, RenderWithNames(x.Fn, names))
		for _, a := range x.Args {
			parts = append(parts, RenderWithNames(a, names))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case term.EqExpr:
		return "(" + RenderWithNames(x.Lhs, names) + " = " + RenderWithNames(x.Rhs, names) + ")"
	case term.NotExpr:
		return "(not " + RenderWithNames(x.Arg, names) + ")"
	case term.AndExpr:
		return "(" + RenderWithNames(x.Left, names) + " and " + RenderWithNames(x.Right, names) + ")"
	case term.PiExpr:
		domain := RenderWithNames(x.Domain, names)
		body := RenderWithNames(x.Body, extendNames(names, x.Binder))
		return "(forall (" + x.Binder + " : " + domain + ") " + body + ")"
	case term.LamExpr:
		domain := RenderWithNames(x.Domain, names)
		body := RenderWithNames(x.Body, extendNames(names, x.Binder))
		return "(fun (" + x.Binder + " : " + domain + ") " + body + ")"
	case term.IteExpr:
		return "(if " + RenderWithNames(x.Cond, names) +
			" then " + RenderWithNames(x.Then, names) +
			" else " + RenderWithNames(x.Else, names) + ")"
	default:
		return e.String()
	}
}
