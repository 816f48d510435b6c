// Package env provides the read-only environment consulted during
// conditional-equation extraction: which optional extensions are
// imported, and which types denote logical propositions rather than
// data. A Table is safe freely shared between concurrent extractions
// since nothing ever mutates it after construction.
package env

import "github.com/gnolang/ceq/internal/term"

// Table is a concrete environment backed by name tables. The zero
// value imports nothing and registers no proposition symbols.
type Table struct {
	imports map[string]bool
	props   map[string]bool
}

// New builds a Table from the imported extension names and the names of
// constants whose applications denote propositions.
func New(imports, propositions []string) *Table {
	t := &Table{
		imports: make(map[string]bool, len(imports)),
		props:   make(map[string]bool, len(propositions)),
	}
	for _, name := range imports {
		t.imports[name] = true
	}
	for _, name := range propositions {
		t.props[name] = true
	}
	return t
}

// Imported reports whether the named extension is loaded.
func (t *Table) Imported(name string) bool {
	return t.imports[name]
}

// IsProposition reports whether ty denotes a logical proposition
// relative to ctx. Connectives and equations are always propositions;
// Bool is; a universal statement is one iff its body is; named symbols
// are looked up in the registration table; a variable is one iff the
// context records its type as Bool.
func (t *Table) IsProposition(ty term.Expr, ctx term.Context) bool {
	switch e := ty.(type) {
	case term.EqExpr, term.NotExpr, term.AndExpr:
		return true
	case term.ConstExpr:
		return e.Name == term.Bool.Name || t.props[e.Name]
	case term.AppExpr:
		if head, ok := e.Fn.(term.ConstExpr); ok {
			return t.props[head.Name]
		}
		return false
	case term.PiExpr:
		return t.IsProposition(e.Body, ctx.Extend(e.Binder, e.Domain))
	case term.IteExpr:
		return t.IsProposition(e.Then, ctx) && t.IsProposition(e.Else, ctx)
	case term.VarExpr:
		b, ok := ctx.Lookup(e.Idx)
		return ok && term.Equal(b.Type, term.Bool)
	default:
		return false
	}
}
