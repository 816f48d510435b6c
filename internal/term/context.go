package term

// Binding is one (name, type) entry of a Context.
type Binding struct {
	Name string
	Type Expr
}

// Context is the ordered sequence of binders enclosing a traversal
// point, innermost last. Extend never mutates the receiver, so older
// contexts stay valid after a binder is entered.
type Context []Binding

// Extend returns a new context with one more binding pushed.
func (c Context) Extend(name string, ty Expr) Context {
	out := make(Context, len(c)+1)
	copy(out, c)
	out[len(c)] = Binding{Name: name, Type: ty}
	return out
}

// Lookup resolves a de Bruijn index against the context: index 0 is the
// innermost binding. The second result is false when the index refers
// past the context, i.e. to a free variable.
func (c Context) Lookup(idx int) (Binding, bool) {
	if idx < 0 || idx >= len(c) {
		return Binding{}, false
	}
	return c[len(c)-idx-1], true
}
