package term

// Visitor is invoked for every sub-expression together with the number
// of binders entered since the traversal started. Returning false skips
// the node's children.
type Visitor func(e Expr, offset int) bool

// ForEach walks e in preorder, threading the accumulated binder depth
// through the traversal. The offset handed to the visitor is the count
// of PiExpr/LamExpr bodies entered on the path from the root, so a
// VarExpr with Idx >= offset refers outside the walked expression.
func ForEach(e Expr, visit Visitor) {
	walk(e, 0, visit)
}

func walk(e Expr, offset int, visit Visitor) {
	if !visit(e, offset) {
		return
	}
	switch x := e.(type) {
	case AppExpr:
		walk(x.Fn, offset, visit)
		for _, a := range x.Args {
			walk(a, offset, visit)
		}
	case EqExpr:
		walk(x.Type, offset, visit)
		walk(x.Lhs, offset, visit)
		walk(x.Rhs, offset, visit)
	case NotExpr:
		walk(x.Arg, offset, visit)
	case AndExpr:
		walk(x.Left, offset, visit)
		walk(x.Right, offset, visit)
	case PiExpr:
		walk(x.Domain, offset, visit)
		walk(x.Body, offset+1, visit)
	case LamExpr:
		walk(x.Domain, offset, visit)
		walk(x.Body, offset+1, visit)
	case IteExpr:
		walk(x.Cond, offset, visit)
		walk(x.Then, offset, visit)
		walk(x.Else, offset, visit)
	}
}
