package term

// LiftFreeVars returns e with every free-variable index increased by
// shift. Variables bound inside e are untouched: the cutoff below which
// a variable counts as bound grows by one under each binder body.
func LiftFreeVars(e Expr, shift int) Expr {
	if shift == 0 {
		return e
	}
	return liftAt(e, 0, shift)
}

func liftAt(e Expr, cutoff, shift int) Expr {
	switch x := e.(type) {
	case VarExpr:
		if x.Idx >= cutoff {
			return VarExpr{Idx: x.Idx + shift}
		}
		return x
	case ConstExpr:
		return x
	case AppExpr:
		args := make([]Expr, len(x.Args))
		for i, a := range x.Args {
			args[i] = liftAt(a, cutoff, shift)
		}
		return AppExpr{Fn: liftAt(x.Fn, cutoff, shift), Args: args}
	case EqExpr:
		return EqExpr{
			Type: liftAt(x.Type, cutoff, shift),
			Lhs:  liftAt(x.Lhs, cutoff, shift),
			Rhs:  liftAt(x.Rhs, cutoff, shift),
		}
	case NotExpr:
		return NotExpr{Arg: liftAt(x.Arg, cutoff, shift)}
	case AndExpr:
		return AndExpr{
			Left:  liftAt(x.Left, cutoff, shift),
			Right: liftAt(x.Right, cutoff, shift),
		}
	case PiExpr:
		return PiExpr{
			Binder: x.Binder,
			Domain: liftAt(x.Domain, cutoff, shift),
			Body:   liftAt(x.Body, cutoff+1, shift),
		}
	case LamExpr:
		return LamExpr{
			Binder: x.Binder,
			Domain: liftAt(x.Domain, cutoff, shift),
			Body:   liftAt(x.Body, cutoff+1, shift),
		}
	case IteExpr:
		return IteExpr{
			Cond: liftAt(x.Cond, cutoff, shift),
			Then: liftAt(x.Then, cutoff, shift),
			Else: liftAt(x.Else, cutoff, shift),
		}
	default:
		return e
	}
}
