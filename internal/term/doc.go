// Package term defines the expression trees shared by propositions and
// proof terms, with de Bruijn variable references.
//
// Expressions are immutable: every operation in this package and its
// consumers builds new trees and shares sub-trees freely. Binding is
// positional (a VarExpr holds the distance to its binder, and binder
// display names exist only for rendering), so the package also provides
// the two index-sensitive utilities everything else is built on:
// LiftFreeVars, which shifts free indices when an expression moves
// under additional binders, and ForEach, which walks a tree while
// reporting the binder depth at every node.
package term
