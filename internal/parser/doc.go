/*
Package parser reads the s-expression surface syntax for propositions.

# Syntax

	(forall (x Nat) body)   universal binder
	(fun (x Nat) body)      function abstraction
	(= T lhs rhs)           equation at type T
	(not a)                 negation
	(and a b)               conjunction
	(ite c a b)             if-then-else
	(f a b)                 application
	name                    constant, or the nearest enclosing binder
	#n                      explicit de Bruijn reference

Binder names are resolved to de Bruijn indices while parsing: a symbol
matching an enclosing binder becomes a variable reference counting
binders outward, and anything unbound becomes a constant. Comments run
from ';' to end of line.
*/
package parser
