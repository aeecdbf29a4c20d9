// Package syntax is the statement and expression IR that marshalling
// strategies emit.
//
// Strategies never produce target-language source. They produce small
// structural nodes that an external emitter maps to concrete syntax; the
// String renderings here exist for inspection, logging, and tests, and are
// deterministic: the same node always renders to the same text.
//
// # Nodes
//
//	Expr                    Stmt
//	──────────────────────────────────────────────
//	Ident    identifier     Decl      var n T
//	Raw      verbatim       DeclBuf   var n [size]byte
//	Call     recv.m(args)   DeclInit  n := value
//	SliceAll x[:]           Assign    n = value
//	                        Pin       pin _ := value
//	                        Emit      bare expression
//
// A Call with a nil receiver renders as a plain function call.
//
// # Equality
//
// Equal compares statement sequences structurally via their renderings.
// Two sequences built independently from the same inputs compare equal even
// though no node identity is shared.
package syntax
