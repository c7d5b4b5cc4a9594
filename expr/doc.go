// Package expr parses the restricted algebraic notation used to describe
// linear optimization models: linear expressions over a fixed, ordered
// variable list, and constraints built from two such expressions joined by
// a comparison operator.
//
// 🚀 What does expr handle?
//
//	Expressions are sums of signed terms of the form
//	  • <coef>*<var>   — "3*x1", "-2.5*profit"
//	  • <var>          — "x1" (coefficient defaults to 1, or -1 after '-')
//	  • <coef>         — "7", "-0.5" (folded into the constant offset)
//	A missing '*' between a leading number and a variable is tolerated
//	("3x1" reads as 3*x1); everything else outside the grammar is rejected.
//
// ✨ Guarantees:
//   - Longest-variable-name-first matching: with x1 and x10 both declared,
//     "x10" never reads as x1 followed by a stray 0.
//   - Reject, never guess: parentheses, exponents and products of two
//     variables fail with ErrUnsupportedGrammar instead of producing a
//     silently wrong linear reading.
//   - Undefined identifiers fail with ErrUndefinedVariable; numeric tokens
//     fold into the constant.
//   - Pure functions: no state, no side effects, safe for concurrent use.
//
// ⚙️ Usage:
//
//	vars := []string{"x1", "x2"}
//	coefs, k, err := expr.Parse("3*x1 + 5*x2 - 2", vars) // [3 5], -2
//
//	n, err := expr.Translate("x1 + 2*x2 <= x2 + 10", vars)
//	// n.Coefs = [1 1], n.RHS = 10, n.Relation = LE
//
// Normalization folds any variable terms found on the right-hand side of a
// constraint back into the left-hand side, so consumers always see
// coefficients·x {≤,≥,=} rhs.
package expr
