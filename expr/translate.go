package expr

import (
	"fmt"
	"strings"
)

// operator is one comparison token the translator recognizes. The table is
// scanned in priority order so "<=" and ">=" are never mis-split by the
// bare "=", "<" or ">" they contain.
type operator struct {
	token    string
	relation Relation
	strict   bool
}

var operators = []operator{
	{"<=", LE, false},
	{">=", GE, false},
	{"==", EQ, false},
	{"=", EQ, false},
	{"<", LE, true},
	{">", GE, true},
}

// Translate normalizes a constraint string to coefs·x {≤,≥,=} rhs.
//
// The string is split at the first comparison operator (priority order:
// <=, >=, ==, =, <, >); both sides are parsed with Parse, then any
// variable coefficients on the right-hand side are subtracted into the
// left and the right collapses to its constant.
//
// Strict '<'/'>' are accepted and normalized to their non-strict
// counterparts with Normalized.Strict set, so callers can warn.
//
// Errors: ErrMissingOperator when no operator is present; otherwise the
// Parse errors of the failing side.
func Translate(s string, vars []string) (Normalized, error) {
	var op operator
	split := -1
	for _, cand := range operators {
		if i := strings.Index(s, cand.token); i >= 0 {
			op, split = cand, i
			break
		}
	}
	if split < 0 {
		return Normalized{}, fmt.Errorf("%w: %q", ErrMissingOperator, strings.TrimSpace(s))
	}

	lhs, rhs := s[:split], s[split+len(op.token):]
	lCoefs, lConst, err := Parse(lhs, vars)
	if err != nil {
		return Normalized{}, fmt.Errorf("left side of %q: %w", strings.TrimSpace(s), err)
	}
	rCoefs, rConst, err := Parse(rhs, vars)
	if err != nil {
		return Normalized{}, fmt.Errorf("right side of %q: %w", strings.TrimSpace(s), err)
	}

	// Fold right-hand variable terms into the left; the right-hand side
	// collapses to its constant, the left-hand constant moves across.
	n := Normalized{
		Coefs:    lCoefs,
		RHS:      rConst - lConst,
		Relation: op.relation,
		Strict:   op.strict,
	}
	for i := range n.Coefs {
		n.Coefs[i] -= rCoefs[i]
	}

	return n, nil
}
