package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyExpression indicates an expression (or one side of a
	// constraint) contained no terms.
	ErrEmptyExpression = errors.New("expr: empty expression")

	// ErrUndefinedVariable indicates a token that looks like an identifier
	// but is not in the declared variable list.
	ErrUndefinedVariable = errors.New("expr: undefined variable")

	// ErrUnsupportedGrammar indicates input outside the restricted linear
	// grammar: parentheses, exponents, or a product of two variables.
	ErrUnsupportedGrammar = errors.New("expr: unsupported grammar")

	// ErrInvalidTerm indicates a term that is neither a coefficient, a
	// variable, nor a coefficient*variable product.
	ErrInvalidTerm = errors.New("expr: malformed term")

	// ErrMissingOperator indicates a constraint string without any
	// comparison operator.
	ErrMissingOperator = errors.New("expr: constraint has no comparison operator")
)

// Relation is the normalized comparison of a constraint.
type Relation int

const (
	// LE is a less-than-or-equal constraint (coefs·x ≤ rhs).
	LE Relation = iota
	// GE is a greater-than-or-equal constraint (coefs·x ≥ rhs).
	GE
	// EQ is an equality constraint (coefs·x = rhs).
	EQ
)

// String returns the operator symbol of the relation.
func (r Relation) String() string {
	switch r {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return "?"
	}
}

// MarshalJSON renders the relation as its operator symbol ("<=", ">=", "=").
func (r Relation) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

// UnmarshalJSON parses the operator symbol form back; "==" is accepted as
// an alias for "=", mirroring the constraint grammar.
func (r *Relation) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"<="`:
		*r = LE
	case `">="`:
		*r = GE
	case `"="`, `"=="`:
		*r = EQ
	default:
		return fmt.Errorf("expr: unknown relation %s", data)
	}
	return nil
}

// Normalized is a constraint reduced to canonical form coefs·x {≤,≥,=} rhs,
// with coefficients aligned to the variable list passed to Translate.
//
// Strict reports whether the source used a strict operator ('<' or '>');
// strict operators are accepted and normalized to their non-strict
// counterparts, and callers may warn about them.
type Normalized struct {
	Coefs    []float64
	RHS      float64
	Relation Relation
	Strict   bool
}
