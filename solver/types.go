package solver

import (
	"encoding/json"
	"errors"
)

var (
	// ErrNoBackend indicates the adapter was asked for a solve mode it has
	// no backend for (e.g. an integer model with a nil MIPBackend).
	ErrNoBackend = errors.New("solver: no backend configured for this model")

	// ErrTooManyVariables / ErrTooManyConstraints are the capacity bounds
	// of the adapter, checked before any backend invocation.
	ErrTooManyVariables   = errors.New("solver: variable count exceeds the configured maximum")
	ErrTooManyConstraints = errors.New("solver: constraint count exceeds the configured maximum")
)

// Status is the adapter's outcome state.
type Status string

const (
	// StatusOptimal carries an objective value and a solution vector.
	StatusOptimal Status = "optimal"
	// StatusInfeasible means the constraints exclude every point.
	StatusInfeasible Status = "infeasible"
	// StatusUnbounded means the objective improves without limit.
	StatusUnbounded Status = "unbounded"
	// StatusError covers capacity rejections, model defects surfaced by
	// the backend, and numeric failures.
	StatusError Status = "error"
)

// Result is the outcome of one solve. Only StatusOptimal results carry
// ObjectiveValue and Values (aligned to the model's declared variable
// order); the other states carry a diagnostic Message.
type Result struct {
	Status         Status
	ObjectiveValue float64
	Values         []float64
	Message        string
}

// MarshalJSON emits the wire form: objective_value and variables only for
// optimal results, message only when present.
func (r Result) MarshalJSON() ([]byte, error) {
	out := map[string]any{"status": r.Status}
	if r.Status == StatusOptimal {
		out["objective_value"] = r.ObjectiveValue
		out["variables"] = r.Values
	}
	if r.Message != "" {
		out["message"] = r.Message
	}
	return json.Marshal(out)
}

// Problem is the canonical minimize-form handed to backends:
//
//	minimize   C·x
//	subject to G·x ≤ H
//	           A·x = B
//	           Lower ≤ x ≤ Upper   (±Inf entries mean unbounded)
//
// All rows are dense and aligned to the declared variable order.
type Problem struct {
	C     []float64
	G     [][]float64
	H     []float64
	A     [][]float64
	B     []float64
	Lower []float64
	Upper []float64
}

// NumVariables returns the length of the cost vector.
func (p Problem) NumVariables() int { return len(p.C) }

// LPBackend solves the continuous relaxation-free problem. The error text
// is the adapter's channel for infeasible/unbounded outcomes: backends
// must include those words in the respective failures.
type LPBackend interface {
	SolveLP(p Problem) (objective float64, x []float64, err error)
}

// MIPBackend solves with integrality restrictions; integral[i] marks
// variable i as integer-valued. Same error-text contract as LPBackend.
type MIPBackend interface {
	SolveMIP(p Problem, integral []bool) (objective float64, x []float64, err error)
}

// Capacity defaults; deliberate safety bounds keeping worst-case solve
// latency small, not backend limitations.
const (
	DefaultMaxVariables   = 20
	DefaultMaxConstraints = 50
)

// Options bounds the models the adapter accepts.
type Options struct {
	// MaxVariables caps the declared variable count (0 ⇒ default).
	MaxVariables int
	// MaxConstraints caps the declared constraint count (0 ⇒ default).
	MaxConstraints int
}

// DefaultOptions returns the documented capacity defaults.
func DefaultOptions() Options {
	return Options{
		MaxVariables:   DefaultMaxVariables,
		MaxConstraints: DefaultMaxConstraints,
	}
}

// normalized fills zero fields with defaults.
func (o Options) normalized() Options {
	if o.MaxVariables <= 0 {
		o.MaxVariables = DefaultMaxVariables
	}
	if o.MaxConstraints <= 0 {
		o.MaxConstraints = DefaultMaxConstraints
	}
	return o
}
