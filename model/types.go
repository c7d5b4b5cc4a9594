package model

import "math"

// Kind is the declared domain of a decision variable.
type Kind string

const (
	// Continuous variables range over the reals within their bounds.
	Continuous Kind = "continuous"
	// Integer variables are restricted to whole values.
	Integer Kind = "integer"
	// Binary variables take values in {0, 1}; declared bounds are ignored.
	Binary Kind = "binary"
)

// known reports whether the kind is one of the declared constants.
func (k Kind) known() bool {
	return k == Continuous || k == Integer || k == Binary
}

// Sense is the optimization direction of the objective.
type Sense string

const (
	// Maximize seeks the largest objective value.
	Maximize Sense = "maximize"
	// Minimize seeks the smallest objective value.
	Minimize Sense = "minimize"
)

func (s Sense) known() bool { return s == Maximize || s == Minimize }

// Variable is one declared decision variable. Lower/Upper are nil when the
// corresponding bound is absent; binary variables carry the implicit
// bounds [0,1] regardless of what was declared.
type Variable struct {
	Name  string   `json:"name" validate:"required"`
	Kind  Kind     `json:"type" validate:"required,oneof=continuous integer binary"`
	Lower *float64 `json:"lower"`
	Upper *float64 `json:"upper"`
}

// EffectiveBounds returns the numeric bounds the variable actually has:
// ±Inf where no bound was declared, and always [0,1] for binary.
func (v Variable) EffectiveBounds() (lower, upper float64) {
	if v.Kind == Binary {
		return 0, 1
	}
	lower, upper = math.Inf(-1), math.Inf(1)
	if v.Lower != nil {
		lower = *v.Lower
	}
	if v.Upper != nil {
		upper = *v.Upper
	}
	return lower, upper
}

// Objective is the single optimization target of a model.
type Objective struct {
	Sense      Sense  `json:"sense" validate:"required,oneof=maximize minimize"`
	Expression string `json:"expression" validate:"required"`
}

// Constraint is one declared constraint, still in textual form; the expr
// package normalizes it on demand.
type Constraint struct {
	Name       string `json:"name" validate:"required"`
	Expression string `json:"expression" validate:"required"`
}

// Model aggregates a complete problem declaration. Constraint order is
// preserved: it affects reported labels, never feasibility.
type Model struct {
	Variables   []Variable   `json:"variables" validate:"required,min=1,dive"`
	Objective   Objective    `json:"objective"`
	Constraints []Constraint `json:"constraints" validate:"dive"`
}

// VariableNames returns the declared names in declaration order. The
// returned slice is fresh; callers may modify it.
func (m *Model) VariableNames() []string {
	names := make([]string, len(m.Variables))
	for i, v := range m.Variables {
		names[i] = v.Name
	}
	return names
}

// HasIntegrality reports whether any variable is integer or binary,
// i.e. whether solving requires a mixed-integer backend.
func (m *Model) HasIntegrality() bool {
	for _, v := range m.Variables {
		if v.Kind == Integer || v.Kind == Binary {
			return true
		}
	}
	return false
}
