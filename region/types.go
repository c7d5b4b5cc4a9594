// SPDX-License-Identifier: MIT
// Package: region

package region

import (
	"errors"

	"github.com/JorgeMoragaCalvo/theses-impl-sub000/expr"
)

// ErrNotTwoVariables is returned for any model whose variable count is
// not exactly two; the engine is defined only on the plane.
var ErrNotTwoVariables = errors.New("region: this engine requires exactly two variables")

// Tolerance defaults. Feasibility and degeneracy answer different
// questions and carry different magnitudes: FeasTol absorbs solver-scale
// noise in point coordinates, DegenerateTol guards the determinant of
// near-parallel line pairs.
const (
	DefaultFeasTol       = 1e-6
	DefaultDegenerateTol = 1e-9
)

// Options tunes the numeric tolerances (zero fields take defaults).
type Options struct {
	// FeasTol is the slack allowed when testing a candidate vertex
	// against constraints and bounds, and the radius within which two
	// vertices collapse into one.
	FeasTol float64
	// DegenerateTol is the determinant magnitude below which a line pair
	// is treated as parallel and skipped.
	DegenerateTol float64
}

// DefaultOptions returns the documented tolerance defaults.
func DefaultOptions() Options {
	return Options{FeasTol: DefaultFeasTol, DegenerateTol: DefaultDegenerateTol}
}

func (o Options) normalized() Options {
	if o.FeasTol <= 0 {
		o.FeasTol = DefaultFeasTol
	}
	if o.DegenerateTol <= 0 {
		o.DegenerateTol = DefaultDegenerateTol
	}
	return o
}

// Line is one boundary of the feasible region in normal form
// A·x + B·y {≤,≥,=} RHS. Explicit constraints keep their declared name;
// implicit bound lines are named "<var>_lower".
type Line struct {
	Name     string        `json:"name"`
	A        float64       `json:"a"`
	B        float64       `json:"b"`
	RHS      float64       `json:"rhs"`
	Relation expr.Relation `json:"relation"`
}

// Region is the geometric description of the feasible polytope.
// ObjectiveDirection, when present, is the unit vector along which the
// objective improves (gradient for maximize, its negation for minimize).
type Region struct {
	Vertices           [][2]float64 `json:"vertices"`
	Lines              []Line       `json:"lines"`
	ObjectiveDirection *[2]float64  `json:"objective_direction,omitempty"`
}
