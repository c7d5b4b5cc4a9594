// SPDX-License-Identifier: MIT
// Package: region

package region

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/JorgeMoragaCalvo/theses-impl-sub000/expr"
	"github.com/JorgeMoragaCalvo/theses-impl-sub000/model"
)

// Compute derives the feasible-region geometry of a two-variable model.
//
// Stages:
//  1. precondition: exactly two variables, checked before any work;
//  2. boundary lines: every explicit constraint normalized through
//     expr.Translate, plus an implicit '≥' line per finite lower bound;
//  3. candidate vertices: pairwise 2×2 intersections, skipping pairs with
//     a near-zero determinant;
//  4. global feasibility filter against all constraints and bounds, then
//     tolerance-based deduplication;
//  5. objective improvement direction (unit gradient, flipped for
//     minimize; zero gradient ⇒ none).
//
// Errors: ErrNotTwoVariables, or the expr errors of an unparseable
// constraint or objective.
func Compute(m *model.Model, opts Options) (Region, error) {
	if len(m.Variables) != 2 {
		return Region{}, fmt.Errorf("%w: model has %d", ErrNotTwoVariables, len(m.Variables))
	}
	opts = opts.normalized()
	names := m.VariableNames()

	// Effective numeric bounds per variable (binary ⇒ [0,1]).
	var lower, upper [2]float64
	for i, v := range m.Variables {
		lower[i], upper[i] = v.EffectiveBounds()
	}

	// Explicit constraint lines.
	explicit := make([]Line, 0, len(m.Constraints))
	for i, c := range m.Constraints {
		n, err := expr.Translate(c.Expression, names)
		if err != nil {
			label := c.Name
			if label == "" {
				label = fmt.Sprintf("constraint %d", i+1)
			}
			return Region{}, fmt.Errorf("%s: %w", label, err)
		}
		explicit = append(explicit, Line{
			Name:     c.Name,
			A:        n.Coefs[0],
			B:        n.Coefs[1],
			RHS:      n.RHS,
			Relation: n.Relation,
		})
	}

	// Implicit boundary lines from finite lower bounds.
	all := append([]Line(nil), explicit...)
	for i, name := range names {
		if !math.IsInf(lower[i], -1) {
			l := Line{Name: name + "_lower", RHS: lower[i], Relation: expr.GE}
			if i == 0 {
				l.A = 1
			} else {
				l.B = 1
			}
			all = append(all, l)
		}
	}

	vertices := intersectAndFilter(all, explicit, lower, upper, opts)

	reg := Region{Vertices: vertices, Lines: all}
	if dir, err := objectiveDirection(m, names, opts); err != nil {
		return Region{}, err
	} else if dir != nil {
		reg.ObjectiveDirection = dir
	}

	return reg, nil
}

// intersectAndFilter enumerates pairwise line intersections, keeps the
// globally feasible ones, and deduplicates within tolerance.
func intersectAndFilter(all, explicit []Line, lower, upper [2]float64, opts Options) [][2]float64 {
	vertices := make([][2]float64, 0, len(all))

	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			a := mat.NewDense(2, 2, []float64{
				all[i].A, all[i].B,
				all[j].A, all[j].B,
			})
			if math.Abs(mat.Det(a)) <= opts.DegenerateTol {
				// Parallel or coincident: no unique intersection.
				continue
			}
			var v mat.VecDense
			if err := v.SolveVec(a, mat.NewVecDense(2, []float64{all[i].RHS, all[j].RHS})); err != nil {
				continue
			}
			p := [2]float64{v.AtVec(0), v.AtVec(1)}
			if !feasible(p, explicit, lower, upper, opts.FeasTol) {
				continue
			}
			if !contains(vertices, p, opts.FeasTol) {
				vertices = append(vertices, p)
			}
		}
	}

	return vertices
}

// feasible tests p against every explicit constraint and both variable
// bounds, with tol slack on both strict directions.
func feasible(p [2]float64, explicit []Line, lower, upper [2]float64, tol float64) bool {
	for _, l := range explicit {
		lhs := l.A*p[0] + l.B*p[1]
		switch l.Relation {
		case expr.LE:
			if lhs > l.RHS+tol {
				return false
			}
		case expr.GE:
			if lhs < l.RHS-tol {
				return false
			}
		case expr.EQ:
			if math.Abs(lhs-l.RHS) > tol {
				return false
			}
		}
	}
	for i := 0; i < 2; i++ {
		if p[i] < lower[i]-tol || p[i] > upper[i]+tol {
			return false
		}
	}
	return true
}

// contains reports whether q already has a representative within tol in
// both coordinates.
func contains(pts [][2]float64, q [2]float64, tol float64) bool {
	for _, p := range pts {
		if math.Abs(p[0]-q[0]) <= tol && math.Abs(p[1]-q[1]) <= tol {
			return true
		}
	}
	return false
}

// objectiveDirection returns the unit improvement direction of the
// objective, nil when the gradient is (numerically) zero.
func objectiveDirection(m *model.Model, names []string, opts Options) (*[2]float64, error) {
	g, _, err := expr.Parse(m.Objective.Expression, names)
	if err != nil {
		return nil, fmt.Errorf("objective: %w", err)
	}
	norm := floats.Norm(g, 2)
	if norm <= opts.DegenerateTol {
		return nil, nil
	}
	dir := [2]float64{g[0] / norm, g[1] / norm}
	if m.Objective.Sense == model.Minimize {
		dir[0], dir[1] = -dir[0], -dir[1]
	}
	return &dir, nil
}
