//go:build (linux || darwin) && (amd64 || arm64)

// Package highsbackend adapts the HiGHS solver to the solver package's
// backend interfaces. HiGHS handles both continuous and mixed-integer
// problems, so one Backend satisfies solver.LPBackend and
// solver.MIPBackend; the integrality mask maps directly onto HiGHS
// variable types.
//
// The build constraint mirrors the platforms the embedded HiGHS static
// libraries support (linux/darwin on amd64/arm64).
package highsbackend

import (
	"errors"
	"fmt"

	"github.com/bartolsthoorn/gohighs/highs"

	"github.com/JorgeMoragaCalvo/theses-impl-sub000/solver"
)

var (
	// ErrInfeasible / ErrUnbounded carry the keywords the adapter's
	// outcome mapping looks for.
	ErrInfeasible = errors.New("highs: model is infeasible")
	ErrUnbounded  = errors.New("highs: model is unbounded")
)

// Backend runs solves through HiGHS with solver output suppressed.
type Backend struct{}

// New returns a ready Backend; HiGHS itself is instantiated per solve, so
// the value is stateless and safe for concurrent use.
func New() *Backend { return &Backend{} }

// SolveLP solves the continuous problem.
func (b *Backend) SolveLP(p solver.Problem) (float64, []float64, error) {
	return b.run(p, nil)
}

// SolveMIP solves with integrality restrictions; integral[i] marks
// variable i integer-valued.
func (b *Backend) SolveMIP(p solver.Problem, integral []bool) (float64, []float64, error) {
	return b.run(p, integral)
}

func (b *Backend) run(p solver.Problem, integral []bool) (float64, []float64, error) {
	n := p.NumVariables()
	m := highs.Model{
		ColCosts: p.C,
		ColLower: p.Lower,
		ColUpper: p.Upper,
	}
	for i, row := range p.G {
		m.AddLeRow(row, p.H[i])
	}
	for i, row := range p.A {
		m.AddEqRow(row, p.B[i])
	}
	if integral != nil {
		m.VarTypes = make([]highs.VariableType, n)
		for i, isInt := range integral {
			if isInt {
				m.VarTypes[i] = highs.Integer
			}
		}
	}

	sol, err := m.Solve(highs.WithOutput(false))
	if err != nil {
		return 0, nil, err
	}
	switch {
	case sol.IsOptimal():
		return sol.Objective, sol.ColValues, nil
	case sol.IsInfeasible():
		return 0, nil, ErrInfeasible
	case sol.IsUnbounded():
		return 0, nil, ErrUnbounded
	default:
		return 0, nil, fmt.Errorf("highs: solve ended with status %s", sol.Status)
	}
}
