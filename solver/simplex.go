package solver

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// DefaultSimplexTol is the reduced-cost tolerance handed to gonum's dense
// simplex.
const DefaultSimplexTol = 1e-10

// SimplexBackend is the continuous backend, running gonum's dense simplex.
// Finite variable bounds are folded into inequality rows, the general form
// is converted to standard form with lp.Convert, and lp.Simplex does the
// numeric work. Its sentinel errors already carry the "infeasible" /
// "unbounded" words the adapter keys on.
type SimplexBackend struct {
	// Tol is the reduced-cost tolerance (0 ⇒ DefaultSimplexTol).
	Tol float64
}

// NewSimplexBackend returns a backend with the default tolerance.
func NewSimplexBackend() *SimplexBackend {
	return &SimplexBackend{Tol: DefaultSimplexTol}
}

// SolveLP solves the canonical problem. The returned x is in the
// problem's own variable order, recovered from the split positive/negative
// parts of the standard form.
func (s *SimplexBackend) SolveLP(p Problem) (float64, []float64, error) {
	n := p.NumVariables()
	if n == 0 {
		return 0, nil, errors.New("solver: problem has no variables")
	}
	tol := s.Tol
	if tol <= 0 {
		tol = DefaultSimplexTol
	}

	// Fold finite bounds into inequality rows: lower ⇒ -x_i ≤ -lo,
	// upper ⇒ x_i ≤ up.
	g := append([][]float64(nil), p.G...)
	h := append([]float64(nil), p.H...)
	for i := 0; i < n; i++ {
		if lo := boundAt(p.Lower, i, math.Inf(-1)); !math.IsInf(lo, -1) {
			g = append(g, unitRow(n, i, -1))
			h = append(h, -lo)
		}
		if up := boundAt(p.Upper, i, math.Inf(1)); !math.IsInf(up, 1) {
			g = append(g, unitRow(n, i, 1))
			h = append(h, up)
		}
	}

	if len(h) == 0 && len(p.B) == 0 {
		// Fully unconstrained: only a constant objective has an optimum.
		for _, ci := range p.C {
			if ci != 0 {
				return 0, nil, lp.ErrUnbounded
			}
		}
		return 0, make([]float64, n), nil
	}

	cNew, aNew, bNew := lp.Convert(p.C, denseRows(g, n), h, denseRows(p.A, n), p.B)
	optF, optX, err := lp.Simplex(cNew, aNew, bNew, tol, nil)
	if err != nil {
		return 0, nil, err
	}

	// Standard form split x into xp - xn; slacks follow and are dropped.
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = optX[i] - optX[n+i]
	}
	return optF, x, nil
}

// denseRows packs dense rows into a gonum matrix; nil when there are no
// rows, which is the form lp.Convert expects for an absent block.
func denseRows(rows [][]float64, n int) mat.Matrix {
	if len(rows) == 0 {
		return nil
	}
	flat := make([]float64, 0, len(rows)*n)
	for _, r := range rows {
		flat = append(flat, r...)
	}
	return mat.NewDense(len(rows), n, flat)
}

// unitRow is a length-n row with a single ±1 entry at index i.
func unitRow(n, i int, sign float64) []float64 {
	r := make([]float64, n)
	r[i] = sign
	return r
}

// boundAt reads bounds[i], falling back when the array is short or absent.
func boundAt(bounds []float64, i int, fallback float64) float64 {
	if i < len(bounds) {
		return bounds[i]
	}
	return fallback
}
