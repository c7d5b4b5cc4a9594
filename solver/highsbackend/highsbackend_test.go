//go:build (linux || darwin) && (amd64 || arm64)

package highsbackend_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JorgeMoragaCalvo/theses-impl-sub000/solver"
	"github.com/JorgeMoragaCalvo/theses-impl-sub000/solver/highsbackend"
)

// knapsack-style toy: minimize -(x1+2*x2) with x1+x2 <= 1, both variables
// integral in [0,1]. The optimum picks x2.
func TestBackend_SolveMIP(t *testing.T) {
	p := solver.Problem{
		C:     []float64{-1, -2},
		G:     [][]float64{{1, 1}},
		H:     []float64{1},
		Lower: []float64{0, 0},
		Upper: []float64{1, 1},
	}

	obj, x, err := highsbackend.New().SolveMIP(p, []bool{true, true})
	require.NoError(t, err)
	assert.InDelta(t, -2.0, obj, 1e-6)
	require.Len(t, x, 2)
	assert.InDelta(t, 0.0, x[0], 1e-6)
	assert.InDelta(t, 1.0, x[1], 1e-6)
}

// TestBackend_SolveLP checks the continuous path and the infeasible and
// unbounded keyword contracts.
func TestBackend_SolveLP(t *testing.T) {
	b := highsbackend.New()

	t.Run("Optimal", func(t *testing.T) {
		p := solver.Problem{
			C:     []float64{1},
			G:     [][]float64{{-1}},
			H:     []float64{-3}, // x >= 3
			Lower: []float64{0},
			Upper: []float64{math.Inf(1)},
		}
		obj, x, err := b.SolveLP(p)
		require.NoError(t, err)
		assert.InDelta(t, 3.0, obj, 1e-6)
		assert.InDelta(t, 3.0, x[0], 1e-6)
	})

	t.Run("Infeasible", func(t *testing.T) {
		p := solver.Problem{
			C:     []float64{1},
			G:     [][]float64{{1}, {-1}},
			H:     []float64{1, -2}, // x <= 1 and x >= 2
			Lower: []float64{math.Inf(-1)},
			Upper: []float64{math.Inf(1)},
		}
		_, _, err := b.SolveLP(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "infeasible")
	})

	t.Run("Unbounded", func(t *testing.T) {
		p := solver.Problem{
			C:     []float64{-1}, // minimize -x, x free above
			G:     [][]float64{{-1}},
			H:     []float64{0}, // x >= 0
			Lower: []float64{math.Inf(-1)},
			Upper: []float64{math.Inf(1)},
		}
		_, _, err := b.SolveLP(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unbounded")
	})
}
