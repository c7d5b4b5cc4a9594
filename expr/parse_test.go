package expr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JorgeMoragaCalvo/theses-impl-sub000/expr"
)

//----------------------------------------------------------------------------//
// Parse Tests
//----------------------------------------------------------------------------//

// TestParse_Basics verifies coefficient extraction across the grammar's
// term forms.
func TestParse_Basics(t *testing.T) {
	vars := []string{"x1", "x2"}

	cases := []struct {
		name     string
		in       string
		coefs    []float64
		constant float64
	}{
		{"CoefStarVar", "3*x1 + 5*x2", []float64{3, 5}, 0},
		{"WithConstant", "3*x1 + 5*x2 - 2", []float64{3, 5}, -2},
		{"BareVariable", "x1 + x2", []float64{1, 1}, 0},
		{"LeadingMinus", "-x1 + 2*x2", []float64{-1, 2}, 0},
		{"ImplicitStar", "3x1 - 4x2", []float64{3, -4}, 0},
		{"ConstantOnly", "7", nil, 7},
		{"NegConstantOnly", "-0.5", nil, -0.5},
		{"RepeatedVariable", "x1 + x1", []float64{2, 0}, 0},
		{"DecimalCoefs", "2.5*x1 - 1.25*x2 + 0.75", []float64{2.5, -1.25}, 0.75},
		{"ScientificCoef", "1e+06*x1 + 2e-3*x2", []float64{1e6, 2e-3}, 0},
		{"NoSpaces", "3*x1+5*x2-2", []float64{3, 5}, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			coefs, constant, err := expr.Parse(tc.in, vars)
			require.NoError(t, err)
			want := tc.coefs
			if want == nil {
				want = []float64{0, 0}
			}
			assert.Equal(t, want, coefs)
			assert.Equal(t, tc.constant, constant)
		})
	}
}

// TestParse_LongestNameFirst guards the x1-vs-x10 matching rule.
func TestParse_LongestNameFirst(t *testing.T) {
	vars := []string{"x1", "x10"}

	coefs, constant, err := expr.Parse("2*x10 + 3*x1", vars)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2}, coefs)
	assert.Equal(t, 0.0, constant)
}

// TestParse_UndefinedVariable checks that identifier-shaped tokens outside
// the declared list fail instead of defaulting.
func TestParse_UndefinedVariable(t *testing.T) {
	vars := []string{"x1"}

	cases := []struct {
		name string
		in   string
	}{
		{"BareUnknown", "x1 + y"},
		{"UnknownWithCoef", "2*z + x1"},
		{"AlmostDeclared", "x10"},
		{"UnknownTimesKnown", "y*x1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := expr.Parse(tc.in, vars)
			assert.ErrorIs(t, err, expr.ErrUndefinedVariable, "input %q", tc.in)
		})
	}
}

// TestParse_UnsupportedGrammar checks that nonlinear or parenthesized
// input is rejected, never guessed at.
func TestParse_UnsupportedGrammar(t *testing.T) {
	vars := []string{"x1", "x2"}

	cases := []struct {
		name string
		in   string
	}{
		{"VariableProduct", "x1*x2"},
		{"VariableProductReversed", "x2*x1"},
		{"Parentheses", "2*(x1 + x2)"},
		{"Exponent", "x1^2"},
		{"Division", "x1/2"},
		{"DoubleProduct", "2*3*x1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := expr.Parse(tc.in, vars)
			assert.ErrorIs(t, err, expr.ErrUnsupportedGrammar, "input %q", tc.in)
		})
	}
}

// TestParse_MalformedInput covers empty input and dangling or stacked signs.
func TestParse_MalformedInput(t *testing.T) {
	vars := []string{"x1"}

	_, _, err := expr.Parse("   ", vars)
	assert.ErrorIs(t, err, expr.ErrEmptyExpression)

	for _, in := range []string{"x1 +", "3 + + 2", "*x1", "2*"} {
		_, _, err = expr.Parse(in, vars)
		assert.Error(t, err, "input %q must not parse", in)
		assert.NotErrorIs(t, err, expr.ErrUndefinedVariable, "input %q", in)
	}
}

// TestParse_Pure verifies Parse does not mutate its variable list.
func TestParse_Pure(t *testing.T) {
	vars := []string{"x1", "x2"}
	_, _, err := expr.Parse("x2 - x1", vars)
	require.NoError(t, err)
	assert.Equal(t, []string{"x1", "x2"}, vars)
}

//----------------------------------------------------------------------------//
// Format / Round-Trip Tests
//----------------------------------------------------------------------------//

// TestFormat_Canonical checks the rendered shape of a few vectors.
func TestFormat_Canonical(t *testing.T) {
	vars := []string{"x1", "x2"}

	cases := []struct {
		name     string
		coefs    []float64
		constant float64
		want     string
	}{
		{"Plain", []float64{3, 5}, -2, "3*x1 + 5*x2 - 2"},
		{"LeadingNegative", []float64{-1, 2}, 0, "-1*x1 + 2*x2"},
		{"SkipsZeros", []float64{0, 4}, 0, "4*x2"},
		{"ZeroExpression", []float64{0, 0}, 0, "0"},
		{"ConstantOnly", []float64{0, 0}, 3.5, "3.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, expr.Format(tc.coefs, tc.constant, vars))
		})
	}
}

// TestFormat_RoundTrip asserts Parse(Format(c, k)) == (c, k) exactly,
// including awkward magnitudes that print in scientific notation.
func TestFormat_RoundTrip(t *testing.T) {
	vars := []string{"x1", "x2", "x10"}

	cases := []struct {
		name     string
		coefs    []float64
		constant float64
	}{
		{"Small", []float64{3, 5, 0}, -2},
		{"Negative", []float64{-1.25, 0, 7}, 0.5},
		{"TinyAndHuge", []float64{1e-9, -2.5e+12, 3}, -1e-6},
		{"ThirdsAndSevenths", []float64{1.0 / 3.0, -2.0 / 7.0, 0}, 1.0 / 9.0},
		{"AllZero", []float64{0, 0, 0}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rendered := expr.Format(tc.coefs, tc.constant, vars)
			coefs, constant, err := expr.Parse(rendered, vars)
			require.NoError(t, err, "rendered %q", rendered)
			assert.Equal(t, tc.coefs, coefs, "rendered %q", rendered)
			assert.Equal(t, tc.constant, constant, "rendered %q", rendered)
		})
	}
}

// TestIsIdentifier pins the identifier pattern.
func TestIsIdentifier(t *testing.T) {
	for _, ok := range []string{"x1", "_tmp", "Profit", "a_b_2"} {
		assert.True(t, expr.IsIdentifier(ok), "%q should be legal", ok)
	}
	for _, bad := range []string{"", "1x", "x-1", "x 1", "π"} {
		assert.False(t, expr.IsIdentifier(bad), "%q should be illegal", bad)
	}
}

// sanity: sentinel errors remain distinct values.
func TestSentinelsDistinct(t *testing.T) {
	sentinels := []error{
		expr.ErrEmptyExpression,
		expr.ErrUndefinedVariable,
		expr.ErrUnsupportedGrammar,
		expr.ErrInvalidTerm,
		expr.ErrMissingOperator,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.False(t, errors.Is(a, b))
			}
		}
	}
}
