package solver

import (
	"fmt"
	"strings"

	"github.com/JorgeMoragaCalvo/theses-impl-sub000/expr"
	"github.com/JorgeMoragaCalvo/theses-impl-sub000/model"
)

// Adapter assembles canonical matrices from a declared model and
// dispatches to its injected backends. It holds no mutable state; one
// Adapter may serve concurrent Solve calls.
type Adapter struct {
	lp   LPBackend
	mip  MIPBackend
	opts Options
}

// New builds an adapter around the given backends. Either backend may be
// nil; models requiring the missing one are rejected with StatusError at
// solve time.
func New(lp LPBackend, mip MIPBackend, opts Options) *Adapter {
	return &Adapter{lp: lp, mip: mip, opts: opts.normalized()}
}

// Solve translates the model and runs the appropriate backend.
//
// Stages:
//  1. capacity caps (before anything else touches the model);
//  2. objective parse; coefficients negated when sense is maximize, the
//     constant offset held back and re-added to the reported optimum;
//  3. constraint normalization into G·x ≤ H and A·x = B;
//  4. effective bound arrays (binary ⇒ [0,1]);
//  5. backend dispatch by integrality, outcome mapping.
//
// Parse failures here mean the caller skipped Validate; they surface as
// StatusError with the parse message, never as a panic.
func (ad *Adapter) Solve(m *model.Model) Result {
	if n := len(m.Variables); n > ad.opts.MaxVariables {
		return errResult("%v: %d > %d", ErrTooManyVariables, n, ad.opts.MaxVariables)
	}
	if n := len(m.Constraints); n > ad.opts.MaxConstraints {
		return errResult("%v: %d > %d", ErrTooManyConstraints, n, ad.opts.MaxConstraints)
	}

	names := m.VariableNames()

	c, offset, err := expr.Parse(m.Objective.Expression, names)
	if err != nil {
		return errResult("objective: %v", err)
	}
	maximize := m.Objective.Sense == model.Maximize
	if maximize {
		negate(c)
	}

	p := Problem{C: c}
	for i, con := range m.Constraints {
		n, err := expr.Translate(con.Expression, names)
		if err != nil {
			label := con.Name
			if label == "" {
				label = fmt.Sprintf("constraint %d", i+1)
			}
			return errResult("%s: %v", label, err)
		}
		switch n.Relation {
		case expr.LE:
			p.G = append(p.G, n.Coefs)
			p.H = append(p.H, n.RHS)
		case expr.GE:
			negate(n.Coefs)
			p.G = append(p.G, n.Coefs)
			p.H = append(p.H, -n.RHS)
		case expr.EQ:
			p.A = append(p.A, n.Coefs)
			p.B = append(p.B, n.RHS)
		}
	}

	p.Lower = make([]float64, len(m.Variables))
	p.Upper = make([]float64, len(m.Variables))
	for i, v := range m.Variables {
		p.Lower[i], p.Upper[i] = v.EffectiveBounds()
	}

	var (
		obj float64
		x   []float64
	)
	if m.HasIntegrality() {
		if ad.mip == nil {
			return errResult("%v: model has integer variables", ErrNoBackend)
		}
		integral := make([]bool, len(m.Variables))
		for i, v := range m.Variables {
			integral[i] = v.Kind != model.Continuous
		}
		obj, x, err = ad.mip.SolveMIP(p, integral)
	} else {
		if ad.lp == nil {
			return errResult("%v: continuous model", ErrNoBackend)
		}
		obj, x, err = ad.lp.SolveLP(p)
	}
	if err != nil {
		return mapOutcome(err)
	}

	if maximize {
		obj = -obj
	}
	// The constant offset never enters the backend; it shifts the optimum
	// without moving the optimizer.
	obj += offset
	return Result{Status: StatusOptimal, ObjectiveValue: obj, Values: x}
}

// mapOutcome classifies a backend failure by its message: infeasible and
// unbounded are first-class results, anything else passes through as an
// error.
func mapOutcome(err error) Result {
	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "infeasible"):
		return Result{Status: StatusInfeasible, Message: msg}
	case strings.Contains(lower, "unbounded"):
		return Result{Status: StatusUnbounded, Message: msg}
	default:
		return Result{Status: StatusError, Message: msg}
	}
}

func errResult(format string, args ...any) Result {
	return Result{Status: StatusError, Message: fmt.Sprintf(format, args...)}
}

func negate(v []float64) {
	for i := range v {
		v[i] = -v[i]
	}
}
