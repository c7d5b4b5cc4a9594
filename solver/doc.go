// Package solver turns a declared model into canonical matrices and
// delegates the numeric work to an injected LP or MIP backend.
//
// 🚀 What does the adapter do?
//
//	  • caps model size before anything runs (DefaultMaxVariables /
//	    DefaultMaxConstraints), a safety bound rather than a backend limit
//	  • normalizes constraints: '≤' rows kept, '≥' rows negated into '≤',
//	    '=' rows in a separate equality system
//	  • builds per-variable bound arrays (binary ⇒ [0,1])
//	  • negates the objective for maximize (backends only minimize) and
//	    negates the reported optimum back
//	  • dispatches to the mixed-integer backend with an integrality mask
//	    when any variable is integer or binary, else to the continuous one
//
// ✨ Outcome mapping:
//
//	A successful solve is StatusOptimal with the solution vector in
//	declared variable order. Backend failures whose message names
//	"infeasible" or "unbounded" become those first-class states: expected
//	model outcomes, not pipeline failures. Everything else is
//	StatusError with the backend's message passed through. Nothing is
//	retried: solve outcomes are deterministic functions of the model.
//
// ⚙️ Usage:
//
//	ad := solver.New(solver.NewSimplexBackend(), nil, solver.DefaultOptions())
//	res := ad.Solve(m)
//	switch res.Status {
//	case solver.StatusOptimal:    // res.ObjectiveValue, res.Values
//	case solver.StatusInfeasible: // constraints exclude every point
//	case solver.StatusUnbounded:  // objective improves without limit
//	case solver.StatusError:      // res.Message
//	}
//
// Backends are constructor parameters, never globals: the adapter holds no
// mutable state, so concurrent Solve calls on independent models are safe.
// The continuous backend in this package runs on gonum's dense simplex;
// solver/highsbackend provides a mixed-integer backend on HiGHS.
package solver
