package model

import (
	"fmt"

	"github.com/JorgeMoragaCalvo/theses-impl-sub000/expr"
)

// Report is the outcome of structural validation. Errors are fatal
// defects; Warnings are advisory and leave the model usable.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Summary  string   `json:"summary"`
}

// Validate performs all structural checks on a declared model and collects
// every finding instead of failing fast: a model with k independent
// defects reports exactly k errors. It never invokes a solver and has no
// side effects, so it is safe to call on every request before the heavier
// operations.
//
// Checks, in order:
//  1. each variable: legal identifier name, recognized kind, consistent
//     bounds (non-binary), duplicate-name detection; declared bounds on a
//     binary variable draw a warning (they are ignored, [0,1] applies);
//  2. objective: recognized sense, expression parses against the declared
//     variables;
//  3. each constraint: has a comparison operator and both sides parse;
//     strict '<'/'>' draw a warning recommending '<='/'>=';
//  4. a model without constraints is valid but draws a warning.
func Validate(m *Model) Report {
	var r Report

	if len(m.Variables) == 0 {
		r.Errors = append(r.Errors, "model declares no variables")
	}

	seen := make(map[string]struct{}, len(m.Variables))
	for _, v := range m.Variables {
		if !expr.IsIdentifier(v.Name) {
			r.Errors = append(r.Errors, fmt.Sprintf("variable %q: name is not a legal identifier", v.Name))
		}
		if _, dup := seen[v.Name]; dup {
			r.Errors = append(r.Errors, fmt.Sprintf("duplicate variable name %q", v.Name))
		}
		seen[v.Name] = struct{}{}

		switch {
		case !v.Kind.known():
			r.Errors = append(r.Errors, fmt.Sprintf("variable %q: unrecognized type %q", v.Name, v.Kind))
		case v.Kind == Binary:
			if v.Lower != nil || v.Upper != nil {
				r.Warnings = append(r.Warnings, fmt.Sprintf("binary variable %q: declared bounds are ignored, [0,1] applies", v.Name))
			}
		default:
			if v.Lower != nil && v.Upper != nil && *v.Lower > *v.Upper {
				r.Errors = append(r.Errors, fmt.Sprintf("variable %q: lower bound %g exceeds upper bound %g", v.Name, *v.Lower, *v.Upper))
			}
		}
	}

	names := m.VariableNames()

	if !m.Objective.Sense.known() {
		r.Errors = append(r.Errors, fmt.Sprintf("objective: unrecognized sense %q", m.Objective.Sense))
	}
	if _, _, err := expr.Parse(m.Objective.Expression, names); err != nil {
		r.Errors = append(r.Errors, fmt.Sprintf("objective: %v", err))
	}

	for i, c := range m.Constraints {
		label := c.Name
		if label == "" {
			label = fmt.Sprintf("constraint %d", i+1)
		}
		n, err := expr.Translate(c.Expression, names)
		if err != nil {
			r.Errors = append(r.Errors, fmt.Sprintf("%s: %v", label, err))
			continue
		}
		if n.Strict {
			r.Warnings = append(r.Warnings, fmt.Sprintf("%s: strict %q is treated as %q; prefer the non-strict operator", label, strictToken(n.Relation), n.Relation.String()))
		}
	}

	if len(m.Constraints) == 0 {
		r.Warnings = append(r.Warnings, "model has no constraints; only variable bounds restrict the feasible region")
	}

	r.Valid = len(r.Errors) == 0
	r.Summary = summarize(m, &r)

	return r
}

// strictToken maps a normalized relation back to the strict operator that
// produced it, for warning text.
func strictToken(rel expr.Relation) string {
	if rel == expr.GE {
		return ">"
	}
	return "<"
}

// summarize builds the one-line report summary.
func summarize(m *Model, r *Report) string {
	if !r.Valid {
		plural := "s"
		if len(r.Errors) == 1 {
			plural = ""
		}
		return fmt.Sprintf("invalid model: %d error%s", len(r.Errors), plural)
	}
	s := fmt.Sprintf("%s problem with %d variables and %d constraints", m.Objective.Sense, len(m.Variables), len(m.Constraints))
	if n := len(r.Warnings); n > 0 {
		s += fmt.Sprintf(" (%d warnings)", n)
	}
	return s
}
