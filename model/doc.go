// Package model declares the algebraic optimization model (variables,
// objective, constraints), decodes it from its JSON wire description, and
// performs structural validation independent of any solving.
//
// A model description arrives as:
//
//	{
//	  "variables":  [ {"name": "x1", "type": "continuous",
//	                   "lower": 0, "upper": null}, ... ],
//	  "objective":  { "sense": "maximize", "expression": "3*x1 + 5*x2" },
//	  "constraints":[ {"name": "c1", "expression": "x1 + 2*x2 <= 10"}, ... ]
//	}
//
// ParseDescription rejects descriptions whose shape is wrong (unknown
// variable kinds, missing names). Validate then checks the declared model
// structurally: identifier legality, bound consistency, duplicate names,
// parseability of every expression against the declared variables. It
// collects all errors and warnings in one pass, so a caller sees every
// defect at once rather than the first one only. Validation never solves
// the model; it is a fast, side-effect-free pre-check that the solver and
// geometry packages do not depend on.
package model
