// Package optmodel is a pipeline for algebraic optimization models:
// parse human-written linear expressions, validate the model they
// describe, solve it as an LP or MIP, and recover the feasible-region
// geometry for two-variable problems.
//
// 🚀 What is optmodel?
//
//	A small, composable toolkit that brings together:
//		• Expression parsing: "3*x1 + 5*x2 <= 10" into coefficient vectors
//		• Model validation: exhaustive error collection, never fail-fast
//		• Solving: pure-Go simplex for LPs, HiGHS for integer models
//		• Geometry: vertex enumeration of two-variable feasible regions
//
// ✨ Why choose optmodel?
//
//   - Predictable errors: every failure maps to a named sentinel
//   - Backend-agnostic: solvers plug in through small interfaces
//   - Honest validation: reports list every defect, not just the first
//
// Everything is organized under five subpackages:
//
//	expr/         — linear-expression parser and constraint translator
//	model/        — model types, JSON decoding and the validator
//	solver/       — canonical-form assembly and the solve adapter
//	solver/highsbackend/ — cgo bridge to the HiGHS solver
//	region/       — two-variable feasible-region vertex enumeration
//
// Quick sketch of the flow:
//
//	JSON ──▶ model.ParseDescription ──▶ model.Validate
//	                                        │
//	                              solver.Adapter.Solve
//	                                        │
//	                                 region.Compute
//
//	go get github.com/JorgeMoragaCalvo/theses-impl-sub000
package optmodel
