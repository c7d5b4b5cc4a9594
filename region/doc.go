// Package region computes a geometric description of the feasible
// polytope of a two-variable model: boundary lines, corner vertices, and
// the direction in which the objective improves.
//
// 🚀 How are vertices found?
//
//	Every constraint, plus an implicit '≥' line for each declared lower
//	bound, contributes a boundary line a·x + b·y {≤,≥,=} rhs. For every
//	unordered pair of lines the 2×2 system of their equations is solved;
//	pairs whose determinant is within DegenerateTol of zero (parallel or
//	coincident lines) are skipped. Each intersection point is then tested
//	against every constraint and variable bound, not just the two lines
//	that produced it, within FeasTol, and surviving points are
//	deduplicated within the same tolerance.
//
//	This is the classic vertex enumeration by pairwise boundary
//	intersection with a global feasibility filter: O(n²) pairs, and n is
//	never larger than a few dozen lines, so the whole computation stays
//	well under a millisecond.
//
// ✨ Contracts:
//   - exactly two variables, checked before any computation;
//   - vertices are returned in no particular winding order; use SortCCW
//     when a drawable polygon is needed;
//   - a zero objective gradient yields no improvement direction, which is
//     a feasible outcome, not an error.
//
// ⚙️ Usage:
//
//	reg, err := region.Compute(m, region.DefaultOptions())
//	if err != nil { ... } // region.ErrNotTwoVariables, parse errors
//	poly := region.SortCCW(reg.Vertices)
package region
