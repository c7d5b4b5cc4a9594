// SPDX-License-Identifier: MIT
// Package: region

package region

import (
	"math"
	"sort"
)

// SortCCW returns the vertices ordered counterclockwise by angle around
// their centroid, producing a drawable polygon outline. The engine itself
// makes no winding-order guarantee; this helper is for callers that feed
// the vertices to a renderer. The input slice is not modified.
func SortCCW(vertices [][2]float64) [][2]float64 {
	out := append([][2]float64(nil), vertices...)
	if len(out) < 3 {
		return out
	}

	var cx, cy float64
	for _, p := range out {
		cx += p[0]
		cy += p[1]
	}
	cx /= float64(len(out))
	cy /= float64(len(out))

	sort.SliceStable(out, func(i, j int) bool {
		return math.Atan2(out[i][1]-cy, out[i][0]-cx) < math.Atan2(out[j][1]-cy, out[j][0]-cx)
	})
	return out
}
