package expr

import (
	"strconv"
	"strings"
)

// Format renders a coefficient vector and constant offset as a canonical
// expression string: nonzero terms in variable order as "<coef>*<var>",
// the constant last, terms joined by " + " / " - ". The zero expression
// renders as "0".
//
// Format is the inverse of Parse on its own output:
// Parse(Format(c, k, vars), vars) yields (c, k) exactly, bit for bit,
// because coefficients are printed with strconv's shortest round-trip
// representation.
func Format(coefs []float64, constant float64, vars []string) string {
	var b strings.Builder

	appendTerm := func(v float64, suffix string) {
		if v == 0 {
			return
		}
		abs := v
		switch {
		case b.Len() == 0 && v < 0:
			b.WriteByte('-')
			abs = -v
		case b.Len() == 0:
			// leading positive term carries no sign
		case v < 0:
			b.WriteString(" - ")
			abs = -v
		default:
			b.WriteString(" + ")
		}
		b.WriteString(strconv.FormatFloat(abs, 'g', -1, 64))
		b.WriteString(suffix)
	}

	for i, c := range coefs {
		appendTerm(c, "*"+vars[i])
	}
	appendTerm(constant, "")

	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}
