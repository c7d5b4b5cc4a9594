package expr

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// identPattern matches a complete legal variable name.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// identSearch finds the first identifier-shaped token inside a term; used
// only to name the offender in error messages.
var identSearch = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// IsIdentifier reports whether s is a legal variable name.
func IsIdentifier(s string) bool { return identPattern.MatchString(s) }

// term is one signed summand of an expression, whitespace already removed.
type term struct {
	sign float64
	body string
}

// Parse converts a linear expression into a coefficient vector aligned to
// vars plus a constant offset.
//
// Contracts:
//   - Terms are joined by '+'/'-' with an optional leading sign.
//   - Each term is <coef>*<var>, <var>, or <coef>; a coefficient written
//     directly against a variable ("3x1") is read as a product.
//   - Variable matching is longest-declared-name-first, so "x10" is never
//     read as x1 with a trailing 0.
//   - Identifiers not in vars fail with ErrUndefinedVariable; parentheses,
//     exponents, division and variable products fail with
//     ErrUnsupportedGrammar. Nothing is silently defaulted.
//
// Complexity: O(T·V·L) for T terms, V variables of max name length L;
// inputs are tiny (tens of characters), so this is effectively free.
func Parse(s string, vars []string) (coefs []float64, constant float64, err error) {
	compact := strings.Join(strings.Fields(s), "")
	if compact == "" {
		return nil, 0, ErrEmptyExpression
	}
	if i := strings.IndexAny(compact, "()^/"); i >= 0 {
		return nil, 0, fmt.Errorf("%w: %q is not part of the linear notation", ErrUnsupportedGrammar, string(compact[i]))
	}

	terms, err := splitTerms(compact)
	if err != nil {
		return nil, 0, err
	}

	coefs = make([]float64, len(vars))
	order := byNameLength(vars)
	for _, t := range terms {
		if err = applyTerm(t, vars, order, coefs, &constant); err != nil {
			return nil, 0, err
		}
	}

	return coefs, constant, nil
}

// splitTerms cuts a whitespace-free expression at top-level '+'/'-' signs.
// There is no operator precedence to respect: the grammar has no
// parentheses, so every sign is a term boundary.
func splitTerms(s string) ([]term, error) {
	var terms []term
	sign := 1.0
	start := 0

	for i := 0; i < len(s); i++ {
		if s[i] != '+' && s[i] != '-' {
			continue
		}
		// A sign directly after a digit+e is a scientific-notation
		// exponent ("3e+2", "1e-6"), not a term boundary.
		if i >= 2 && (s[i-1] == 'e' || s[i-1] == 'E') && isDigit(s[i-2]) {
			continue
		}
		body := s[start:i]
		if body == "" {
			if i == 0 {
				// Leading sign of the first term.
				if s[i] == '-' {
					sign = -1
				}
				start = 1
				continue
			}
			return nil, fmt.Errorf("%w: consecutive signs near position %d", ErrInvalidTerm, i)
		}
		terms = append(terms, term{sign: sign, body: body})
		if s[i] == '-' {
			sign = -1
		} else {
			sign = 1
		}
		start = i + 1
	}

	tail := s[start:]
	if tail == "" {
		return nil, fmt.Errorf("%w: expression ends with a sign", ErrInvalidTerm)
	}
	terms = append(terms, term{sign: sign, body: tail})

	return terms, nil
}

// byNameLength returns variable indices ordered by name length descending,
// declaration order breaking ties. Matching in this order implements the
// longest-name-first rule.
func byNameLength(vars []string) []int {
	order := make([]int, len(vars))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(vars[order[a]]) > len(vars[order[b]])
	})
	return order
}

// applyTerm resolves a single signed term and accumulates it into coefs or
// constant.
func applyTerm(t term, vars []string, order []int, coefs []float64, constant *float64) error {
	if strings.Count(t.body, "*") > 1 {
		return fmt.Errorf("%w: %q has more than one product", ErrUnsupportedGrammar, t.body)
	}

	// Longest-declared-name-first substring search within the term.
	for _, vi := range order {
		name := vars[vi]
		if name == "" {
			continue
		}
		at := strings.Index(t.body, name)
		for at >= 0 {
			if boundedMatch(t.body, at, len(name)) {
				coef, err := termCoefficient(t.body, at, len(name), vars)
				if err != nil {
					return err
				}
				coefs[vi] += t.sign * coef
				return nil
			}
			next := strings.Index(t.body[at+1:], name)
			if next < 0 {
				break
			}
			at += 1 + next
		}
	}

	// No declared variable inside: plain constant, undefined identifier,
	// or junk.
	if v, err := strconv.ParseFloat(t.body, 64); err == nil {
		*constant += t.sign * v
		return nil
	}
	if tok := identSearch.FindString(t.body); tok != "" {
		return fmt.Errorf("%w: %q", ErrUndefinedVariable, tok)
	}
	return fmt.Errorf("%w: %q", ErrInvalidTerm, t.body)
}

// boundedMatch reports whether the variable occurrence at s[at:at+n] is a
// whole token: not preceded by a letter/underscore (a preceding digit is a
// legal implicit coefficient, as in "3x1") and not followed by any
// identifier character (so x1 does not steal the head of x10).
func boundedMatch(s string, at, n int) bool {
	if at > 0 {
		c := s[at-1]
		if c == '_' || isLetter(c) {
			return false
		}
	}
	if end := at + n; end < len(s) {
		c := s[end]
		if c == '_' || isLetter(c) || isDigit(c) {
			return false
		}
	}
	return true
}

// termCoefficient extracts the numeric coefficient around the variable
// occupying body[at:at+n]. The variable must close the term; the prefix is
// either empty, "<coef>*", or a bare "<coef>".
func termCoefficient(body string, at, n int, vars []string) (float64, error) {
	if suffix := body[at+n:]; suffix != "" {
		if strings.HasPrefix(suffix, "*") && identSearch.MatchString(suffix) {
			return 0, fmt.Errorf("%w: %q multiplies two variables", ErrUnsupportedGrammar, body)
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidTerm, body)
	}

	prefix := body[:at]
	if prefix == "" {
		return 1, nil
	}
	head := strings.TrimSuffix(prefix, "*")
	if head == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTerm, body)
	}
	if v, err := strconv.ParseFloat(head, 64); err == nil {
		return v, nil
	}
	for _, name := range vars {
		if head == name {
			return 0, fmt.Errorf("%w: %q multiplies two variables", ErrUnsupportedGrammar, body)
		}
	}
	if identPattern.MatchString(head) {
		return 0, fmt.Errorf("%w: %q", ErrUndefinedVariable, head)
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTerm, body)
}

func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
