// SPDX-License-Identifier: MIT

package symbolic

import (
	"regexp"
	"strconv"
	"strings"
)

// Term grammar. A number may carry a sign and an exponent; a term is an
// optional sign, an optional unsigned coefficient and a variable name.
const (
	numPat    = `-?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`
	coefPat   = `(?:\d+\.?\d*|\.\d+)`
	termPat   = `(-?)(` + coefPat + `)?([A-Za-z_][A-Za-z0-9_]*)`
	factorPat = `(?:-?[A-Za-z0-9_.]+|\([^()]*\))`
	zeroPat   = `-?0(?:\.0*)?`
	mulPat    = `\s*\*\s*`
)

var (
	reParenToken  = regexp.MustCompile(`\(\s*(-?[A-Za-z0-9_.]+(?:[eE][-+]\d+)?)\s*\)`)
	reNumNum      = regexp.MustCompile(`(^|\s)(` + numPat + `)` + mulPat + `(` + numPat + `)($|\s)`)
	reNumTerm     = regexp.MustCompile(`(^|\s)(` + numPat + `)` + mulPat + termPat + `($|\s)`)
	reTermNum     = regexp.MustCompile(`(^|\s)` + termPat + mulPat + `(` + numPat + `)($|\s)`)
	reTermTerm    = regexp.MustCompile(`(^|\s)` + termPat + mulPat + termPat + `($|\s)`)
	reLeadZero    = regexp.MustCompile(`^` + zeroPat + `\s+([-+])\s+`)
	reInnerZero   = regexp.MustCompile(`\s+[-+]\s+` + zeroPat + `($|\s+[-+]\s)`)
	reTimesZeroR  = regexp.MustCompile(`(^|\s)` + factorPat + mulPat + zeroPat + `($|\s)`)
	reTimesZeroL  = regexp.MustCompile(`(^|\s)` + zeroPat + mulPat + factorPat + `($|\s)`)
	reTimesOneR   = regexp.MustCompile(mulPat + `1($|\s)`)
	reTimesOneL   = regexp.MustCompile(`(^|\s)1` + mulPat)
	reSpaces      = regexp.MustCompile(`\s+`)
	reLeadPlus    = regexp.MustCompile(`^\+\s*`)
	reLeadMinus   = regexp.MustCompile(`^-\s+`)
	reSignPair    = regexp.MustCompile(`([-+])\s*([-+])\s*`)
	reUnitCoef    = regexp.MustCompile(`(^|[\s(-])1([A-Za-z_][A-Za-z0-9_]*)`)
	reOnlySigns   = regexp.MustCompile(`^[-+\s]*$`)
	reNumericSum  = regexp.MustCompile(`^` + numPat + `(?:\s[-+]\s` + numPat + `)*$`)
)

// maxFixedPoint bounds the number of pipeline passes.
const maxFixedPoint = 32

// rule is one rewrite of the pipeline.
type rule struct {
	name  string
	apply func(string) string
}

// pipeline lists the rewrites in the order they run on every pass.
var pipeline = []rule{
	{"strip-parens", func(s string) string { return reParenToken.ReplaceAllString(s, "$1") }},
	{"numeric-product", foldNumbers},
	{"fold-coefficients", foldTerms},
	{"drop-zero-terms", func(s string) string {
		s = reLeadZero.ReplaceAllString(s, "$1 ")
		return reInnerZero.ReplaceAllString(s, "$1")
	}},
	{"times-zero", func(s string) string {
		s = reTimesZeroR.ReplaceAllString(s, "${1}0${2}")
		return reTimesZeroL.ReplaceAllString(s, "${1}0${2}")
	}},
	{"times-one", func(s string) string {
		s = reTimesOneR.ReplaceAllString(s, "$1")
		return reTimesOneL.ReplaceAllString(s, "$1")
	}},
	{"whitespace", func(s string) string { return strings.TrimSpace(reSpaces.ReplaceAllString(s, " ")) }},
	{"leading-sign", func(s string) string {
		s = reLeadPlus.ReplaceAllString(s, "")
		return reLeadMinus.ReplaceAllString(s, "-")
	}},
	{"sign-pairs", func(s string) string {
		return reSignPair.ReplaceAllStringFunc(s, func(m string) string {
			sub := reSignPair.FindStringSubmatch(m)
			if sub[1] == sub[2] {
				return "+ "
			}
			return "- "
		})
	}},
	{"unit-coefficient", stripUnitCoefficient},
}

// Simplify rewrites a raw cross-product expression into display form.
//
// Implementation:
//   - Stage 1: run the pipeline repeatedly until a pass changes nothing
//     (bounded; the rewrites only shorten or re-space the text).
//   - Stage 2: an all-numeric residue such as "10 - 3" is evaluated.
//   - Stage 3: an empty or sign-only result becomes "0".
//
// Behavior highlights:
//   - Only the shapes produced by RawCross are understood: "(a) * (b) - (c) * (d)"
//     with numbers, coefficient-variable terms ("3x", "-y", "2.5ab") or
//     parenthesized text. Anything else passes through mostly untouched.
//   - Coefficient-variable products concatenate variable names: "3x * 2y" → "6xy".
func Simplify(expr string) string {
	s := expr
	var prev string
	for i := 0; i < maxFixedPoint && s != prev; i++ {
		prev = s
		for _, r := range pipeline {
			s = r.apply(s)
		}
	}
	s = evaluateNumeric(s)
	if reOnlySigns.MatchString(s) {
		return "0"
	}

	return s
}

// Step records the text after one rule changed it.
type Step struct {
	Rule   string `json:"rule"`
	Result string `json:"result"`
}

// Trace runs Simplify and returns every rule application that changed the
// text, in order. The last Result equals Simplify(expr) unless no rule fired.
func Trace(expr string) []Step {
	var steps []Step
	s, prev := expr, ""
	var next string
	for i := 0; i < maxFixedPoint && s != prev; i++ {
		prev = s
		for _, r := range pipeline {
			if next = r.apply(s); next != s {
				steps = append(steps, Step{Rule: r.name, Result: next})
				s = next
			}
		}
	}
	if final := Simplify(expr); final != s {
		steps = append(steps, Step{Rule: "evaluate", Result: final})
	}

	return steps
}

// foldNumbers evaluates number × number.
func foldNumbers(s string) string {
	return reNumNum.ReplaceAllStringFunc(s, func(m string) string {
		sub := reNumNum.FindStringSubmatch(m)
		a, errA := strconv.ParseFloat(sub[2], 64)
		b, errB := strconv.ParseFloat(sub[3], 64)
		if errA != nil || errB != nil {
			return m
		}
		return sub[1] + formatNumber(a*b) + sub[4]
	})
}

// foldTerms merges coefficient × term, term × coefficient and term × term
// into one coefficient-prefixed term. Zero coefficients are left for the
// times-zero rule.
func foldTerms(s string) string {
	s = reNumTerm.ReplaceAllStringFunc(s, func(m string) string {
		sub := reNumTerm.FindStringSubmatch(m)
		k, ok := parseCoef(sub[2], "", "")
		c, okT := parseCoef("", sub[3], sub[4])
		if !ok || !okT || k == 0 {
			return m
		}
		return sub[1] + formatNumber(k*c) + sub[5] + sub[6]
	})
	s = reTermNum.ReplaceAllStringFunc(s, func(m string) string {
		sub := reTermNum.FindStringSubmatch(m)
		c, okT := parseCoef("", sub[2], sub[3])
		k, ok := parseCoef(sub[5], "", "")
		if !ok || !okT || k == 0 {
			return m
		}
		return sub[1] + formatNumber(c*k) + sub[4] + sub[6]
	})

	return reTermTerm.ReplaceAllStringFunc(s, func(m string) string {
		sub := reTermTerm.FindStringSubmatch(m)
		a, okA := parseCoef("", sub[2], sub[3])
		b, okB := parseCoef("", sub[5], sub[6])
		if !okA || !okB {
			return m
		}
		return sub[1] + formatNumber(a*b) + sub[4] + sub[7] + sub[8]
	})
}

// parseCoef reads either a full number (num != "") or a term's sign and
// optional coefficient, which defaults to 1.
func parseCoef(num, sign, coef string) (float64, bool) {
	if num != "" {
		v, err := strconv.ParseFloat(num, 64)
		return v, err == nil
	}
	v := 1.0
	if coef != "" {
		var err error
		if v, err = strconv.ParseFloat(coef, 64); err != nil {
			return 0, false
		}
	}
	if sign == "-" {
		v = -v
	}

	return v, true
}

// stripUnitCoefficient turns "1y" into "y" and "-1y" into "-y", leaving
// numbers such as "1e5" alone.
func stripUnitCoefficient(s string) string {
	return reUnitCoef.ReplaceAllStringFunc(s, func(m string) string {
		sub := reUnitCoef.FindStringSubmatch(m)
		if _, err := strconv.ParseFloat("1"+sub[2], 64); err == nil {
			return m
		}
		return sub[1] + sub[2]
	})
}

// evaluateNumeric folds "a ± b ± …" made only of numbers into one number.
func evaluateNumeric(s string) string {
	if !reNumericSum.MatchString(s) {
		return s
	}
	fields := strings.Fields(s)
	total, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return s
	}
	var v float64
	for i := 1; i+1 < len(fields); i += 2 {
		if v, err = strconv.ParseFloat(fields[i+1], 64); err != nil {
			return s
		}
		if fields[i] == "-" {
			total -= v
		} else {
			total += v
		}
	}

	return formatNumber(total)
}
