// SPDX-License-Identifier: MIT

package symbolic

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidToken is returned when a token is neither a finite number nor a
// variable term.
var ErrInvalidToken = errors.New("symbolic: invalid token")

// IsVariable reports whether token is a variable term.
//
// A token is numeric when it parses as a finite float64, so "3e5" and "-2.5"
// are numbers and "tree", "3x", "-y" and "e" are variables. Tokens that are
// neither (e.g. "1/2") are not variables; ParseNumber rejects them. A blank
// token stands for 0.
func IsVariable(token string) bool {
	t := strings.TrimSpace(token)
	if t == "" {
		return false
	}
	if v, err := strconv.ParseFloat(t, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
		return false
	}

	return strings.IndexFunc(t, unicode.IsLetter) >= 0
}

// HasVariables reports whether any token is a variable term.
func HasVariables(tokens ...string) bool {
	for _, t := range tokens {
		if IsVariable(t) {
			return true
		}
	}

	return false
}

// ParseNumber converts a numeric token; blank tokens are 0.
// Errors: ErrInvalidToken for variables, malformed and non-finite input.
func ParseNumber(token string) (float64, error) {
	t := strings.TrimSpace(token)
	if t == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q is not a finite number", ErrInvalidToken, token)
	}

	return v, nil
}

// ParseNumbers applies ParseNumber to every token, naming the first bad index.
func ParseNumbers(tokens []string) ([]float64, error) {
	out := make([]float64, len(tokens))
	var err error
	for i, t := range tokens {
		if out[i], err = ParseNumber(t); err != nil {
			return nil, fmt.Errorf("component %d: %w", i+1, err)
		}
	}

	return out, nil
}

// normalizeToken trims a token and maps blank to "0".
func normalizeToken(token string) string {
	t := strings.TrimSpace(token)
	if t == "" {
		return "0"
	}

	return t
}

// formatNumber renders v with the shortest exact representation after
// rounding to ten decimals; negative zero prints as "0".
func formatNumber(v float64) string {
	v = math.Round(v*1e10) / 1e10
	if v == 0 {
		return "0"
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
