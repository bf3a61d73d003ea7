// SPDX-License-Identifier: MIT

// Package solver: domain types for linear systems and their outcomes.
package solver

import (
	"encoding/json"
	"fmt"
)

// Equation is one row of a linear system: Σ Coefficients[j]·xⱼ = Constant.
//
// JSON accepts the constant under either "constant" or "result"; when both
// are present they must agree.
type Equation struct {
	Coefficients []float64 `json:"coefficients"`
	Constant     float64   `json:"constant"`
}

// UnmarshalJSON decodes {"coefficients": [...], "constant"|"result": n}.
func (e *Equation) UnmarshalJSON(data []byte) error {
	var aux struct {
		Coefficients []float64 `json:"coefficients"`
		Constant     *float64  `json:"constant"`
		Result       *float64  `json:"result"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	switch {
	case aux.Constant != nil && aux.Result != nil && *aux.Constant != *aux.Result:
		return fmt.Errorf("%w: \"constant\" (%g) and \"result\" (%g) disagree",
			ErrInvalidSystemShape, *aux.Constant, *aux.Result)
	case aux.Constant != nil:
		e.Constant = *aux.Constant
	case aux.Result != nil:
		e.Constant = *aux.Result
	default:
		return fmt.Errorf("%w: equation needs a \"constant\" or \"result\"", ErrInvalidSystemShape)
	}
	e.Coefficients = aux.Coefficients

	return nil
}

// System is a square linear system with an explicit unknown count.
type System struct {
	Unknowns  int        `json:"unknowns"`
	Equations []Equation `json:"equations"`
}

// Outcome classifies a solve attempt.
type Outcome string

const (
	// OutcomeUnique means one solution exists and Variables holds it.
	OutcomeUnique Outcome = "unique"
	// OutcomeInfinite means the equations are dependent and consistent.
	OutcomeInfinite Outcome = "infinite"
	// OutcomeInconsistent means no assignment satisfies every equation.
	OutcomeInconsistent Outcome = "inconsistent"
	// OutcomeSingular is reported when back-substitution meets a vanishing diagonal.
	OutcomeSingular Outcome = "singular"
)

// Result is the data returned for every well-formed system. Degenerate
// systems are results, never errors.
type Result struct {
	HasUniqueSolution bool      `json:"hasUniqueSolution"`
	Variables         []float64 `json:"variables"`
	VariableNames     []string  `json:"variableNames,omitempty"`
	Outcome           Outcome   `json:"outcome"`
	Message           string    `json:"message"`
}

// Messages shown to callers, one per terminal state.
const (
	MsgUnique             = "Unique solution found"
	MsgDependent          = "System has infinite solutions (equations are dependent)"
	MsgInconsistentCramer = "System has no solution (equations are inconsistent)"
	MsgUnderdetermined    = "System has infinite solutions (underdetermined)"
	MsgInconsistent       = "System has no solution (inconsistent)"
	MsgSingular           = "System is singular"
)

// VariableNames returns x, y, z, w for up to four unknowns and x1..xn beyond.
func VariableNames(n int) []string {
	base := []string{"x", "y", "z", "w"}
	if n <= len(base) {
		return append([]string(nil), base[:n]...)
	}
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("x%d", i+1)
	}

	return out
}

func unique(vars []float64) Result {
	return Result{
		HasUniqueSolution: true,
		Variables:         vars,
		VariableNames:     VariableNames(len(vars)),
		Outcome:           OutcomeUnique,
		Message:           MsgUnique,
	}
}

func degenerate(o Outcome, msg string) Result {
	return Result{Variables: []float64{}, Outcome: o, Message: msg}
}
