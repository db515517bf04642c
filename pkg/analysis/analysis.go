// Package analysis runs one complete MNA solve over a circuit: assemble,
// factor, back-substitute, and map the solution vector back to node
// voltages and source branch currents. Analyze is a pure function of its
// input; nothing persists between invocations, so concurrent calls with
// different circuits never interfere.
package analysis

import (
	"errors"
	"fmt"

	"github.com/phasornet/nodal/pkg/circuit"
	"github.com/phasornet/nodal/pkg/element"
	"github.com/phasornet/nodal/pkg/mna"
	"github.com/phasornet/nodal/pkg/solver"
)

// Analyze solves the circuit at its analysis frequency. On failure the
// returned error is one of the taxonomy types: DegenerateElementError,
// InvalidFrequencyError, DimensionMismatchError or SingularSystemError,
// the last enriched with circuit-level causes.
func Analyze(ckt *circuit.Circuit) (*Result, error) {
	if err := ckt.Validate(); err != nil {
		return nil, err
	}

	sys, err := mna.Assemble(ckt)
	if err != nil {
		return nil, err
	}

	x, err := solver.Solve(sys.A, sys.Z)
	if err != nil {
		var sing *solver.SingularSystemError
		if errors.As(err, &sing) {
			return nil, &solver.SingularSystemError{
				Step:   sing.Step,
				Causes: diagnoseCauses(ckt),
			}
		}
		return nil, err
	}

	return mapResult(ckt, sys, x), nil
}

// Error categories reported by Run.
const (
	CategoryDegenerateElement = "DegenerateElement"
	CategoryInvalidFrequency  = "InvalidFrequency"
	CategoryDimensionMismatch = "DimensionMismatch"
	CategorySingularSystem    = "SingularSystem"
	CategoryInvalidCircuit    = "InvalidCircuit"
	CategoryInternal          = "Internal"
)

// Outcome is the structured result handed to hosts that must never
// crash: a success flag, the result on success, and an error category
// plus message on failure. No partial numbers leak through on failure.
type Outcome struct {
	OK       bool
	Result   *Result
	Category string
	Message  string
}

// Run wraps Analyze, converting every failure, panics included, into a
// structured Outcome.
func Run(ckt *circuit.Circuit) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{Category: CategoryInternal, Message: fmt.Sprintf("panic: %v", r)}
		}
	}()

	res, err := Analyze(ckt)
	if err != nil {
		return Outcome{Category: Categorize(err), Message: err.Error()}
	}
	return Outcome{OK: true, Result: res}
}

// Categorize maps a taxonomy error to its category string.
func Categorize(err error) string {
	var degenerate *element.DegenerateElementError
	var frequency *element.InvalidFrequencyError
	var dimension *solver.DimensionMismatchError
	var singular *solver.SingularSystemError

	switch {
	case errors.As(err, &degenerate):
		return CategoryDegenerateElement
	case errors.As(err, &frequency):
		return CategoryInvalidFrequency
	case errors.As(err, &dimension):
		return CategoryDimensionMismatch
	case errors.As(err, &singular):
		return CategorySingularSystem
	default:
		return CategoryInvalidCircuit
	}
}
