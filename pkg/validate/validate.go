// Package validate performs the pre-solve checks a front end runs before
// handing a circuit to the engine: size bounds, element-name uniqueness,
// presence of a source, and reachability of every node from the
// reference. The engine re-detects the consequent singularities on its
// own; this package exists to give earlier, friendlier feedback.
package validate

import (
	"errors"
	"fmt"

	"github.com/phasornet/nodal/internal/consts"
	"github.com/phasornet/nodal/pkg/circuit"
	"github.com/phasornet/nodal/pkg/element"
)

var (
	ErrTooManyNodes    = errors.New("too many nodes")
	ErrTooManyElements = errors.New("too many elements")
	ErrNoElements      = errors.New("circuit has no elements")
	ErrNoSource        = errors.New("circuit has no source element")
	ErrDuplicateName   = errors.New("duplicate element name")
	ErrUnreachableNode = errors.New("node unreachable from reference")
)

// Limits bounds the accepted circuit size.
type Limits struct {
	MaxNodes    int
	MaxElements int
}

func DefaultLimits() Limits {
	return Limits{MaxNodes: consts.MaxNodes, MaxElements: consts.MaxElements}
}

// Check validates a circuit against the structural invariants and the
// given limits. The first violation is returned; sentinel errors are
// wrapped so callers can match with errors.Is.
func Check(ckt *circuit.Circuit, limits Limits) error {
	if err := ckt.Validate(); err != nil {
		return err
	}
	if ckt.NodeCount > limits.MaxNodes {
		return fmt.Errorf("%w: %d > %d", ErrTooManyNodes, ckt.NodeCount, limits.MaxNodes)
	}
	if len(ckt.Elements) < consts.MinElements {
		return ErrNoElements
	}
	if len(ckt.Elements) > limits.MaxElements {
		return fmt.Errorf("%w: %d > %d", ErrTooManyElements, len(ckt.Elements), limits.MaxElements)
	}

	names := make(map[string]bool, len(ckt.Elements))
	hasSource := false
	for _, e := range ckt.Elements {
		if names[e.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateName, e.Name)
		}
		names[e.Name] = true
		if e.Kind == element.VoltageSource || e.Kind == element.CurrentSource {
			hasSource = true
		}
	}
	if !hasSource {
		return ErrNoSource
	}

	if floating := ckt.UnreachableNodes(); len(floating) > 0 {
		return fmt.Errorf("%w: %v", ErrUnreachableNode, floating)
	}
	return nil
}
