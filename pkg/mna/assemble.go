package mna

import (
	"github.com/phasornet/nodal/pkg/circuit"
	"github.com/phasornet/nodal/pkg/element"
)

// Assemble builds the full MNA system for the circuit at its analysis
// frequency. Every element is validated before the first stamp, so a
// degenerate passive or a negative frequency aborts with no partial
// matrix state. Branch rows are laid out as declared voltage sources
// first, then (at DC) inductors, both in declaration order.
func Assemble(ckt *circuit.Circuit) (*System, error) {
	if ckt.FrequencyHz < 0 {
		return nil, &element.InvalidFrequencyError{FrequencyHz: ckt.FrequencyHz}
	}
	for _, e := range ckt.Elements {
		if err := e.Validate(); err != nil {
			return nil, err
		}
	}

	sources := ckt.VoltageSources()
	inductorBranches := ckt.DCInductors()

	numNodes := ckt.NodeCount - 1
	numSources := len(sources)
	numBranches := numSources + len(inductorBranches)

	s := newSystem(numNodes, numSources, numBranches)

	for _, e := range ckt.Elements {
		switch {
		case e.Kind == element.CurrentSource:
			s.stampCurrent(ckt.NodeIndex(e.NodeA), ckt.NodeIndex(e.NodeB), e.Value)

		case e.Kind == element.Inductor && ckt.IsDC():
			// Promoted to an auxiliary branch row below.

		case e.Kind.Passive():
			y, err := element.Admittance(e, ckt.FrequencyHz)
			if err != nil {
				return nil, err
			}
			s.stampConductance(ckt.NodeIndex(e.NodeA), ckt.NodeIndex(e.NodeB), y)
		}
	}

	for k, e := range sources {
		s.stampBranch(ckt.NodeIndex(e.NodeA), ckt.NodeIndex(e.NodeB), k)
		s.Z[numNodes+k] = complex(e.Value, 0)
		s.BranchNames = append(s.BranchNames, e.Name)
	}
	// A DC inductor is an exact short: a zero-volt source with its own
	// branch-current unknown.
	for k, e := range inductorBranches {
		s.stampBranch(ckt.NodeIndex(e.NodeA), ckt.NodeIndex(e.NodeB), numSources+k)
		s.Z[numNodes+numSources+k] = 0
		s.BranchNames = append(s.BranchNames, e.Name)
	}

	s.concatenate()
	return s, nil
}
