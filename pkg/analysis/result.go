package analysis

import (
	"github.com/phasornet/nodal/pkg/circuit"
	"github.com/phasornet/nodal/pkg/mna"
)

// Result maps the raw solution vector back to physical quantities. Node
// voltages cover every real node number including the reference node,
// which is exactly zero by definition. Source currents are keyed by
// element name and read from the branch rows; at DC, promoted inductor
// branches yield their currents the same way.
type Result struct {
	NodeVoltages     map[int]complex128
	SourceCurrents   map[string]complex128
	InductorCurrents map[string]complex128

	// System and X are kept for diagnostics and education: the
	// assembled blocks with their dimensions, and the raw solution.
	System *mna.System
	X      []complex128
}

// mapResult re-inserts the reference node and distributes the solution
// vector using the same NodeIndex mapping the assembler stamped with.
func mapResult(ckt *circuit.Circuit, sys *mna.System, x []complex128) *Result {
	r := &Result{
		NodeVoltages:     make(map[int]complex128, ckt.NodeCount),
		SourceCurrents:   make(map[string]complex128, sys.NumSources),
		InductorCurrents: make(map[string]complex128, sys.NumBranches-sys.NumSources),
		System:           sys,
		X:                x,
	}

	for node := 0; node < ckt.NodeCount; node++ {
		idx := ckt.NodeIndex(node)
		if idx == circuit.Gnd {
			r.NodeVoltages[node] = 0
			continue
		}
		r.NodeVoltages[node] = x[idx]
	}

	for k, name := range sys.BranchNames {
		current := x[sys.NumNodes+k]
		if k < sys.NumSources {
			r.SourceCurrents[name] = current
		} else {
			r.InductorCurrents[name] = current
		}
	}

	return r
}
