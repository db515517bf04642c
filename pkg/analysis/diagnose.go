package analysis

import (
	"fmt"

	"github.com/phasornet/nodal/pkg/circuit"
	"github.com/phasornet/nodal/pkg/element"
	"github.com/phasornet/nodal/pkg/solver"
)

// diagnoseCauses inspects a circuit whose system came back singular and
// names the topology defects it can find: nodes with no conductive path
// to the reference, voltage sources wired between the same node pair,
// and closed loops of ideal voltage sources. When nothing specific is
// found it falls back to the generic cause list.
func diagnoseCauses(ckt *circuit.Circuit) []string {
	var causes []string

	if floating := ckt.UnreachableNodes(); len(floating) > 0 {
		causes = append(causes, fmt.Sprintf(
			"node(s) %v have no conductive path to reference node %d",
			floating, ckt.ReferenceNode))
	}
	for _, pair := range parallelSources(ckt) {
		causes = append(causes, fmt.Sprintf(
			"voltage sources %s and %s are connected between the same node pair",
			pair[0], pair[1]))
	}
	if hasSourceLoop(ckt) {
		causes = append(causes, "a closed loop consists entirely of ideal voltage sources")
	}

	if len(causes) == 0 {
		causes = solver.DefaultCauses
	}
	return causes
}

// parallelSources finds voltage-source pairs sharing a node pair in
// either orientation. Even equal-valued pairs make the system singular:
// their branch rows are linearly dependent.
func parallelSources(ckt *circuit.Circuit) [][2]string {
	type pair struct{ lo, hi int }
	seen := make(map[pair]string)
	var conflicts [][2]string
	for _, e := range ckt.VoltageSources() {
		p := pair{lo: e.NodeA, hi: e.NodeB}
		if p.lo > p.hi {
			p.lo, p.hi = p.hi, p.lo
		}
		if first, ok := seen[p]; ok {
			conflicts = append(conflicts, [2]string{first, e.Name})
			continue
		}
		seen[p] = e.Name
	}
	return conflicts
}

// hasSourceLoop detects a cycle among ideal-voltage-source edges (at DC,
// inductor shorts join them) with union-find: an edge whose endpoints
// are already connected closes a loop.
func hasSourceLoop(ckt *circuit.Circuit) bool {
	parent := make(map[int]int, ckt.NodeCount)
	var find func(int) int
	find = func(n int) int {
		if p, ok := parent[n]; ok && p != n {
			root := find(p)
			parent[n] = root
			return root
		}
		parent[n] = n
		return n
	}

	for _, e := range ckt.Elements {
		isBranch := e.Kind == element.VoltageSource ||
			(e.Kind == element.Inductor && ckt.IsDC())
		if !isBranch {
			continue
		}
		ra, rb := find(e.NodeA), find(e.NodeB)
		if ra == rb {
			return true
		}
		parent[ra] = rb
	}
	return false
}
