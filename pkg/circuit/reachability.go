package circuit

import (
	"sort"

	"github.com/phasornet/nodal/pkg/element"
)

// conducts reports whether an element provides a conductive path at the
// circuit's frequency. A capacitor is an open circuit at DC; a current
// source never constrains its terminals' potentials.
func (c *Circuit) conducts(e element.Element) bool {
	switch e.Kind {
	case element.Capacitor:
		return !c.IsDC()
	case element.CurrentSource:
		return false
	default:
		return true
	}
}

// UnreachableNodes sweeps breadth-first from the reference node over
// conductive elements and returns the nodes never reached, ascending.
// Any such node makes the assembled system singular.
func (c *Circuit) UnreachableNodes() []int {
	adjacency := make(map[int][]int, c.NodeCount)
	for _, e := range c.Elements {
		if !c.conducts(e) {
			continue
		}
		adjacency[e.NodeA] = append(adjacency[e.NodeA], e.NodeB)
		adjacency[e.NodeB] = append(adjacency[e.NodeB], e.NodeA)
	}

	visited := make(map[int]bool, c.NodeCount)
	queue := []int{c.ReferenceNode}
	visited[c.ReferenceNode] = true
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, next := range adjacency[node] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	var floating []int
	for node := 0; node < c.NodeCount; node++ {
		if !visited[node] {
			floating = append(floating, node)
		}
	}
	sort.Ints(floating)
	return floating
}
