package circuit

// Gnd is the sentinel NodeIndex returns for the reference node, whose row
// and column are elided from the assembled system.
const Gnd = -1

// NodeIndex maps a real node number to its compacted matrix index: the
// reference node maps to Gnd, nodes below it keep their number, nodes
// above it shift down by one. The same mapping is used during stamping
// and during result extraction; it is pure and derived from ReferenceNode
// alone.
func (c *Circuit) NodeIndex(node int) int {
	switch {
	case node == c.ReferenceNode:
		return Gnd
	case node < c.ReferenceNode:
		return node
	default:
		return node - 1
	}
}

// NodeAt inverts NodeIndex for a compacted index in [0, NodeCount-1).
func (c *Circuit) NodeAt(idx int) int {
	if idx < c.ReferenceNode {
		return idx
	}
	return idx + 1
}
