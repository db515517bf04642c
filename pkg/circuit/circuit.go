// Package circuit holds the topology handed to the analysis engine: an
// ordered element list, the node count, the reference (ground) node and
// the analysis frequency. A Circuit is assembled by the caller and read,
// never mutated, by the engine.
package circuit

import (
	"fmt"

	"github.com/phasornet/nodal/internal/consts"
	"github.com/phasornet/nodal/pkg/element"
)

type Circuit struct {
	Name          string
	Elements      []element.Element
	NodeCount     int
	ReferenceNode int
	FrequencyHz   float64 // 0 means DC
}

func New(name string, nodeCount int) *Circuit {
	return &Circuit{Name: name, NodeCount: nodeCount}
}

func (c *Circuit) AddElement(e element.Element) {
	c.Elements = append(c.Elements, e)
}

// IsDC reports whether the circuit is analyzed at zero frequency.
func (c *Circuit) IsDC() bool { return c.FrequencyHz == 0 }

// VoltageSources returns the voltage sources in declaration order. That
// order fixes the branch-row layout of the assembled system and of the
// solution vector.
func (c *Circuit) VoltageSources() []element.Element {
	var vs []element.Element
	for _, e := range c.Elements {
		if e.Kind == element.VoltageSource {
			vs = append(vs, e)
		}
	}
	return vs
}

// DCInductors returns the inductors in declaration order when the circuit
// is analyzed at DC; they are promoted to zero-volt auxiliary branches.
func (c *Circuit) DCInductors() []element.Element {
	if !c.IsDC() {
		return nil
	}
	var ls []element.Element
	for _, e := range c.Elements {
		if e.Kind == element.Inductor {
			ls = append(ls, e)
		}
	}
	return ls
}

// Validate enforces the structural invariants the engine depends on:
// node count, reference node and every terminal within range, per-element
// validity, and a non-negative frequency.
func (c *Circuit) Validate() error {
	if c.NodeCount < consts.MinNodes {
		return fmt.Errorf("circuit %s: need at least %d nodes, have %d",
			c.Name, consts.MinNodes, c.NodeCount)
	}
	if c.ReferenceNode < 0 || c.ReferenceNode >= c.NodeCount {
		return fmt.Errorf("circuit %s: reference node %d out of range [0,%d)",
			c.Name, c.ReferenceNode, c.NodeCount)
	}
	if c.FrequencyHz < 0 {
		return &element.InvalidFrequencyError{FrequencyHz: c.FrequencyHz}
	}
	for _, e := range c.Elements {
		if err := e.Validate(); err != nil {
			return err
		}
		if e.NodeA >= c.NodeCount || e.NodeB >= c.NodeCount {
			return fmt.Errorf("circuit %s: element %s references node beyond count %d",
				c.Name, e.Name, c.NodeCount)
		}
	}
	return nil
}
