// Package element models the linear circuit components the engine accepts:
// resistors, capacitors, inductors and independent voltage/current sources.
package element

import (
	"fmt"
	"math"
)

type Kind int

const (
	Resistor Kind = iota
	Capacitor
	Inductor
	VoltageSource
	CurrentSource
)

func (k Kind) String() string {
	switch k {
	case Resistor:
		return "R"
	case Capacitor:
		return "C"
	case Inductor:
		return "L"
	case VoltageSource:
		return "V"
	case CurrentSource:
		return "I"
	default:
		return "?"
	}
}

// Passive reports whether the kind contributes a conductance stamp
// rather than a source stamp.
func (k Kind) Passive() bool {
	return k == Resistor || k == Capacitor || k == Inductor
}

// Element is one circuit component. It is a plain value and is never
// mutated once handed to the engine. NodeA is the positive terminal for
// sources; source values carry the usual sign conventions (a positive
// current source drives current out of NodeA into the circuit).
type Element struct {
	Kind  Kind
	Name  string
	NodeA int
	NodeB int
	Value float64
}

func NewResistor(name string, nodeA, nodeB int, ohms float64) Element {
	return Element{Kind: Resistor, Name: name, NodeA: nodeA, NodeB: nodeB, Value: ohms}
}

func NewCapacitor(name string, nodeA, nodeB int, farads float64) Element {
	return Element{Kind: Capacitor, Name: name, NodeA: nodeA, NodeB: nodeB, Value: farads}
}

func NewInductor(name string, nodeA, nodeB int, henries float64) Element {
	return Element{Kind: Inductor, Name: name, NodeA: nodeA, NodeB: nodeB, Value: henries}
}

func NewVoltageSource(name string, plus, minus int, volts float64) Element {
	return Element{Kind: VoltageSource, Name: name, NodeA: plus, NodeB: minus, Value: volts}
}

func NewCurrentSource(name string, plus, minus int, amps float64) Element {
	return Element{Kind: CurrentSource, Name: name, NodeA: plus, NodeB: minus, Value: amps}
}

func (e Element) String() string {
	return fmt.Sprintf("%s %s(%d,%d)=%g", e.Kind, e.Name, e.NodeA, e.NodeB, e.Value)
}

// Validate checks the element's own invariants: distinct non-negative
// terminals, finite value, and strict positivity for passives.
func (e Element) Validate() error {
	if e.NodeA < 0 || e.NodeB < 0 {
		return fmt.Errorf("element %s: negative node index", e.Name)
	}
	if e.NodeA == e.NodeB {
		return fmt.Errorf("element %s: both terminals on node %d", e.Name, e.NodeA)
	}
	if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
		return &DegenerateElementError{Element: e, Reason: "value is not finite"}
	}
	if e.Kind.Passive() && e.Value <= 0 {
		return &DegenerateElementError{Element: e, Reason: "value must be > 0"}
	}
	return nil
}
