// Package netlist parses a SPICE-flavored description of a linear
// circuit: element cards for R, L, C and independent V/I sources, `.op`
// for DC and `.ac <freq>` for a single-frequency phasor analysis.
// Values accept the usual engineering prefixes (k, meg, u, ...). Ground
// is node "0" (alias "gnd") and becomes the reference node; remaining
// nodes keep their numbers when they are numeric, otherwise they are
// numbered in order of first appearance.
package netlist

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/phasornet/nodal/pkg/circuit"
	"github.com/phasornet/nodal/pkg/element"
)

// Netlist is the parsed form: the built circuit plus the node-name
// mapping used to report results under the user's labels.
type Netlist struct {
	Title   string
	Circuit *circuit.Circuit
	Nodes   map[string]int // node label -> node number (ground -> 0)
}

var unitMap = map[string]float64{
	"T":   1e12,
	"G":   1e9,
	"meg": 1e6,
	"K":   1e3,
	"k":   1e3,
	"m":   1e-3,
	"u":   1e-6,
	"n":   1e-9,
	"p":   1e-12,
	"f":   1e-15,
}

var valueRe = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)(meg|[TGKkmunpf])?$`)

// ParseValue converts a textual value with an optional engineering
// prefix ("10k", "2.2meg", "1e-6") to a plain real number.
func ParseValue(val string) (float64, error) {
	matches := valueRe.FindStringSubmatch(strings.TrimSpace(val))
	if matches == nil {
		return 0, fmt.Errorf("invalid value format: %s", val)
	}
	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, err
	}
	if matches[2] != "" {
		num *= unitMap[matches[2]]
	}
	return num, nil
}

type rawElement struct {
	kind  element.Kind
	name  string
	nodeA string
	nodeB string
	value float64
}

// Parse reads a netlist. The first line is the title; "*" starts a
// comment, "+" continues the previous card.
func Parse(input string) (*Netlist, error) {
	scanner := bufio.NewScanner(strings.NewReader(input))

	title := ""
	if scanner.Scan() {
		title = strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "*"))
	}

	var cards []string
	current := ""
	flush := func() {
		if current != "" {
			cards = append(cards, current)
			current = ""
		}
	}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if idx := strings.Index(line, "*"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		if line == "" {
			flush()
			continue
		}
		if strings.HasPrefix(line, "+") {
			if current == "" {
				return nil, fmt.Errorf("continuation line with nothing to continue: %q", line)
			}
			current += " " + strings.TrimSpace(line[1:])
			continue
		}
		flush()
		current = line
	}
	flush()

	var raws []rawElement
	freqHz := 0.0
	for _, card := range cards {
		fields := strings.Fields(card)
		if strings.HasPrefix(fields[0], ".") {
			done, err := parseDotCard(fields, &freqHz)
			if err != nil {
				return nil, err
			}
			if done {
				break
			}
			continue
		}

		raw, err := parseElementCard(fields)
		if err != nil {
			return nil, err
		}
		raws = append(raws, raw)
	}

	nodes, nodeCount, err := numberNodes(raws)
	if err != nil {
		return nil, err
	}

	ckt := circuit.New(title, nodeCount)
	ckt.FrequencyHz = freqHz
	for _, raw := range raws {
		ckt.AddElement(element.Element{
			Kind:  raw.kind,
			Name:  raw.name,
			NodeA: nodes[raw.nodeA],
			NodeB: nodes[raw.nodeB],
			Value: raw.value,
		})
	}

	return &Netlist{Title: title, Circuit: ckt, Nodes: nodes}, nil
}

// parseDotCard handles the analysis cards; it reports true on ".end".
func parseDotCard(fields []string, freqHz *float64) (bool, error) {
	switch strings.ToLower(fields[0]) {
	case ".op":
		*freqHz = 0
	case ".ac":
		if len(fields) < 2 {
			return false, fmt.Errorf(".ac needs a frequency")
		}
		f, err := ParseValue(fields[1])
		if err != nil {
			return false, fmt.Errorf("invalid AC frequency: %v", err)
		}
		*freqHz = f
	case ".end":
		return true, nil
	default:
		return false, fmt.Errorf("unsupported card %s", fields[0])
	}
	return false, nil
}

func parseElementCard(fields []string) (rawElement, error) {
	if len(fields) < 4 {
		return rawElement{}, fmt.Errorf("element card needs name, two nodes and a value: %q",
			strings.Join(fields, " "))
	}

	name := fields[0]
	var kind element.Kind
	switch strings.ToUpper(name[:1]) {
	case "R":
		kind = element.Resistor
	case "C":
		kind = element.Capacitor
	case "L":
		kind = element.Inductor
	case "V":
		kind = element.VoltageSource
	case "I":
		kind = element.CurrentSource
	default:
		return rawElement{}, fmt.Errorf("unsupported element type in %q", name)
	}

	valueField := fields[3]
	if strings.EqualFold(valueField, "dc") {
		if len(fields) < 5 {
			return rawElement{}, fmt.Errorf("element %s: dc keyword without a value", name)
		}
		valueField = fields[4]
	}
	value, err := ParseValue(valueField)
	if err != nil {
		return rawElement{}, fmt.Errorf("element %s: %v", name, err)
	}

	return rawElement{
		kind:  kind,
		name:  name,
		nodeA: canonicalNode(fields[1]),
		nodeB: canonicalNode(fields[2]),
		value: value,
	}, nil
}

func canonicalNode(label string) string {
	if strings.EqualFold(label, "gnd") {
		return "0"
	}
	return label
}

// numberNodes assigns node numbers. Ground is always 0. When every other
// label is a positive integer the labels are kept as-is; otherwise
// labels are numbered in first-appearance order.
func numberNodes(raws []rawElement) (map[string]int, int, error) {
	var order []string
	seen := map[string]bool{}
	for _, raw := range raws {
		for _, label := range []string{raw.nodeA, raw.nodeB} {
			if label != "0" && !seen[label] {
				seen[label] = true
				order = append(order, label)
			}
		}
	}
	if len(order) == 0 {
		return nil, 0, fmt.Errorf("netlist has no non-ground node")
	}

	nodes := map[string]int{"0": 0}

	numeric := true
	maxNode := 0
	for _, label := range order {
		n, err := strconv.Atoi(label)
		if err != nil || n <= 0 {
			numeric = false
			break
		}
		if n > maxNode {
			maxNode = n
		}
	}

	// Keep numeric labels only when they are contiguous; "1 5 9" would
	// leave phantom floating nodes in between.
	if numeric && maxNode == len(order) {
		for _, label := range order {
			n, _ := strconv.Atoi(label)
			nodes[label] = n
		}
		return nodes, maxNode + 1, nil
	}

	for i, label := range order {
		nodes[label] = i + 1
	}
	return nodes, len(order) + 1, nil
}
