package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/phasornet/nodal/pkg/analysis"
	"github.com/phasornet/nodal/pkg/mna"
	"github.com/phasornet/nodal/pkg/netlist"
	"github.com/phasornet/nodal/pkg/util"
	"github.com/phasornet/nodal/pkg/validate"
)

func main() {
	showMatrices := flag.Bool("m", false, "print the assembled system blocks")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("usage: nodal [-m] <netlist file>")
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("reading netlist: %v", err)
	}

	nl, err := netlist.Parse(string(data))
	if err != nil {
		log.Fatalf("parsing netlist: %v", err)
	}

	if err := validate.Check(nl.Circuit, validate.DefaultLimits()); err != nil {
		log.Fatalf("invalid circuit: %v", err)
	}

	out := analysis.Run(nl.Circuit)
	if !out.OK {
		fmt.Fprintf(os.Stderr, "analysis failed [%s]: %s\n", out.Category, out.Message)
		os.Exit(1)
	}

	printResults(nl, out.Result)
	if *showMatrices {
		printSystem(out.Result.System)
	}
}

func printResults(nl *netlist.Netlist, res *analysis.Result) {
	ckt := nl.Circuit
	dc := ckt.IsDC()

	if nl.Title != "" {
		fmt.Println(nl.Title)
	}
	if dc {
		fmt.Println("DC operating point:")
	} else {
		fmt.Printf("AC analysis at %s:\n", util.FormatFrequency(ckt.FrequencyHz))
	}

	labelOf := make(map[int]string, len(nl.Nodes))
	for label, node := range nl.Nodes {
		labelOf[node] = label
	}

	nodes := make([]int, 0, len(res.NodeVoltages))
	for node := range res.NodeVoltages {
		nodes = append(nodes, node)
	}
	sort.Ints(nodes)
	for _, node := range nodes {
		fmt.Printf("  V(%s) = %s\n", labelOf[node], formatQuantity(res.NodeVoltages[node], "V", dc))
	}

	for _, name := range sortedKeys(res.SourceCurrents) {
		fmt.Printf("  I(%s) = %s\n", name, formatQuantity(res.SourceCurrents[name], "A", dc))
	}
	for _, name := range sortedKeys(res.InductorCurrents) {
		fmt.Printf("  I(%s) = %s\n", name, formatQuantity(res.InductorCurrents[name], "A", dc))
	}
}

func formatQuantity(v complex128, unit string, dc bool) string {
	if dc {
		return util.FormatValueFactor(real(v), unit)
	}
	return util.FormatPhasor(v, unit)
}

func sortedKeys(m map[string]complex128) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func printSystem(sys *mna.System) {
	fmt.Printf("\nAssembled system (%d node rows, %d branch rows):\n", sys.NumNodes, sys.NumBranches)
	printBlock("G", sys.G)
	printBlock("B", sys.B)
	printBlock("C", sys.C)
	printBlock("D", sys.D)
	printBlock("A", sys.A)

	fmt.Println("z:")
	for _, v := range sys.Z {
		fmt.Printf("  %s\n", formatEntry(v))
	}
}

func printBlock(name string, block [][]complex128) {
	fmt.Printf("%s (%dx%d):\n", name, len(block), cols(block))
	for _, row := range block {
		fmt.Print(" ")
		for _, v := range row {
			fmt.Printf(" %12s", formatEntry(v))
		}
		fmt.Println()
	}
}

func cols(block [][]complex128) int {
	if len(block) == 0 {
		return 0
	}
	return len(block[0])
}

func formatEntry(v complex128) string {
	if imag(v) == 0 {
		return fmt.Sprintf("%g", real(v))
	}
	return fmt.Sprintf("%g%+gj", real(v), imag(v))
}
