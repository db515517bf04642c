package analysis_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phasornet/nodal/pkg/analysis"
	"github.com/phasornet/nodal/pkg/circuit"
	"github.com/phasornet/nodal/pkg/element"
	"github.com/phasornet/nodal/pkg/solver"
)

func divider() *circuit.Circuit {
	ckt := circuit.New("divider", 3)
	ckt.AddElement(element.NewVoltageSource("V1", 1, 0, 10))
	ckt.AddElement(element.NewResistor("R1", 1, 2, 1000))
	ckt.AddElement(element.NewResistor("R2", 2, 0, 1000))
	return ckt
}

func TestDividerDC(t *testing.T) {
	res, err := analysis.Analyze(divider())
	require.NoError(t, err)

	assert.Equal(t, complex128(0), res.NodeVoltages[0], "reference node is 0 by definition")
	assert.InDelta(t, 10, real(res.NodeVoltages[1]), 1e-9)
	assert.InDelta(t, 5, real(res.NodeVoltages[2]), 1e-9)
	assert.InDelta(t, -0.005, real(res.SourceCurrents["V1"]), 1e-12)
}

func TestDCResultsArePurelyReal(t *testing.T) {
	ckt := divider()
	ckt.AddElement(element.NewCapacitor("C1", 2, 0, 1e-6))

	res, err := analysis.Analyze(ckt)
	require.NoError(t, err)
	for node, v := range res.NodeVoltages {
		assert.Zero(t, imag(v), "node %d", node)
	}
	for name, i := range res.SourceCurrents {
		assert.Zero(t, imag(i), "source %s", name)
	}
}

func TestRepeatedSolvesAreBitIdentical(t *testing.T) {
	ckt := divider()
	ckt.FrequencyHz = 60
	ckt.AddElement(element.NewCapacitor("C1", 2, 0, 1e-6))

	first, err := analysis.Analyze(ckt)
	require.NoError(t, err)
	second, err := analysis.Analyze(ckt)
	require.NoError(t, err)

	assert.Equal(t, first.NodeVoltages, second.NodeVoltages)
	assert.Equal(t, first.SourceCurrents, second.SourceCurrents)
	assert.Equal(t, first.X, second.X)
}

func TestRelabelingPreservesVoltageDifferences(t *testing.T) {
	base := divider()

	// Same topology with nodes 1 and 2 swapped.
	relabeled := circuit.New("divider-relabeled", 3)
	relabeled.AddElement(element.NewVoltageSource("V1", 2, 0, 10))
	relabeled.AddElement(element.NewResistor("R1", 2, 1, 1000))
	relabeled.AddElement(element.NewResistor("R2", 1, 0, 1000))

	resBase, err := analysis.Analyze(base)
	require.NoError(t, err)
	resRel, err := analysis.Analyze(relabeled)
	require.NoError(t, err)

	diffBase := resBase.NodeVoltages[1] - resBase.NodeVoltages[2]
	diffRel := resRel.NodeVoltages[2] - resRel.NodeVoltages[1]
	assert.InDelta(t, real(diffBase), real(diffRel), 1e-9)
	assert.InDelta(t, imag(diffBase), imag(diffRel), 1e-9)
}

func TestNonZeroReferenceNode(t *testing.T) {
	// Same divider measured against node 2 instead of node 0.
	ckt := divider()
	ckt.ReferenceNode = 2

	res, err := analysis.Analyze(ckt)
	require.NoError(t, err)

	assert.Equal(t, complex128(0), res.NodeVoltages[2])
	assert.InDelta(t, -5, real(res.NodeVoltages[0]), 1e-9)
	assert.InDelta(t, 5, real(res.NodeVoltages[1]), 1e-9)
}

func TestACLowPass(t *testing.T) {
	// RC low-pass: Vout = Vin / (1 + jwRC).
	r, c, f := 1000.0, 1e-6, 1000.0
	ckt := circuit.New("rc", 3)
	ckt.FrequencyHz = f
	ckt.AddElement(element.NewVoltageSource("V1", 1, 0, 1))
	ckt.AddElement(element.NewResistor("R1", 1, 2, r))
	ckt.AddElement(element.NewCapacitor("C1", 2, 0, c))

	res, err := analysis.Analyze(ckt)
	require.NoError(t, err)

	expected := 1 / (1 + complex(0, 2*math.Pi*f*r*c))
	assert.InDelta(t, real(expected), real(res.NodeVoltages[2]), 1e-9)
	assert.InDelta(t, imag(expected), imag(res.NodeVoltages[2]), 1e-9)
}

func TestDCInductorActsAsExactShort(t *testing.T) {
	ckt := circuit.New("rl", 3)
	ckt.AddElement(element.NewVoltageSource("V1", 1, 0, 10))
	ckt.AddElement(element.NewInductor("L1", 1, 2, 10e-3))
	ckt.AddElement(element.NewResistor("R1", 2, 0, 1000))

	res, err := analysis.Analyze(ckt)
	require.NoError(t, err)

	// No large-admittance approximation: node 2 is exactly at 10V.
	assert.InDelta(t, 10, real(res.NodeVoltages[2]), 1e-9)
	assert.InDelta(t, 0.01, real(res.InductorCurrents["L1"]), 1e-12)
	assert.InDelta(t, -0.01, real(res.SourceCurrents["V1"]), 1e-12)
}

func TestFloatingNodeIsSingularWithCause(t *testing.T) {
	ckt := circuit.New("floating", 4)
	ckt.AddElement(element.NewVoltageSource("V1", 1, 0, 10))
	ckt.AddElement(element.NewResistor("R1", 1, 2, 1000))
	ckt.AddElement(element.NewResistor("R2", 2, 0, 1000))
	ckt.AddElement(element.NewCurrentSource("I1", 3, 0, 1e-3))

	_, err := analysis.Analyze(ckt)
	var singular *solver.SingularSystemError
	require.ErrorAs(t, err, &singular)
	require.NotEmpty(t, singular.Causes)
	assert.Contains(t, singular.Causes[0], "no conductive path")
	assert.Contains(t, singular.Causes[0], "3")
}

func TestConflictingParallelSourcesAreSingular(t *testing.T) {
	ckt := circuit.New("conflict", 3)
	ckt.AddElement(element.NewVoltageSource("V1", 1, 0, 10))
	ckt.AddElement(element.NewVoltageSource("V2", 1, 0, 5))
	ckt.AddElement(element.NewResistor("R1", 1, 2, 1000))
	ckt.AddElement(element.NewResistor("R2", 2, 0, 1000))

	_, err := analysis.Analyze(ckt)
	var singular *solver.SingularSystemError
	require.ErrorAs(t, err, &singular)

	joined := ""
	for _, cause := range singular.Causes {
		joined += cause + "\n"
	}
	assert.Contains(t, joined, "V1")
	assert.Contains(t, joined, "V2")
	assert.Contains(t, joined, "same node pair")
}

func TestRunOutcomes(t *testing.T) {
	ok := analysis.Run(divider())
	require.True(t, ok.OK)
	require.NotNil(t, ok.Result)
	assert.Empty(t, ok.Category)

	degenerate := divider()
	degenerate.AddElement(element.NewResistor("Rbad", 1, 2, -1))
	out := analysis.Run(degenerate)
	assert.False(t, out.OK)
	assert.Nil(t, out.Result, "no partial results on failure")
	assert.Equal(t, analysis.CategoryDegenerateElement, out.Category)

	negFreq := divider()
	negFreq.FrequencyHz = -1
	out = analysis.Run(negFreq)
	assert.Equal(t, analysis.CategoryInvalidFrequency, out.Category)

	floating := circuit.New("floating", 3)
	floating.AddElement(element.NewVoltageSource("V1", 1, 0, 1))
	floating.AddElement(element.NewCurrentSource("I1", 2, 0, 1))
	floating.AddElement(element.NewResistor("R1", 1, 0, 100))
	out = analysis.Run(floating)
	assert.Equal(t, analysis.CategorySingularSystem, out.Category)
	assert.NotEmpty(t, out.Message)
}

func TestConcurrentAnalyzesDoNotInterfere(t *testing.T) {
	dcWant, err := analysis.Analyze(divider())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := analysis.Analyze(divider())
			assert.NoError(t, err)
			assert.Equal(t, dcWant.NodeVoltages, res.NodeVoltages)
		}()
	}
	wg.Wait()
}
