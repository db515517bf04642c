package element_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phasornet/nodal/pkg/element"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "R", element.Resistor.String())
	assert.Equal(t, "C", element.Capacitor.String())
	assert.Equal(t, "L", element.Inductor.String())
	assert.Equal(t, "V", element.VoltageSource.String())
	assert.Equal(t, "I", element.CurrentSource.String())
}

func TestKindPassive(t *testing.T) {
	assert.True(t, element.Resistor.Passive())
	assert.True(t, element.Capacitor.Passive())
	assert.True(t, element.Inductor.Passive())
	assert.False(t, element.VoltageSource.Passive())
	assert.False(t, element.CurrentSource.Passive())
}

func TestConstructors(t *testing.T) {
	r := element.NewResistor("R1", 1, 2, 1000)
	assert.Equal(t, element.Resistor, r.Kind)
	assert.Equal(t, "R1", r.Name)
	assert.Equal(t, 1, r.NodeA)
	assert.Equal(t, 2, r.NodeB)
	assert.Equal(t, 1000.0, r.Value)

	v := element.NewVoltageSource("V1", 1, 0, -5)
	assert.Equal(t, element.VoltageSource, v.Kind)
	assert.Equal(t, -5.0, v.Value)
}

func TestValidateRejectsDegeneratePassives(t *testing.T) {
	cases := []element.Element{
		element.NewResistor("R1", 1, 0, 0),
		element.NewResistor("R2", 1, 0, -10),
		element.NewCapacitor("C1", 1, 0, math.NaN()),
		element.NewInductor("L1", 1, 0, math.Inf(1)),
	}
	for _, e := range cases {
		err := e.Validate()
		require.Error(t, err, "element %s", e.Name)

		var degenerate *element.DegenerateElementError
		require.ErrorAs(t, err, &degenerate, "element %s", e.Name)
		assert.Equal(t, e.Name, degenerate.Element.Name)
	}
}

func TestValidateAllowsAnyFiniteSourceValue(t *testing.T) {
	assert.NoError(t, element.NewVoltageSource("V1", 1, 0, 0).Validate())
	assert.NoError(t, element.NewCurrentSource("I1", 1, 0, -2.5).Validate())
	assert.Error(t, element.NewVoltageSource("V2", 1, 0, math.Inf(-1)).Validate())
}

func TestValidateRejectsBadTerminals(t *testing.T) {
	assert.Error(t, element.NewResistor("R1", 2, 2, 100).Validate())
	assert.Error(t, element.NewResistor("R2", -1, 0, 100).Validate())
}
