package element

import (
	"fmt"
	"math"
)

// Admittance returns the complex admittance of a passive element at the
// given frequency. DC is freqHz == 0: a capacitor is an open circuit
// (admittance 0) and an inductor is rejected with ErrNoDCAdmittance, since
// an ideal short cannot be expressed as a finite admittance.
func Admittance(e Element, freqHz float64) (complex128, error) {
	if freqHz < 0 {
		return 0, &InvalidFrequencyError{FrequencyHz: freqHz}
	}
	if !e.Kind.Passive() {
		return 0, fmt.Errorf("element %s: sources have no admittance", e.Name)
	}
	if err := e.Validate(); err != nil {
		return 0, err
	}

	switch e.Kind {
	case Resistor:
		return complex(1.0/e.Value, 0), nil

	case Capacitor:
		if freqHz == 0 {
			return 0, nil
		}
		omega := 2 * math.Pi * freqHz
		return complex(0, omega*e.Value), nil // jωC

	case Inductor:
		if freqHz == 0 {
			return 0, fmt.Errorf("element %s: %w", e.Name, ErrNoDCAdmittance)
		}
		omega := 2 * math.Pi * freqHz
		return complex(0, -1.0/(omega*e.Value)), nil // 1/(jωL)

	default:
		return 0, fmt.Errorf("element %s: unknown kind", e.Name)
	}
}
