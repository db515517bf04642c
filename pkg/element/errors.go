package element

import (
	"errors"
	"fmt"
)

// ErrNoDCAdmittance marks an inductor at DC: an ideal short has no finite
// admittance, so the assembler gives it an auxiliary branch row instead.
var ErrNoDCAdmittance = errors.New("inductor at DC has no finite admittance")

// DegenerateElementError reports a passive element whose value makes its
// admittance undefined (zero, negative or non-finite).
type DegenerateElementError struct {
	Element Element
	Reason  string
}

func (e *DegenerateElementError) Error() string {
	return fmt.Sprintf("degenerate element %s (%s): %s (value %g)",
		e.Element.Name, e.Element.Kind, e.Reason, e.Element.Value)
}

// InvalidFrequencyError reports a negative analysis frequency.
type InvalidFrequencyError struct {
	FrequencyHz float64
}

func (e *InvalidFrequencyError) Error() string {
	return fmt.Sprintf("invalid frequency %g Hz: must be >= 0", e.FrequencyHz)
}
