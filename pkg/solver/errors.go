package solver

import (
	"fmt"
	"strings"
)

// DimensionMismatchError reports an inconsistency between A and z. It
// indicates an assembly bug, not a circuit-design error.
type DimensionMismatchError struct {
	Rows int
	Cols int
	RHS  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: A is %dx%d, z has %d rows", e.Rows, e.Cols, e.RHS)
}

// DefaultCauses lists the circuit-level conditions that typically make an
// MNA system singular. Callers that know the circuit replace these with
// targeted findings.
var DefaultCauses = []string{
	"a node has no conductive path to the reference node",
	"a closed loop consists entirely of ideal voltage sources",
	"two ideal voltage sources are connected between the same node pair",
}

// SingularSystemError reports that the system has no unique solution,
// together with likely circuit-level causes.
type SingularSystemError struct {
	Step   int // 1-based elimination step where the pivot degenerated, 0 if unknown
	Causes []string
}

func (e *SingularSystemError) Error() string {
	var b strings.Builder
	b.WriteString("singular system: no unique solution")
	if e.Step > 0 {
		fmt.Fprintf(&b, " (pivot degenerated at step %d)", e.Step)
	}
	if len(e.Causes) > 0 {
		b.WriteString("; likely causes: ")
		b.WriteString(strings.Join(e.Causes, "; "))
	}
	return b.String()
}
