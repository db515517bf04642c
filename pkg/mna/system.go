// Package mna assembles the modified-nodal-analysis system for a linear
// circuit: node-voltage unknowns for every non-reference node plus one
// branch-current unknown per ideal voltage source (and, at DC, per
// inductor, which is treated as a zero-volt source rather than as a
// large finite admittance).
package mna

// System is the assembled linear system A·x = Z together with the four
// sub-blocks it was concatenated from, kept for diagnostics. All entries
// are complex; at DC every imaginary part is zero. It is rebuilt from
// scratch on every assembly and never reused across solves.
type System struct {
	NumNodes    int // node-voltage unknowns (NodeCount - 1)
	NumSources  int // declared voltage sources
	NumBranches int // NumSources plus DC-promoted inductors

	G [][]complex128 // NumNodes x NumNodes conductance block
	B [][]complex128 // NumNodes x NumBranches incidence block
	C [][]complex128 // NumBranches x NumNodes, transpose of B
	D [][]complex128 // NumBranches x NumBranches, zero (independent sources only)

	A [][]complex128 // (NumNodes+NumBranches) square concatenation
	Z []complex128   // current injections followed by branch voltages

	BranchNames []string // element name per branch row, in row order
}

// Dim returns the order of A.
func (s *System) Dim() int { return s.NumNodes + s.NumBranches }

func newSystem(numNodes, numSources, numBranches int) *System {
	s := &System{
		NumNodes:    numNodes,
		NumSources:  numSources,
		NumBranches: numBranches,
		G:           zeroMatrix(numNodes, numNodes),
		B:           zeroMatrix(numNodes, numBranches),
		C:           zeroMatrix(numBranches, numNodes),
		D:           zeroMatrix(numBranches, numBranches),
		BranchNames: make([]string, 0, numBranches),
	}
	s.Z = make([]complex128, numNodes+numBranches)
	return s
}

func zeroMatrix(rows, cols int) [][]complex128 {
	m := make([][]complex128, rows)
	for i := range m {
		m[i] = make([]complex128, cols)
	}
	return m
}

// stampConductance adds admittance y between compacted node indices i and
// j. Terms touching the reference node (index circuit.Gnd) are omitted,
// which is equivalent to fixing its potential at zero.
func (s *System) stampConductance(i, j int, y complex128) {
	if i >= 0 {
		s.G[i][i] += y
		if j >= 0 {
			s.G[i][j] -= y
		}
	}
	if j >= 0 {
		s.G[j][j] += y
		if i >= 0 {
			s.G[j][i] -= y
		}
	}
}

// stampBranch wires branch row k to the compacted node indices of its
// positive and negative terminals, filling B and its transpose C.
func (s *System) stampBranch(plus, minus, k int) {
	if plus >= 0 {
		s.B[plus][k] += 1
		s.C[k][plus] += 1
	}
	if minus >= 0 {
		s.B[minus][k] -= 1
		s.C[k][minus] -= 1
	}
}

// stampCurrent injects a current source: added at the positive terminal,
// subtracted at the negative one.
func (s *System) stampCurrent(plus, minus int, amps float64) {
	if plus >= 0 {
		s.Z[plus] += complex(amps, 0)
	}
	if minus >= 0 {
		s.Z[minus] -= complex(amps, 0)
	}
}

// concatenate builds A = [[G, B], [C, D]].
func (s *System) concatenate() {
	n, nb := s.NumNodes, s.NumBranches
	s.A = zeroMatrix(n+nb, n+nb)
	for i := 0; i < n; i++ {
		copy(s.A[i][:n], s.G[i])
		copy(s.A[i][n:], s.B[i])
	}
	for k := 0; k < nb; k++ {
		copy(s.A[n+k][:n], s.C[k])
		copy(s.A[n+k][n:], s.D[k])
	}
}
