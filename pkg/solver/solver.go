// Package solver is a dense complex linear-system front end over the
// sparse LU factorization library. It knows nothing about circuits: it
// takes a square A and a right-hand side z and returns x with A·x = z,
// or a classified failure.
package solver

import (
	"fmt"

	"github.com/edp1096/sparse"

	"github.com/phasornet/nodal/internal/consts"
)

// Solve factors A with partial pivoting and back-substitutes z. Entries
// are complex throughout; a purely real system simply carries zero
// imaginary parts. A pivot whose magnitude falls to PivotAbsTol or below
// is treated as singular rather than divided by.
func Solve(a [][]complex128, z []complex128) ([]complex128, error) {
	n := len(a)
	for _, row := range a {
		if len(row) != n {
			return nil, &DimensionMismatchError{Rows: n, Cols: len(row), RHS: len(z)}
		}
	}
	if len(z) != n {
		return nil, &DimensionMismatchError{Rows: n, Cols: n, RHS: len(z)}
	}
	if n == 0 {
		return nil, &DimensionMismatchError{}
	}

	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 true,
		SeparatedComplexVectors: true,
		Expandable:              true,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
	}

	mat, err := sparse.Create(int64(n), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %w", err)
	}
	defer mat.Destroy()

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			e := mat.GetElement(int64(i+1), int64(j+1))
			e.Real = real(a[i][j])
			e.Imag = imag(a[i][j])
		}
	}

	if err := mat.OrderAndFactor(nil, 0.0, consts.PivotAbsTol, true); err != nil {
		return nil, &SingularSystemError{
			Step:   int(mat.SingularRow),
			Causes: DefaultCauses,
		}
	}

	// 1-based vectors, matching the library's indexing.
	rhs := make([]float64, n+1)
	irhs := make([]float64, n+1)
	for i, v := range z {
		rhs[i+1] = real(v)
		irhs[i+1] = imag(v)
	}

	solReal, solImag, err := mat.SolveComplex(rhs, irhs)
	if err != nil {
		return nil, fmt.Errorf("back substitution: %w", err)
	}

	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(solReal[i+1], solImag[i+1])
	}
	return x, nil
}
