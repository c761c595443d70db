// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvnum/matrix"
)

// Sentinel errors for elimination. Match them with errors.Is; use errors.As
// with *SingularMatrixError / *DimensionMismatchError to read the details.
var (
	// ErrSingular is returned when a pivot is zero (within Tolerance) and the
	// pivoting policy cannot find a usable row to exchange with.
	ErrSingular = errors.New("gauss: singular matrix")

	// ErrDimensionMismatch is returned when the coefficient matrix is not square
	// or the right-hand side length differs from its order.
	// It is the matrix package sentinel, so both names match.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gauss: invalid option supplied")
)

// SingularMatrixError reports the position of the pivot that could not be used.
// Row and Col are indices into the (possibly row-exchanged) working matrix;
// Pivot is the offending value.
type SingularMatrixError struct {
	Op       string
	Row, Col int
	Pivot    float64
}

func (e *SingularMatrixError) Error() string {
	return fmt.Sprintf("gauss: %s: unusable pivot %g at row %d, column %d: singular matrix",
		e.Op, e.Pivot, e.Row, e.Col)
}

// Unwrap lets errors.Is(err, ErrSingular) succeed.
func (e *SingularMatrixError) Unwrap() error { return ErrSingular }

// DimensionMismatchError describes a system whose shapes do not line up.
type DimensionMismatchError struct {
	Op     string
	Rows   int // rows of the coefficient matrix
	Cols   int // columns of the coefficient matrix
	VecLen int // length of the right-hand side
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("gauss: %s: coefficient matrix is %dx%d, right-hand side has %d entries: %v",
		e.Op, e.Rows, e.Cols, e.VecLen, matrix.ErrDimensionMismatch)
}

// Unwrap lets errors.Is(err, ErrDimensionMismatch) succeed.
func (e *DimensionMismatchError) Unwrap() error { return matrix.ErrDimensionMismatch }
