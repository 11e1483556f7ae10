package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors for dense storage.
var (
	// ErrBadShape indicates a requested dimension smaller than one.
	ErrBadShape = errors.New("matrix: dimensions must be >= 1")
	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// Dense is a column-major rows×cols matrix of float64 values. Entry (i,j)
// lives at data[i + j*rows]; the leading dimension equals the row count.
type Dense struct {
	rows, cols int
	data       []float64 // flat backing storage, length rows*cols
}

// NewDense creates a rows×cols Dense initialized to zeros.
// Returns ErrBadShape if either dimension is smaller than one.
// Complexity: O(rows·cols).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadShape
	}
	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.cols }

// LDim returns the leading dimension: the flat-index distance between
// horizontally adjacent entries. Always equal to Rows for this storage.
func (d *Dense) LDim() int { return d.rows }

// Data returns the live column-major backing slice. Mutations through the
// slice are visible to the matrix and vice versa.
func (d *Dense) Data() []float64 { return d.data }

// indexOf computes the flat index of (row, col) or reports ErrOutOfRange.
// Complexity: O(1).
func (d *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= d.rows || col < 0 || col >= d.cols {
		return 0, fmt.Errorf("dense (%d,%d) of %dx%d: %w", row, col, d.rows, d.cols, ErrOutOfRange)
	}
	return row + col*d.rows, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (d *Dense) At(row, col int) (float64, error) {
	idx, err := d.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return d.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (d *Dense) Set(row, col int, v float64) error {
	idx, err := d.indexOf(row, col)
	if err != nil {
		return err
	}
	d.data[idx] = v
	return nil
}

// Fill assigns v to every entry.
// Complexity: O(rows·cols).
func (d *Dense) Fill(v float64) {
	for i := range d.data {
		d.data[i] = v
	}
}

// Zero resets every entry to zero.
// Complexity: O(rows·cols).
func (d *Dense) Zero() { d.Fill(0) }

// Clone returns a deep copy.
// Complexity: O(rows·cols).
func (d *Dense) Clone() *Dense {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)
	return &Dense{rows: d.rows, cols: d.cols, data: cp}
}

// Equal reports whether two matrices have identical shape and bit-identical
// entries.
// Complexity: O(rows·cols).
func (d *Dense) Equal(o *Dense) bool {
	if o == nil || d.rows != o.rows || d.cols != o.cols {
		return false
	}
	for i := range d.data {
		if d.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer for debugging, one bracketed row per line.
// Complexity: O(rows·cols).
func (d *Dense) String() string {
	s := ""
	for i := 0; i < d.rows; i++ {
		s += "["
		for j := 0; j < d.cols; j++ {
			s += fmt.Sprintf("%g", d.data[i+j*d.rows])
			if j < d.cols-1 {
				s += ", "
			}
		}
		s += "]\n"
	}
	return s
}
