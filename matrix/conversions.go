package matrix

import "gonum.org/v1/gonum/mat"

// FromGonum copies a gonum matrix into a new column-major Dense.
// Returns ErrBadShape if src has an empty dimension.
// Complexity: O(rows·cols).
func FromGonum(src mat.Matrix) (*Dense, error) {
	r, c := src.Dims()
	d, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for j := 0; j < c; j++ {
		col := d.data[j*r : (j+1)*r]
		for i := 0; i < r; i++ {
			col[i] = src.At(i, j)
		}
	}
	return d, nil
}

// Gonum copies the matrix into a new row-major gonum mat.Dense.
// Complexity: O(rows·cols).
func (d *Dense) Gonum() *mat.Dense {
	out := mat.NewDense(d.rows, d.cols, nil)
	for j := 0; j < d.cols; j++ {
		col := d.data[j*d.rows : (j+1)*d.rows]
		for i := 0; i < d.rows; i++ {
			out.Set(i, j, col[i])
		}
	}
	return out
}
