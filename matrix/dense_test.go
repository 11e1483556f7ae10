package matrix_test

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gridax/matrix"
)

// TestNewDense_Errors verifies shape validation.
func TestNewDense_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 2},
		{"ZeroCols", 2, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewDense(tc.rows, tc.cols)
			if !errors.Is(err, matrix.ErrBadShape) {
				t.Errorf("NewDense(%d,%d) error = %v; want ErrBadShape", tc.rows, tc.cols, err)
			}
		})
	}
}

// TestColumnMajorLayout pins the storage order: (i,j) at Data[i + j*LDim].
func TestColumnMajorLayout(t *testing.T) {
	d, err := matrix.NewDense(2, 3)
	if err != nil {
		t.Fatalf("NewDense error: %v", err)
	}
	if d.LDim() != 2 {
		t.Fatalf("LDim = %d; want 2", d.LDim())
	}
	v := 1.0
	for j := 0; j < 3; j++ {
		for i := 0; i < 2; i++ {
			if err = d.Set(i, j, v); err != nil {
				t.Fatalf("Set(%d,%d) error: %v", i, j, err)
			}
			v++
		}
	}
	want := []float64{1, 2, 3, 4, 5, 6} // columns appended in order
	data := d.Data()
	for k := range want {
		if data[k] != want[k] {
			t.Errorf("Data[%d] = %g; want %g", k, data[k], want[k])
		}
	}
	got, err := d.At(1, 2)
	if err != nil || got != 6 {
		t.Errorf("At(1,2) = %g, %v; want 6", got, err)
	}
}

// TestAtSet_Bounds verifies index validation on both accessors.
func TestAtSet_Bounds(t *testing.T) {
	d, _ := matrix.NewDense(2, 2)
	bad := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}}
	for _, ij := range bad {
		if _, err := d.At(ij[0], ij[1]); !errors.Is(err, matrix.ErrOutOfRange) {
			t.Errorf("At(%d,%d) error = %v; want ErrOutOfRange", ij[0], ij[1], err)
		}
		if err := d.Set(ij[0], ij[1], 1); !errors.Is(err, matrix.ErrOutOfRange) {
			t.Errorf("Set(%d,%d) error = %v; want ErrOutOfRange", ij[0], ij[1], err)
		}
	}
}

// TestCloneEqualFill covers value helpers and deep-copy independence.
func TestCloneEqualFill(t *testing.T) {
	d, _ := matrix.NewDense(3, 2)
	d.Fill(2.5)
	cp := d.Clone()
	if !d.Equal(cp) {
		t.Fatal("clone not equal to original")
	}
	_ = cp.Set(0, 0, -1)
	if d.Equal(cp) {
		t.Fatal("mutating clone affected original equality")
	}
	d.Zero()
	if v, _ := d.At(2, 1); v != 0 {
		t.Errorf("Zero left entry = %g; want 0", v)
	}
	if d.Equal(nil) {
		t.Error("Equal(nil) = true; want false")
	}
}

// TestGonumRoundTrip verifies FromGonum/Gonum preserve values across the
// row-major/column-major boundary.
func TestGonumRoundTrip(t *testing.T) {
	src := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	d, err := matrix.FromGonum(src)
	if err != nil {
		t.Fatalf("FromGonum error: %v", err)
	}
	if got, _ := d.At(1, 0); got != 4 {
		t.Errorf("At(1,0) = %g; want 4", got)
	}
	back := d.Gonum()
	if !mat.Equal(src, back) {
		t.Errorf("round trip mismatch:\nsrc:\n%v\nback:\n%v", mat.Formatted(src), mat.Formatted(back))
	}
}
