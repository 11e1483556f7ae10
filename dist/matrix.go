package dist

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridax/grid"
)

// Sentinel errors for distributed-matrix construction and access.
var (
	// ErrBadShape indicates a global dimension smaller than one.
	ErrBadShape = errors.New("dist: global dimensions must be >= 1")
	// ErrBadAlign indicates an alignment outside the grid.
	ErrBadAlign = errors.New("dist: alignment out of grid range")
	// ErrNotOwner indicates a global entry owned by a different rank.
	ErrNotOwner = errors.New("dist: entry not owned by this rank")
	// ErrOutOfRange indicates a global index outside the matrix.
	ErrOutOfRange = errors.New("dist: global index out of range")
)

// Matrix is one rank's handle to a cyclically distributed global matrix.
// The handle is immutable in shape and distribution; only the local buffer's
// contents change.
type Matrix struct {
	g        *grid.Grid
	row, col int // this rank's grid coordinates
	rank     int

	height, width      int // global shape
	colAlign, rowAlign int // grid coordinates owning global row/col 0
	colShift, rowShift int // first global row/col owned by this rank
	localH, localW     int

	data []float64 // column-major local buffer, LDim == localH
}

// NewMatrix constructs the handle held by grid coordinate (row, col) for a
// height×width global matrix with the given alignments.
// Returns ErrBadShape for non-positive global dimensions, ErrBadAlign for an
// alignment outside the grid, and grid.ErrRankRange for a bad coordinate.
// Complexity: O(LocalHeight·LocalWidth).
func NewMatrix(g *grid.Grid, row, col, height, width, colAlign, rowAlign int) (*Matrix, error) {
	rank, err := g.RankOf(row, col)
	if err != nil {
		return nil, err
	}
	if height < 1 || width < 1 {
		return nil, ErrBadShape
	}
	if colAlign < 0 || colAlign >= g.Height() || rowAlign < 0 || rowAlign >= g.Width() {
		return nil, ErrBadAlign
	}
	m := &Matrix{
		g: g, row: row, col: col, rank: rank,
		height: height, width: width,
		colAlign: colAlign, rowAlign: rowAlign,
		colShift: grid.Shift(row, colAlign, g.Height()),
		rowShift: grid.Shift(col, rowAlign, g.Width()),
	}
	m.localH = grid.LocalLength(height, m.colShift, g.Height())
	m.localW = grid.LocalLength(width, m.rowShift, g.Width())
	m.data = make([]float64, m.localH*m.localW)
	return m, nil
}

// Grid returns the process grid the matrix is distributed over.
func (m *Matrix) Grid() *grid.Grid { return m.g }

// Row returns this rank's grid row.
func (m *Matrix) Row() int { return m.row }

// Col returns this rank's grid column.
func (m *Matrix) Col() int { return m.col }

// Rank returns this rank's column-major linear rank.
func (m *Matrix) Rank() int { return m.rank }

// Height returns the global row count.
func (m *Matrix) Height() int { return m.height }

// Width returns the global column count.
func (m *Matrix) Width() int { return m.width }

// ColAlign returns the grid row owning global row 0.
func (m *Matrix) ColAlign() int { return m.colAlign }

// RowAlign returns the grid column owning global column 0.
func (m *Matrix) RowAlign() int { return m.rowAlign }

// ColShift returns the first global row owned by this rank.
func (m *Matrix) ColShift() int { return m.colShift }

// RowShift returns the first global column owned by this rank.
func (m *Matrix) RowShift() int { return m.rowShift }

// LocalHeight returns the number of global rows stored locally.
func (m *Matrix) LocalHeight() int { return m.localH }

// LocalWidth returns the number of global columns stored locally.
func (m *Matrix) LocalWidth() int { return m.localW }

// LocalBuffer returns the live column-major local buffer. Entry (s,t) of the
// local view lives at LocalBuffer()[s + t*LocalHeight()] and holds global
// entry (ColShift+s·r, RowShift+t·c).
func (m *Matrix) LocalBuffer() []float64 { return m.data }

// Owner returns the grid coordinate owning global entry (i, j).
// Complexity: O(1).
func (m *Matrix) Owner(i, j int) (row, col int, err error) {
	if i < 0 || i >= m.height || j < 0 || j >= m.width {
		return 0, 0, fmt.Errorf("dist (%d,%d) of %dx%d: %w", i, j, m.height, m.width, ErrOutOfRange)
	}
	return (m.colAlign + i) % m.g.Height(), (m.rowAlign + j) % m.g.Width(), nil
}

// localIndex maps a locally-owned global (i, j) to its flat buffer index.
func (m *Matrix) localIndex(i, j int) (int, error) {
	ownRow, ownCol, err := m.Owner(i, j)
	if err != nil {
		return 0, err
	}
	if ownRow != m.row || ownCol != m.col {
		return 0, fmt.Errorf("dist (%d,%d) owned by (%d,%d): %w", i, j, ownRow, ownCol, ErrNotOwner)
	}
	s := (i - m.colShift) / m.g.Height()
	t := (j - m.rowShift) / m.g.Width()
	return s + t*m.localH, nil
}

// At retrieves global entry (i, j); valid only on the owning rank.
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	idx, err := m.localIndex(i, j)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns global entry (i, j); valid only on the owning rank.
// Complexity: O(1).
func (m *Matrix) Set(i, j int, v float64) error {
	idx, err := m.localIndex(i, j)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}
