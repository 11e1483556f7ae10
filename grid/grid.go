package grid

import "errors"

// Sentinel errors for grid construction and coordinate lookups.
var (
	// ErrBadShape indicates a grid dimension smaller than one.
	ErrBadShape = errors.New("grid: dimensions must be >= 1")
	// ErrRankRange indicates a rank or coordinate outside the grid.
	ErrRankRange = errors.New("grid: rank or coordinate out of range")
)

// Grid is an immutable r×c process arrangement. The zero value is unusable;
// construct with New.
type Grid struct {
	height int // r: number of process rows
	width  int // c: number of process columns
}

// New constructs a rows×cols Grid.
// Returns ErrBadShape if either dimension is smaller than one.
// Complexity: O(1).
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadShape
	}
	return &Grid{height: rows, width: cols}, nil
}

// Height returns the number of process rows (r).
func (g *Grid) Height() int { return g.height }

// Width returns the number of process columns (c).
func (g *Grid) Width() int { return g.width }

// Size returns the total number of ranks, P = r·c.
func (g *Grid) Size() int { return g.height * g.width }

// RankOf maps (row, col) to the column-major linear rank row + r·col.
// Returns ErrRankRange if the coordinate lies outside the grid.
// Complexity: O(1).
func (g *Grid) RankOf(row, col int) (int, error) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return 0, ErrRankRange
	}
	return row + g.height*col, nil
}

// RowOf returns the grid row of a linear rank.
// Returns ErrRankRange if rank is outside [0, Size).
// Complexity: O(1).
func (g *Grid) RowOf(rank int) (int, error) {
	if rank < 0 || rank >= g.Size() {
		return 0, ErrRankRange
	}
	return rank % g.height, nil
}

// ColOf returns the grid column of a linear rank.
// Returns ErrRankRange if rank is outside [0, Size).
// Complexity: O(1).
func (g *Grid) ColOf(rank int) (int, error) {
	if rank < 0 || rank >= g.Size() {
		return 0, ErrRankRange
	}
	return rank / g.height, nil
}
