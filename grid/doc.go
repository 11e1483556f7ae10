// Package grid models a fixed 2-D arrangement of cooperating processes and
// the cyclic (wrap-around) ownership rule that distributes matrix indices
// over it.
//
// What:
//
//   - Grid is an immutable r×c layout of P = r·c ranks, each addressed either
//     by a linear rank or by (row, col) coordinates.
//   - Ranks are ordered column-major: rank = row + r·col, so walking ranks
//     0..P-1 sweeps each grid column top to bottom before moving right.
//   - Shift and LocalLength implement the cyclic-distribution index math:
//     which global indices a coordinate owns, and how many fall in a range.
//
// Why:
//
//   - Distributed dense matrices assign global row i to grid row
//     (align+i) mod r; every pack/unpack path needs the same arithmetic on
//     both the sending and the receiving side.
//   - Keeping the math in one tiny package guarantees the two sides agree.
//
// Complexity:
//
//   - All operations are O(1) integer arithmetic; Grid holds no per-rank
//     state.
//
// Errors:
//
//   - ErrBadShape: a grid dimension is < 1.
//   - ErrRankRange: a rank or coordinate lies outside the grid.
package grid
