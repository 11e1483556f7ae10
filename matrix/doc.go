// Package matrix provides the local dense storage used on each rank:
// a column-major float64 matrix with an explicit leading dimension.
//
// What:
//
//   - Dense stores rows×cols float64 values in one flat slice, column-major,
//     with LDim() == Rows(): entry (i,j) lives at Data()[i + j*LDim()].
//   - At/Set are bounds-checked and return sentinel errors; Data exposes the
//     live backing slice for stride-based packing and unpacking.
//   - FromGonum and Dense.Gonum convert to and from gonum's row-major
//     mat.Dense for callers already working in that ecosystem.
//
// Why:
//
//   - Distributed-matrix wire formats ship submatrix entries in column-major
//     order; keeping local storage column-major makes pack/unpack a pair of
//     nested stride loops with no transposition.
//
// Complexity:
//
//   - At/Set/LDim are O(1); Fill/Zero/Clone/Equal and the gonum conversions
//     are O(rows·cols).
//
// Errors:
//
//   - ErrBadShape: a requested dimension is < 1.
//   - ErrOutOfRange: a row or column index is outside the matrix.
package matrix
