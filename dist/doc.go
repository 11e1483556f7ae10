// Package dist provides each rank's handle to a dense matrix distributed
// cyclically over a 2-D process grid.
//
// What:
//
//   - Matrix describes one Height×Width global matrix: global row i belongs
//     to grid row (ColAlign+i) mod r and global column j to grid column
//     (RowAlign+j) mod c.
//   - Every rank holds its own Matrix value for the same global object,
//     storing only the entries it owns in a column-major local buffer with
//     LDim == LocalHeight.
//   - At/Set address global coordinates but succeed only on the owning rank;
//     they exist for harnesses and local inspection, not for communication.
//
// Why:
//
//   - The one-sided update/read protocol needs exactly this surface from its
//     target: global shape, distribution alignments, this rank's shifts, and
//     raw access to the local buffer for strided accumulation.
//
// Complexity:
//
//   - Construction is O(LocalHeight·LocalWidth); all accessors are O(1).
//
// Errors:
//
//   - ErrBadShape: a global dimension is < 1.
//   - ErrBadAlign: an alignment is not a valid grid coordinate.
//   - ErrNotOwner: At/Set addressed an entry owned by another rank.
//   - ErrOutOfRange: a global index is outside the matrix.
package dist
