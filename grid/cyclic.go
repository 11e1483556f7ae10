package grid

// Shift returns the first global index owned by the coordinate at position
// rank under a cyclic distribution of period stride aligned at align: the
// owner of global index k is (align+k) mod stride, so rank's first index is
// (rank-align+stride) mod stride.
// Both rank and align must lie in [0, stride); stride must be positive.
// Complexity: O(1).
func Shift(rank, align, stride int) int {
	return (rank - align + stride) % stride
}

// LocalLength counts the global indices in [0, n) congruent to shift modulo
// stride, i.e. how many of the first n entries the coordinate with that shift
// owns. n may be zero or smaller than shift, in which case the count is zero.
// Complexity: O(1).
func LocalLength(n, shift, stride int) int {
	if n <= shift {
		return 0
	}
	return (n-shift-1)/stride + 1
}
