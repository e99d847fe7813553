// Package distmatrix provides a compact store for a symmetric,
// zero-diagonal pairwise distance matrix.
//
// Storage: N(N-1)/2 float64 values in row-major lower-triangular order; the
// diagonal (always zero) and the redundant upper triangle are never
// allocated. This halves the memory of a dense N×N store, which matters
// because every engine in this module keeps D resident for the whole run.
//
// Addressing: for i<j, the pair (i,j) lives at
//
//	idx(i,j) = i*N - i*(i+1)/2 + (j-i-1)
//
// derived by counting, for each completed row r<i, the (N-1-r) entries it
// contributes, then adding the offset within row i.
package distmatrix
