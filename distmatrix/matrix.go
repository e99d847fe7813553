package distmatrix

import "math"

// symTol is the structural tolerance used when validating symmetry and the
// zero diagonal at construction time. Independent from any engine's
// improvement epsilon.
const symTol = 1e-9

// Matrix is a compact, symmetric zero-diagonal distance store; Set is its
// only mutator. It holds n*(n-1)/2 float64 values; At(i,i) is always 0
// without storage.
type Matrix struct {
	n    int       // number of points
	data []float64 // packed lower-triangular entries, length n*(n-1)/2
}

// New allocates a Matrix of size n with all off-diagonal entries zero.
// Stage 1 (Validate): n must be >= 2.
// Stage 2 (Prepare): allocate the packed backing slice.
func New(n int) (*Matrix, error) {
	if n < 2 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix{n: n, data: make([]float64, n*(n-1)/2)}, nil
}

// NewFromDense validates and packs a full N×N dense slice into a Matrix.
// Stage 1 (Validate): shape square, diagonal ~0, symmetric within symTol,
// non-negative, finite.
// Stage 2 (Pack): copy the lower triangle into the compact store.
//
// Complexity: O(N^2) time, O(N^2) transient + O(N^2/2) resident memory.
func NewFromDense(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	if n < 2 {
		return nil, ErrInvalidDimensions
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, ErrDimensionMismatch
		}
	}

	// Diagonal must be zero (within tolerance) and finite.
	for i = 0; i < n; i++ {
		v := rows[i][i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNaNInf
		}
		if math.Abs(v) > symTol {
			return nil, ErrNonZeroDiagonal
		}
	}

	m := &Matrix{n: n, data: make([]float64, n*(n-1)/2)}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a := rows[i][j]
			b := rows[j][i]
			if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
				return nil, ErrNaNInf
			}
			if math.Abs(a-b) > symTol {
				return nil, ErrAsymmetry
			}
			if a < 0 {
				return nil, ErrNegativeDistance
			}
			m.data[m.index(i, j)] = a
		}
	}

	return m, nil
}

// index computes the packed offset for i<j. Callers must pre-normalize
// (i,j) so i<j holds; At() does this normalization for the public surface.
//
// Complexity: O(1).
func (m *Matrix) index(i, j int) int {
	// Row i contributes (n-1-i) entries before row i+1 starts; within row i
	// the offset to column j is (j-i-1).
	return i*m.n - i*(i+1)/2 + (j - i - 1)
}

// N returns the number of points.
func (m *Matrix) N() int { return m.n }

// At returns D(i,j), 0 when i==j, and ErrOutOfRange for out-of-bounds
// indices.
//
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrOutOfRange
	}
	if i == j {
		return 0, nil
	}
	if i > j {
		i, j = j, i
	}

	return m.data[m.index(i, j)], nil
}

// Set writes D(i,j) = D(j,i) = v. Diagonal writes (i==j) are a no-op when
// v==0 and an error otherwise, preserving the zero-diagonal invariant.
//
// Complexity: O(1).
func (m *Matrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return ErrOutOfRange
	}
	if i == j {
		if v != 0 {
			return ErrNonZeroDiagonal
		}

		return nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	if v < 0 {
		return ErrNegativeDistance
	}
	if i > j {
		i, j = j, i
	}
	m.data[m.index(i, j)] = v

	return nil
}

// SubDist extracts the sub-matrix induced by idx, preserving idx's order:
// the returned Matrix's point p corresponds to D's point idx[p].
//
// Contract: len(idx) >= 2, every entry in [0,N). Duplicates are not
// rejected: an index repeated at two positions yields a zero distance
// between those two sub-matrix points.
//
// Complexity: O(n^2) where n = len(idx).
func (m *Matrix) SubDist(idx []int) (*Matrix, error) {
	n := len(idx)
	if n < 2 {
		return nil, ErrInvalidDimensions
	}

	var a, b int
	for a = 0; a < n; a++ {
		if idx[a] < 0 || idx[a] >= m.n {
			return nil, ErrOutOfRange
		}
	}

	sub := &Matrix{n: n, data: make([]float64, n*(n-1)/2)}
	for a = 0; a < n; a++ {
		for b = a + 1; b < n; b++ {
			v, err := m.At(idx[a], idx[b])
			if err != nil {
				return nil, err
			}
			sub.data[sub.index(a, b)] = v
		}
	}

	return sub, nil
}

// Clone returns a deep copy of m, independent of the original's storage.
//
// Complexity: O(N^2) time and memory.
func (m *Matrix) Clone() *Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Matrix{n: m.n, data: cp}
}

// RowSum returns sum_j D(i,j) over all j != i. Used by callers that want to
// sanity-check S's row-invariant (see silhouette package).
//
// Complexity: O(N).
func (m *Matrix) RowSum(i int) (float64, error) {
	if i < 0 || i >= m.n {
		return 0, ErrOutOfRange
	}
	var sum float64
	var j int
	for j = 0; j < m.n; j++ {
		v, _ := m.At(i, j)
		sum += v
	}

	return sum, nil
}
