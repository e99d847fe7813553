package distmatrix

import "errors"

// Sentinel errors for distmatrix construction and access.
var (
	// ErrInvalidDimensions indicates a requested size is < 2.
	ErrInvalidDimensions = errors.New("distmatrix: n must be >= 2")

	// ErrDimensionMismatch indicates a source slice's shape does not match N.
	ErrDimensionMismatch = errors.New("distmatrix: dimension mismatch")

	// ErrOutOfRange indicates an index passed to At/SubDist is outside [0,N).
	ErrOutOfRange = errors.New("distmatrix: index out of range")

	// ErrNonZeroDiagonal indicates D(i,i) != 0 for some i.
	ErrNonZeroDiagonal = errors.New("distmatrix: diagonal entry is not zero")

	// ErrAsymmetry indicates D(i,j) != D(j,i) beyond floating-point tolerance.
	ErrAsymmetry = errors.New("distmatrix: matrix is not symmetric")

	// ErrNegativeDistance indicates a negative off-diagonal entry.
	ErrNegativeDistance = errors.New("distmatrix: negative distance encountered")

	// ErrNaNInf indicates a NaN or +/-Inf entry where finite values are required.
	ErrNaNInf = errors.New("distmatrix: NaN or Inf encountered")
)
