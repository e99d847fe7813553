package silhouette

import "errors"

// Sentinel errors for the silhouette package.
var (
	// ErrDimensionMismatch indicates L's length does not match D's N, or k
	// is inconsistent with the labels observed in L.
	ErrDimensionMismatch = errors.New("silhouette: dimension mismatch")

	// ErrEmptyCluster indicates a move would leave its source cluster empty.
	ErrEmptyCluster = errors.New("silhouette: move would empty the source cluster")

	// ErrInvalidLabel indicates a label outside [0,k).
	ErrInvalidLabel = errors.New("silhouette: label out of range")

	// ErrInvalidK indicates k <= 0.
	ErrInvalidK = errors.New("silhouette: invalid cluster count")
)
