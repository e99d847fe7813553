package clusterinit

import "errors"

// Sentinel errors for the clusterinit package.
var (
	// ErrInvalidK indicates k < 1 or k > N.
	ErrInvalidK = errors.New("clusterinit: k must be in [1, N]")

	// ErrUnknownMethod indicates an unrecognised Method tag.
	ErrUnknownMethod = errors.New("clusterinit: unrecognised init method")

	// ErrNoMethods indicates Best was called with an empty method list.
	ErrNoMethods = errors.New("clusterinit: at least one method is required")
)
