package pamsil

import "errors"

// Sentinel errors for the pamsil package.
var (
	// ErrInvalidK indicates k < 2 or k > N.
	ErrInvalidK = errors.New("pamsil: k must be in [2, N]")

	// ErrInvalidIterCap indicates a negative iteration cap.
	ErrInvalidIterCap = errors.New("pamsil: IterCap must be >= 0")

	// ErrNoInitMethods indicates Options.InitMethods is empty.
	ErrNoInitMethods = errors.New("pamsil: at least one init method is required")
)
