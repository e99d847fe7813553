package effosil

import "errors"

// Sentinel errors for the effosil package.
var (
	// ErrInvalidK indicates k < 2 or k > N.
	ErrInvalidK = errors.New("effosil: k must be in [2, N]")

	// ErrInvalidIterCap indicates a negative iteration cap.
	ErrInvalidIterCap = errors.New("effosil: IterCap must be >= 0")

	// ErrNoInitMethods indicates Options.InitMethods is empty.
	ErrNoInitMethods = errors.New("effosil: at least one init method is required")

	// ErrInvalidVariant indicates an unrecognised Variant value.
	ErrInvalidVariant = errors.New("effosil: unrecognised variant")
)
