package scalosil

import "errors"

// Sentinel errors for the scalosil package.
var (
	// ErrInvalidK indicates k < 2 or k > SampleSize.
	ErrInvalidK = errors.New("scalosil: k must be in [2, SampleSize]")

	// ErrInvalidSampleSize indicates SampleSize < 2 or SampleSize > N.
	ErrInvalidSampleSize = errors.New("scalosil: SampleSize must be in [2, N]")

	// ErrInvalidRepeats indicates NumSubsamples or Repeats < 1.
	ErrInvalidRepeats = errors.New("scalosil: NumSubsamples and Repeats must be >= 1")

	// ErrInvalidVariant indicates an unrecognised Variant value.
	ErrInvalidVariant = errors.New("scalosil: unrecognised variant")

	// ErrNoInitMethods indicates Options.InitMethods is empty.
	ErrNoInitMethods = errors.New("scalosil: at least one init method is required")
)
