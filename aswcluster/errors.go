package aswcluster

import "errors"

// Sentinel errors for the aswcluster package. All are precondition
// failures raised before any k in K is attempted (spec.md §7).
var (
	// ErrInvalidDistance indicates a nil distance matrix.
	ErrInvalidDistance = errors.New("aswcluster: D must not be nil")

	// ErrInvalidK indicates K is empty, contains a duplicate, min(K) <= 1,
	// or max(K) exceeds N (or the sub-sample size n for scalOSil).
	ErrInvalidK = errors.New("aswcluster: K must be a non-empty set of distinct integers in [2, N]")

	// ErrInvalidSampleSize indicates scalOSil's SampleSize is < 2 or > N.
	ErrInvalidSampleSize = errors.New("aswcluster: SampleSize must be in [2, N]")

	// ErrInvalidRepeats indicates scalOSil's NumSubsamples or Repeats < 1.
	ErrInvalidRepeats = errors.New("aswcluster: NumSubsamples and Repeats must be >= 1")

	// ErrInvalidVariant indicates an unrecognised Engine or engine Variant.
	ErrInvalidVariant = errors.New("aswcluster: unrecognised engine or variant")

	// ErrInvalidInitMethod indicates an InitMethods entry outside the
	// recognised {single, complete, average, pam} set.
	ErrInvalidInitMethod = errors.New("aswcluster: unrecognised init method")
)
