package aswcluster

import (
	"sort"

	"github.com/edelweiss611428/aswsil/clusterinit"
	"github.com/edelweiss611428/aswsil/distmatrix"
	"github.com/edelweiss611428/aswsil/effosil"
	"github.com/edelweiss611428/aswsil/scalosil"
)

// validateAll runs every precondition check up front, staged in the same
// order as the error kinds are documented in spec.md §7, mirroring the
// teacher's "validate once, before any iteration begins" convention.
//
// Stage 1 (Distance): D must not be nil.
// Stage 2 (K): non-empty, no duplicates, min(K) >= 2, max(K) <= the
// relevant upper bound for the chosen engine. For scalOSil that bound is the
// sample size, so an out-of-range sample size is reported first.
// Stage 3 (Engine-specific options): variant tags and init methods must be
// recognised; scalOSil's sample size and repeat counts must be in range.
func validateAll(D *distmatrix.Matrix, opts Options) ([]int, error) {
	if D == nil {
		return nil, ErrInvalidDistance
	}

	ks, err := sortedUniqueK(opts.K)
	if err != nil {
		return nil, err
	}

	upperBound := D.N()
	if opts.Engine == ScalOSilEngine {
		upperBound = effectiveSampleSize(D.N(), opts.ScalOSil.SampleSize)
		if upperBound < 2 || upperBound > D.N() {
			return nil, ErrInvalidSampleSize
		}
	}
	if len(ks) == 0 || ks[0] < 2 || ks[len(ks)-1] > upperBound {
		return nil, ErrInvalidK
	}

	switch opts.Engine {
	case PAMSilEngine:
		if err = validateInitMethods(opts.PAMSil.InitMethods); err != nil {
			return nil, err
		}
	case EffOSilEngine:
		if err = validateInitMethods(opts.EffOSil.InitMethods); err != nil {
			return nil, err
		}
		switch opts.EffOSil.Variant {
		case effosil.Efficient, effosil.Original:
		default:
			return nil, ErrInvalidVariant
		}
	case ScalOSilEngine:
		if err = validateInitMethods(opts.ScalOSil.InitMethods); err != nil {
			return nil, err
		}
		switch opts.ScalOSil.Variant {
		case scalosil.Scalable, scalosil.OriginalFOSil:
		default:
			return nil, ErrInvalidVariant
		}
		n := effectiveSampleSize(D.N(), opts.ScalOSil.SampleSize)
		if n < 2 || n > D.N() {
			return nil, ErrInvalidSampleSize
		}
		ns, rep := opts.ScalOSil.NumSubsamples, opts.ScalOSil.Repeats
		if ns == 0 {
			ns = 1
		}
		if rep == 0 {
			rep = 1
		}
		if ns < 1 || rep < 1 {
			return nil, ErrInvalidRepeats
		}
	default:
		return nil, ErrInvalidVariant
	}

	return ks, nil
}

// effectiveSampleSize mirrors scalosil.Run's own SampleSize default so the
// Driver's bound check agrees with what the engine will actually use.
func effectiveSampleSize(n, sampleSize int) int {
	if sampleSize != 0 {
		return sampleSize
	}
	s := n / 10
	if n%10 != 0 {
		s++
	}
	if s < 2 {
		s = 2
	}

	return s
}

// sortedUniqueK returns K sorted ascending, or ErrInvalidK if it is empty
// or contains a duplicate.
func sortedUniqueK(k []int) ([]int, error) {
	if len(k) == 0 {
		return nil, ErrInvalidK
	}

	ks := append([]int(nil), k...)
	sort.Ints(ks)
	for i := 1; i < len(ks); i++ {
		if ks[i] == ks[i-1] {
			return nil, ErrInvalidK
		}
	}

	return ks, nil
}

// validateInitMethods rejects an empty set or any tag outside
// {single, complete, average, pam}.
func validateInitMethods(methods []clusterinit.Method) error {
	if len(methods) == 0 {
		return ErrInvalidInitMethod
	}
	for _, m := range methods {
		switch m {
		case clusterinit.Single, clusterinit.Complete, clusterinit.Average, clusterinit.PAMMethod:
		default:
			return ErrInvalidInitMethod
		}
	}

	return nil
}
