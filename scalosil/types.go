package scalosil

import "github.com/edelweiss611428/aswsil/clusterinit"

// Variant selects how the extension phase treats points outside the
// sub-sample.
type Variant int

const (
	// Scalable assigns every extended point to its nearest sub-sample
	// cluster mean in a single O(k*N*n) pass and stops there.
	Scalable Variant = iota

	// OriginalFOSil performs the same one-shot assignment, then runs a
	// full-N effOSil pass seeded by it, re-evaluating the complete ASW
	// objective over all N points (the historical FOSil behaviour, and
	// the more expensive of the two variants).
	OriginalFOSil
)

// Options configures a scalOSil run.
type Options struct {
	// SampleSize is the sub-sample size n. 0 selects ceil(0.1*N), floored
	// at 2.
	SampleSize int

	// NumSubsamples is the number of independent sub-sample draws per
	// repeat; the highest-ASW draw's partition is extended. 0 selects 10.
	NumSubsamples int

	// Repeats is the number of independent (sub-sample, extension) rounds;
	// the highest full-N ASW round wins. 0 selects 1.
	Repeats int

	// InitMethods seeds effOSil's sub-sample phase; best-ASW seed wins
	// when more than one is given.
	InitMethods []clusterinit.Method

	// Variant selects the extension strategy.
	Variant Variant

	// Seed drives the sub-sample draws and restart streams. 0 selects a
	// fixed default seed.
	Seed int64
}

// Option configures an Options value.
type Option func(*Options)

// WithSampleSize overrides the sub-sample size.
func WithSampleSize(n int) Option { return func(o *Options) { o.SampleSize = n } }

// WithNumSubsamples overrides the number of sub-sample draws per repeat.
func WithNumSubsamples(ns int) Option { return func(o *Options) { o.NumSubsamples = ns } }

// WithRepeats overrides the number of independent rounds.
func WithRepeats(rep int) Option { return func(o *Options) { o.Repeats = rep } }

// WithInitMethods overrides the sub-sample phase's seed method(s).
func WithInitMethods(methods ...clusterinit.Method) Option {
	return func(o *Options) { o.InitMethods = methods }
}

// WithVariant overrides the extension variant.
func WithVariant(v Variant) Option { return func(o *Options) { o.Variant = v } }

// WithSeed overrides the RNG seed.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// DefaultOptions returns scalOSil's default configuration: 10% sub-sample
// seeded by PAM, 10 draws, 1 repeat, Scalable extension.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		InitMethods: []clusterinit.Method{clusterinit.PAMMethod},
		Variant:     Scalable,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Result is scalOSil's output for a single k.
type Result struct {
	Labels []int
	ASW    float64
}
