package effosil

import "github.com/edelweiss611428/aswsil/clusterinit"

// Variant selects how candidate single-point moves are scored.
//
// Mirrors dtw.MemoryMode: one Options field selects between algorithmically
// equivalent implementations with different time/space tradeoffs, instead
// of exposing separate functions per strategy.
type Variant int

const (
	// Efficient scores each candidate in O(N*k) using virtual updates to
	// the already-maintained sum matrix.
	Efficient Variant = iota

	// Original scores each candidate in O(N^2) by rebuilding the sum
	// matrix from scratch for the hypothetical labelling.
	Original
)

// Options configures a single effOSil run.
type Options struct {
	// InitMethods selects which clusterinit method(s) seed the initial
	// partition; best-ASW seed wins when more than one is given.
	InitMethods []clusterinit.Method

	// Variant selects the scoring strategy (Efficient or Original).
	Variant Variant

	// IterCap bounds the number of accepted reassignments. 0 means
	// unlimited; termination is otherwise guaranteed by strict ASW
	// improvement over a finite partition space.
	IterCap int
}

// Option configures an Options value.
type Option func(*Options)

// WithInitMethods overrides the seed method(s).
func WithInitMethods(methods ...clusterinit.Method) Option {
	return func(o *Options) { o.InitMethods = methods }
}

// WithVariant overrides the scoring variant.
func WithVariant(v Variant) Option {
	return func(o *Options) { o.Variant = v }
}

// WithIterCap overrides the iteration cap.
func WithIterCap(cap int) Option {
	return func(o *Options) { o.IterCap = cap }
}

// DefaultOptions returns effOSil's default configuration: seeded by PAM,
// Efficient variant, unlimited iterations.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		InitMethods: []clusterinit.Method{clusterinit.PAMMethod},
		Variant:     Efficient,
		IterCap:     0,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Result is effOSil's output for a single k.
type Result struct {
	Labels []int
	ASW    float64
	NIter  int
}
