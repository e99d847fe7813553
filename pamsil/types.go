package pamsil

import "github.com/edelweiss611428/aswsil/clusterinit"

// Options configures a single PAMSil run. Zero value is not meaningful; use
// DefaultOptions and override fields as needed.
type Options struct {
	// InitMethods selects which clusterinit method(s) seed the initial
	// medoid set; when more than one is given, the best-ASW seed wins
	// (clusterinit.Best semantics).
	InitMethods []clusterinit.Method

	// IterCap bounds the number of accepted swaps. 0 means unlimited;
	// termination is otherwise guaranteed by strict ASW improvement over a
	// finite medoid-set space.
	IterCap int
}

// Option configures an Options value.
type Option func(*Options)

// WithInitMethods overrides the seed method(s).
func WithInitMethods(methods ...clusterinit.Method) Option {
	return func(o *Options) { o.InitMethods = methods }
}

// WithIterCap overrides the iteration cap.
func WithIterCap(cap int) Option {
	return func(o *Options) { o.IterCap = cap }
}

// DefaultOptions returns PAMSil's default configuration: seeded by PAM,
// unlimited iterations.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		InitMethods: []clusterinit.Method{clusterinit.PAMMethod},
		IterCap:     0,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Result is PAMSil's output for a single k.
type Result struct {
	Labels  []int // canonical labels in [0,k)
	ASW     float64
	Medoids []int // k distinct point indices, one per cluster
	NIter   int   // number of committed swaps
}
