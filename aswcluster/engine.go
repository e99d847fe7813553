package aswcluster

import (
	"sync"

	"github.com/edelweiss611428/aswsil/distmatrix"
	"github.com/edelweiss611428/aswsil/effosil"
	"github.com/edelweiss611428/aswsil/pamsil"
	"github.com/edelweiss611428/aswsil/scalosil"
)

// kResult is one k's outcome, collected from either the sequential loop or
// a worker-pool goroutine before being folded into the aggregate Result.
type kResult struct {
	k       int
	labels  []int
	asw     float64
	medoids []int
	nIter   int
	err     error
}

// Run sweeps the chosen engine over every k in Options.K and returns the
// argmax-ASW solution across the sweep (spec.md §4.8).
//
// D is read-only and, per spec.md §5, may be shared across the sweep's
// trials; each k's engine invocation owns its own L/S/n bookkeeping, so
// concurrent k's (Options.Workers > 1) never share mutable state.
func Run(D *distmatrix.Matrix, opts Options) (Result, error) {
	ks, err := validateAll(D, opts)
	if err != nil {
		return Result{}, err
	}

	results := make([]kResult, len(ks))

	workers := opts.Workers
	if workers <= 1 {
		for idx, k := range ks {
			results[idx] = runOne(D, k, opts)
		}
	} else {
		sem := make(chan struct{}, workers)
		var wg sync.WaitGroup
		for idx, k := range ks {
			wg.Add(1)
			sem <- struct{}{}
			go func(idx, k int) {
				defer wg.Done()
				defer func() { <-sem }()
				results[idx] = runOne(D, k, opts)
			}(idx, k)
		}
		wg.Wait()
	}

	for _, r := range results {
		if r.err != nil {
			return Result{}, r.err
		}
	}

	clusterings := make(map[int][]int, len(ks))
	asw := make(map[int]float64, len(ks))
	medoids := make(map[int][]int)
	nIter := make(map[int]int)

	bestK, bestASW := ks[0], -2.0 // below the valid [-1,1] range
	for _, r := range results {
		clusterings[r.k] = r.labels
		asw[r.k] = r.asw
		if r.medoids != nil {
			medoids[r.k] = r.medoids
		}
		if opts.Engine != ScalOSilEngine {
			nIter[r.k] = r.nIter
		}
		if r.asw > bestASW {
			bestASW, bestK = r.asw, r.k
		}
	}

	return Result{
		BestClustering: clusterings[bestK],
		BestASW:        bestASW,
		BestK:          bestK,
		Clusterings:    clusterings,
		ASW:            asw,
		Medoids:        medoids,
		NIter:          nIter,
	}, nil
}

// runOne dispatches a single k to the configured engine.
func runOne(D *distmatrix.Matrix, k int, opts Options) kResult {
	switch opts.Engine {
	case PAMSilEngine:
		res, err := pamsil.Run(D, k, opts.PAMSil)
		if err != nil {
			return kResult{k: k, err: err}
		}

		return kResult{k: k, labels: res.Labels, asw: res.ASW, medoids: res.Medoids, nIter: res.NIter}

	case EffOSilEngine:
		res, err := effosil.Run(D, k, opts.EffOSil)
		if err != nil {
			return kResult{k: k, err: err}
		}

		return kResult{k: k, labels: res.Labels, asw: res.ASW, nIter: res.NIter}

	default: // ScalOSilEngine; validated in validateAll
		res, err := scalosil.Run(D, k, opts.ScalOSil)
		if err != nil {
			return kResult{k: k, err: err}
		}

		return kResult{k: k, labels: res.Labels, asw: res.ASW}
	}
}
