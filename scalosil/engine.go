package scalosil

import (
	"math"

	"github.com/edelweiss611428/aswsil/distmatrix"
	"github.com/edelweiss611428/aswsil/effosil"
	"github.com/edelweiss611428/aswsil/silhouette"
)

// Run executes scalOSil for a single k against D.
//
// Algorithm (spec.md §4.7):
//  1. Sub-sample phase: for NumSubsamples independent draws, pick a random
//     sub-sample P of SampleSize points, run effOSil on D restricted to P,
//     keep the draw with the highest sub-sample ASW.
//  2. Extension phase: assign every point outside P to whichever cluster
//     its sub-sample members are, on average, nearest to. Variant Scalable
//     stops there; OriginalFOSil additionally polishes the full-N
//     labelling with one more effOSil pass.
//  3. Repeat 1-2 Options.Repeats times; keep the round with the highest
//     full-N ASW.
func Run(D *distmatrix.Matrix, k int, opts Options) (Result, error) {
	n := D.N()

	sampleSize := opts.SampleSize
	if sampleSize == 0 {
		sampleSize = int(math.Ceil(0.1 * float64(n)))
		if sampleSize < 2 {
			sampleSize = 2
		}
	}
	if sampleSize < 2 || sampleSize > n {
		return Result{}, ErrInvalidSampleSize
	}
	if k < 2 || k > sampleSize {
		return Result{}, ErrInvalidK
	}

	ns := opts.NumSubsamples
	if ns == 0 {
		ns = 10
	}
	rep := opts.Repeats
	if rep == 0 {
		rep = 1
	}
	if ns < 1 || rep < 1 {
		return Result{}, ErrInvalidRepeats
	}
	switch opts.Variant {
	case Scalable, OriginalFOSil:
	default:
		return Result{}, ErrInvalidVariant
	}
	if len(opts.InitMethods) == 0 {
		return Result{}, ErrNoInitMethods
	}

	rng := rngFromSeed(opts.Seed)
	effOpts := effosil.DefaultOptions(effosil.WithInitMethods(opts.InitMethods...))

	bestASW := -2.0 // below the valid [-1,1] range, so the first round always wins
	var bestLabels []int

	for r := 0; r < rep; r++ {
		trialRNG := deriveRNG(rng, uint64(r))

		var bestTrialASW = -2.0
		var bestIP []int
		var bestLP []int

		for t := 0; t < ns; t++ {
			drawRNG := deriveRNG(trialRNG, uint64(t))
			perm := permRange(n, drawRNG)
			ip := append([]int(nil), perm[:sampleSize]...)

			sub, err := D.SubDist(ip)
			if err != nil {
				return Result{}, err
			}

			res, err := effosil.Run(sub, k, effOpts)
			if err != nil {
				return Result{}, err
			}

			if res.ASW > bestTrialASW {
				bestTrialASW, bestIP, bestLP = res.ASW, ip, res.Labels
			}
		}

		labels := extend(D, k, bestIP, bestLP)

		if opts.Variant == OriginalFOSil {
			polished, err := effosil.RunSeeded(D, k, labels, effOpts)
			if err != nil {
				return Result{}, err
			}
			labels = polished.Labels
		}

		asw, err := silhouette.ASWFromScratch(D, labels, k)
		if err != nil {
			return Result{}, err
		}

		if asw > bestASW {
			bestASW, bestLabels = asw, labels
		}
	}

	return Result{Labels: bestLabels, ASW: bestASW}, nil
}

// extend builds a full-N labelling from a sub-sample partition: IP[idx]
// carries label LP[idx], and every point outside IP is assigned to the
// cluster whose IP members it is, on average, closest to (ties favour the
// lowest-indexed cluster).
//
// Complexity: O(k*N*len(IP)).
func extend(D *distmatrix.Matrix, k int, ip []int, lp []int) []int {
	n := D.N()

	members := make([][]int, k)
	inSample := make([]bool, n)
	labels := make([]int, n)
	for idx, p := range ip {
		c := lp[idx]
		members[c] = append(members[c], p)
		inSample[p] = true
		labels[p] = c
	}

	for j := 0; j < n; j++ {
		if inSample[j] {
			continue
		}

		best, bestMean := 0, -1.0
		for c := 0; c < k; c++ {
			if len(members[c]) == 0 {
				continue
			}

			var sum float64
			for _, p := range members[c] {
				d, _ := D.At(j, p)
				sum += d
			}
			mean := sum / float64(len(members[c]))

			if bestMean < 0 || mean < bestMean {
				bestMean, best = mean, c
			}
		}
		labels[j] = best
	}

	return labels
}
