package effosil

import (
	"github.com/edelweiss611428/aswsil/clusterinit"
	"github.com/edelweiss611428/aswsil/distmatrix"
	"github.com/edelweiss611428/aswsil/silhouette"
)

// Run executes effOSil for a single k against D.
//
// Algorithm (spec.md §4.6):
//  1. Seed L from Options.InitMethods, build the sum matrix, compute ASW.
//  2. Repeat until no improving single-point reassignment exists or
//     IterCap is reached: scan points in index order; for each point i
//     with n[L[i]]>1 and each target cluster c != L[i], score the
//     hypothetical move without committing it. Track the single best
//     (i*, c*, ΔASW*) over the full scan. If ΔASW* > 0, commit via
//     silhouette.State.MovePoint and recompute ASW; otherwise stop.
//
// The committed move is the globally best single-point reassignment under
// the exact OSil objective; candidate evaluation order does not affect the
// outcome of a full pass (Property 3/4).
//
// Complexity per full pass: O(n*k) candidates; Efficient scores each in
// O(n*k) (⇒ O(n^2*k^2) per pass), Original scores each in O(n^2)
// (⇒ O(n^3*k) per pass).
//
// See RunSeeded to drive the same loop from a pre-computed labelling.
func Run(D *distmatrix.Matrix, k int, opts Options) (Result, error) {
	if len(opts.InitMethods) == 0 {
		return Result{}, ErrNoInitMethods
	}

	seed, err := clusterinit.Best(D, k, opts.InitMethods)
	if err != nil {
		return Result{}, err
	}

	return RunSeeded(D, k, seed, opts)
}

// RunSeeded runs effOSil's reassignment loop from a caller-supplied initial
// labelling instead of consulting Options.InitMethods, so a caller that
// already has a partition in hand (scalOSil's extension phase, notably) can
// reuse the same local search without the cost of re-initialising. The
// labelling need not assign every cluster a contiguous range of indices, but
// it must use exactly K labels in [0,k).
func RunSeeded(D *distmatrix.Matrix, k int, seed []int, opts Options) (Result, error) {
	n := D.N()
	if k < 2 || k > n {
		return Result{}, ErrInvalidK
	}
	if opts.IterCap < 0 {
		return Result{}, ErrInvalidIterCap
	}
	switch opts.Variant {
	case Efficient, Original:
	default:
		return Result{}, ErrInvalidVariant
	}

	st, err := silhouette.Build(D, seed, k)
	if err != nil {
		return Result{}, err
	}
	current := silhouette.ASWFromSums(st)

	nIter := 0
	for opts.IterCap == 0 || nIter < opts.IterCap {
		bestI, bestC, _, found := scanBestMove(D, st, current, opts.Variant)
		if !found {
			break
		}

		if err = st.MovePoint(D, bestI, bestC); err != nil {
			// Defensive: scanBestMove only proposes moves from clusters
			// with n>1, so this should be unreachable.
			break
		}
		current = silhouette.ASWFromSums(st)
		nIter++
	}

	labels := make([]int, n)
	copy(labels, st.L)

	return Result{Labels: labels, ASW: current, NIter: nIter}, nil
}

// scanBestMove scans every valid (i,c) candidate and returns the globally
// best strictly-improving one, if any.
func scanBestMove(D *distmatrix.Matrix, st *silhouette.State, current float64, variant Variant) (bestI, bestC int, bestASW float64, found bool) {
	n := len(st.L)
	bestASW = current

	var i, c int
	for i = 0; i < n; i++ {
		if st.N[st.L[i]] <= 1 {
			continue // moving the last member out would empty its cluster
		}
		for c = 0; c < st.K; c++ {
			if c == st.L[i] {
				continue
			}

			var trial float64
			var err error
			switch variant {
			case Efficient:
				trial = trialASWEfficient(D, st, i, c)
			default: // Original
				trial, err = trialASWOriginal(D, st, i, c)
				if err != nil {
					continue
				}
			}

			if trial > bestASW {
				bestASW, bestI, bestC, found = trial, i, c, true
			}
		}
	}

	return bestI, bestC, bestASW, found
}

// trialASWEfficient scores the hypothetical move of point i to cluster c
// using virtual (uncommitted) updates to st.S, in O(n*k) time — the O(N)
// speedup over from-scratch recomputation that gives effOSil its name.
func trialASWEfficient(D *distmatrix.Matrix, st *silhouette.State, i, cNew int) float64 {
	cOld := st.L[i]
	n := len(st.L)

	virtualN := make([]int, st.K)
	copy(virtualN, st.N)
	virtualN[cOld]--
	virtualN[cNew]++

	virtualS := func(j, c int) float64 {
		v := st.S[j][c]
		d, _ := D.At(i, j)
		switch c {
		case cOld:
			v -= d
		case cNew:
			v += d
		}

		return v
	}

	var sum float64
	var j, c int
	for j = 0; j < n; j++ {
		lj := st.L[j]
		if j == i {
			lj = cNew
		}

		if virtualN[lj] <= 1 {
			continue // singleton cluster contributes s=0
		}
		a := virtualS(j, lj) / float64(virtualN[lj]-1)

		b := -1.0
		for c = 0; c < st.K; c++ {
			if c == lj {
				continue
			}
			ratio := virtualS(j, c) / float64(virtualN[c])
			if b < 0 || ratio < b {
				b = ratio
			}
		}
		if b < 0 {
			b = 0
		}

		m := a
		if b > m {
			m = b
		}
		if m > 0 {
			sum += (b - a) / m
		}
	}

	return sum / float64(n)
}

// trialASWOriginal scores the hypothetical move by materialising the
// candidate labelling and rebuilding the sum matrix from scratch, O(n^2).
// Kept for Property 4 (variant equivalence) and for benchmarking.
func trialASWOriginal(D *distmatrix.Matrix, st *silhouette.State, i, cNew int) (float64, error) {
	n := len(st.L)
	trial := make([]int, n)
	copy(trial, st.L)
	trial[i] = cNew

	return silhouette.ASWFromScratch(D, trial, st.K)
}
