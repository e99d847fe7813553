package pamsil

import (
	"sort"

	"github.com/edelweiss611428/aswsil/clusterinit"
	"github.com/edelweiss611428/aswsil/distmatrix"
	"github.com/edelweiss611428/aswsil/silhouette"
)

// Run executes PAMSil for a single k against D.
//
// Algorithm (spec.md §4.5):
//  1. Seed the medoid set from Options.InitMethods (clusterinit.Best when
//     more than one tag is given), derive L by nearest-medoid assignment.
//  2. Repeat until no improving swap exists or IterCap is reached:
//     for every (m in M, h not in M), form the trial medoid set
//     M' = M\{m} ∪ {h}, derive L' by nearest-candidate-medoid assignment,
//     score ASW(L'); track the best strictly-improving candidate.
//     Commit the best candidate if it strictly improves on the current
//     ASW; otherwise stop.
//
// Tie-breaking: candidates are scanned with m ascending by point index over
// the current medoid set and h ascending over non-medoids, and only a strict '>' over
// the running best replaces it — so among equal-ASW candidates the lowest
// (m,h) lexicographic pair wins, per spec.md §9.
//
// Complexity per iteration: O(k*(n-k)) candidate swaps, each O(n*k) to
// reassign + O(n^2) to score from scratch ⇒ O(k*(n-k)*n^2) per full scan.
func Run(D *distmatrix.Matrix, k int, opts Options) (Result, error) {
	n := D.N()
	if k < 2 || k > n {
		return Result{}, ErrInvalidK
	}
	if opts.IterCap < 0 {
		return Result{}, ErrInvalidIterCap
	}
	if len(opts.InitMethods) == 0 {
		return Result{}, ErrNoInitMethods
	}

	medoids, err := seedMedoids(D, k, opts.InitMethods)
	if err != nil {
		return Result{}, err
	}

	labels, asw, err := scoreMedoids(D, k, medoids)
	if err != nil {
		return Result{}, err
	}

	nIter := 0
	for opts.IterCap == 0 || nIter < opts.IterCap {
		improved, bestM, bestH, bestLabels, bestASW := scanSwaps(D, k, medoids, asw)
		if !improved {
			break
		}

		medoids = replaceMedoid(medoids, bestM, bestH)
		labels, asw = bestLabels, bestASW
		nIter++
	}

	return Result{Labels: labels, ASW: asw, Medoids: medoids, NIter: nIter}, nil
}

// seedMedoids derives an initial medoid set from the requested init
// methods. A lone PAM tag takes clusterinit.PAM's own medoids; otherwise it
// runs clusterinit.Best to get a labelling, then picks, for each cluster,
// the point minimising total in-cluster distance (its medoid).
func seedMedoids(D *distmatrix.Matrix, k int, methods []clusterinit.Method) ([]int, error) {
	if len(methods) == 1 && methods[0] == clusterinit.PAMMethod {
		_, medoids, err := clusterinit.PAM(D, k)

		return medoids, err
	}

	labels, err := clusterinit.Best(D, k, methods)
	if err != nil {
		return nil, err
	}

	return medoidsFromLabels(D, labels, k), nil
}

// medoidsFromLabels picks, for each cluster, the member minimising total
// in-cluster distance (the empirical medoid of a given labelling).
func medoidsFromLabels(D *distmatrix.Matrix, labels []int, k int) []int {
	n := D.N()
	medoids := make([]int, k)
	bestCost := make([]float64, k)
	found := make([]bool, k)

	var i, j int
	for i = 0; i < n; i++ {
		c := labels[i]
		var cost float64
		for j = 0; j < n; j++ {
			if labels[j] != c {
				continue
			}
			d, _ := D.At(i, j)
			cost += d
		}
		if !found[c] || cost < bestCost[c] {
			medoids[c], bestCost[c], found[c] = i, cost, true
		}
	}

	return medoids
}

// assignNearestMedoids labels every point by the nearest medoid in the
// given set, ties broken by lowest medoid-set index.
func assignNearestMedoids(D *distmatrix.Matrix, medoids []int) []int {
	n := D.N()
	labels := make([]int, n)
	var i, mi int
	for i = 0; i < n; i++ {
		bestLabel, bestDist := 0, -1.0
		for mi = range medoids {
			d, _ := D.At(i, medoids[mi])
			if bestDist < 0 || d < bestDist {
				bestDist, bestLabel = d, mi
			}
		}
		labels[i] = bestLabel
	}

	return labels
}

// scoreMedoids derives the labelling for a medoid set and its ASW; returns
// an error only on a degenerate assignment that fails silhouette.Build
// (e.g. a medoid set producing fewer than k non-empty clusters).
func scoreMedoids(D *distmatrix.Matrix, k int, medoids []int) ([]int, float64, error) {
	labels := assignNearestMedoids(D, medoids)
	asw, err := silhouette.ASWFromScratch(D, labels, k)
	if err != nil {
		return nil, 0, err
	}

	return labels, asw, nil
}

// scanSwaps evaluates every (m,h) candidate swap and returns the best
// strictly-improving one, if any.
func scanSwaps(D *distmatrix.Matrix, k int, medoids []int, currentASW float64) (improved bool, bestM, bestH int, bestLabels []int, bestASW float64) {
	n := D.N()
	isMedoid := make(map[int]bool, k)
	for _, m := range medoids {
		isMedoid[m] = true
	}

	bestASW = currentASW
	bestM, bestH = -1, -1

	// Visit medoid slots in ascending medoid point index so ties resolve to
	// the lowest (m,h) pair.
	order := make([]int, k)
	for mi := range order {
		order[mi] = mi
	}
	sort.Slice(order, func(a, b int) bool { return medoids[order[a]] < medoids[order[b]] })

	var mi, h int
	for _, mi = range order {
		for h = 0; h < n; h++ {
			if isMedoid[h] {
				continue
			}
			trial := replaceMedoid(medoids, mi, h)
			labels, asw, err := scoreMedoids(D, k, trial)
			if err != nil {
				continue // a degenerate trial (empty cluster) is simply not a candidate
			}
			if asw > bestASW {
				bestASW, bestM, bestH, bestLabels = asw, mi, h, labels
			}
		}
	}

	return bestM != -1, bestM, bestH, bestLabels, bestASW
}

// replaceMedoid returns a copy of medoids with the mi-th entry replaced by h.
func replaceMedoid(medoids []int, mi, h int) []int {
	out := make([]int, len(medoids))
	copy(out, medoids)
	out[mi] = h

	return out
}
