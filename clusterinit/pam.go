// Partitioning Around Medoids (BUILD + SWAP), minimising total
// dissimilarity to the nearest medoid — the classical PAM objective, not
// ASW. PAMSil (package pamsil) reuses this package's candidate-enumeration
// shape but swaps in the ASW objective.
package clusterinit

import "github.com/edelweiss611428/aswsil/distmatrix"

// PAM runs classical Partitioning Around Medoids and returns the resulting
// labelling and the chosen medoid indices.
//
// BUILD: greedily select the medoid set by repeatedly adding the candidate
// that most reduces total dissimilarity to the nearest medoid (classical
// PAM BUILD heuristic; the very first medoid minimises total dissimilarity
// to all other points).
//
// SWAP: repeatedly replace the (medoid, non-medoid) pair whose swap most
// reduces total cost, stopping at the first non-improving pass. Ties break
// by lowest (medoid-index, candidate-index) lexicographic order, matching
// this module's global tie-break convention.
//
// Complexity: BUILD is O(k^2*n^2); SWAP is O(iter*k^2*(n-k)*n).
func PAM(D *distmatrix.Matrix, k int) ([]int, []int, error) {
	n := D.N()
	if k < 1 || k > n {
		return nil, nil, ErrInvalidK
	}

	medoids := buildMedoids(D, k)

	for {
		improved, newMedoids := bestSwap(D, medoids)
		if !improved {
			break
		}
		medoids = newMedoids
	}

	labels, _ := assignNearest(D, medoids)

	return labels, medoids, nil
}

// buildMedoids implements the classical PAM BUILD phase.
func buildMedoids(D *distmatrix.Matrix, k int) []int {
	n := D.N()
	chosen := make([]int, 0, k)
	isMedoid := make([]bool, n)

	// First medoid: minimises total distance to all other points.
	best, bestCost := -1, 0.0
	var i, j int
	for i = 0; i < n; i++ {
		var cost float64
		for j = 0; j < n; j++ {
			d, _ := D.At(i, j)
			cost += d
		}
		if best == -1 || cost < bestCost {
			best, bestCost = i, cost
		}
	}
	chosen = append(chosen, best)
	isMedoid[best] = true

	for len(chosen) < k {
		best, bestGain := -1, 0.0
		for i = 0; i < n; i++ {
			if isMedoid[i] {
				continue
			}
			var gain float64
			for j = 0; j < n; j++ {
				if isMedoid[j] {
					continue
				}
				dj := nearestDist(D, j, chosen)
				dij, _ := D.At(i, j)
				if dij < dj {
					gain += dj - dij
				}
			}
			if best == -1 || gain > bestGain {
				best, bestGain = i, gain
			}
		}
		chosen = append(chosen, best)
		isMedoid[best] = true
	}

	return chosen
}

// nearestDist returns min_{m in medoids} D(point, m).
func nearestDist(D *distmatrix.Matrix, point int, medoids []int) float64 {
	best := -1.0
	for _, m := range medoids {
		d, _ := D.At(point, m)
		if best < 0 || d < best {
			best = d
		}
	}

	return best
}

// assignNearest labels every point by its closest medoid, ties broken by
// lowest medoid index.
func assignNearest(D *distmatrix.Matrix, medoids []int) ([]int, float64) {
	n := D.N()
	labels := make([]int, n)
	var total float64
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
		total += bestDist
	}

	return labels, total
}

// bestSwap scans every (medoid, non-medoid) pair and returns the medoid set
// after the single best improving swap, or (false, nil) if none improves.
func bestSwap(D *distmatrix.Matrix, medoids []int) (bool, []int) {
	n := D.N()
	isMedoid := make(map[int]bool, len(medoids))
	for _, m := range medoids {
		isMedoid[m] = true
	}
	_, baseCost := assignNearest(D, medoids)

	bestCost := baseCost
	bestMi, bestH := -1, -1
	var mi, h int
	for mi = 0; mi < len(medoids); mi++ {
		for h = 0; h < n; h++ {
			if isMedoid[h] {
				continue
			}
			trial := make([]int, len(medoids))
			copy(trial, medoids)
			trial[mi] = h
			_, cost := assignNearest(D, trial)
			if cost < bestCost {
				bestCost, bestMi, bestH = cost, mi, h
			}
		}
	}

	if bestMi == -1 {
		return false, nil
	}

	out := make([]int, len(medoids))
	copy(out, medoids)
	out[bestMi] = bestH

	return true, out
}
