package clusterinit

import (
	"github.com/edelweiss611428/aswsil/distmatrix"
	"github.com/edelweiss611428/aswsil/silhouette"
)

// Best runs every requested method and returns the initial partition with
// the highest ASW, per spec.md §4.4 ("multiple tags ⇒ best-ASW initial
// partition is chosen as seed").
//
// Complexity: sum of each method's own cost, plus one O(n^2) ASW scoring
// pass per method.
func Best(D *distmatrix.Matrix, k int, methods []Method) ([]int, error) {
	if len(methods) == 0 {
		return nil, ErrNoMethods
	}

	var bestLabels []int
	bestASW := -2.0 // below the valid [-1,1] range, so the first candidate always wins
	var m Method
	for _, m = range methods {
		labels, err := run(D, k, m)
		if err != nil {
			return nil, err
		}
		asw, err := silhouette.ASWFromScratch(D, labels, k)
		if err != nil {
			return nil, err
		}
		if asw > bestASW {
			bestASW, bestLabels = asw, labels
		}
	}

	return bestLabels, nil
}

// run dispatches a single Method to its implementation.
func run(D *distmatrix.Matrix, k int, m Method) ([]int, error) {
	switch m {
	case Single, Complete, Average:
		return Linkage(D, k, m)
	case PAMMethod:
		labels, _, err := PAM(D, k)

		return labels, err
	default:
		return nil, ErrUnknownMethod
	}
}
