// Agglomerative hierarchical clustering (single/complete/average linkage),
// cut at a target cluster count k.
//
// The merge loop is the same disjoint-set skeleton Kruskal's MST uses
// (union by keeping the lower index as representative, path-compressed
// find) generalised from "union the two endpoints of the cheapest
// remaining edge" to "union the two clusters with the cheapest remaining
// linkage distance"; the stopping rule changes from |V|-1 edges to k
// surviving components.
package clusterinit

import "github.com/edelweiss611428/aswsil/distmatrix"

// dsu is a minimal union-find with path compression, representative = the
// lower original index (the tie-break convention used throughout this
// module: lowest index wins).
type dsu struct {
	parent []int
}

func newDSU(n int) *dsu {
	p := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}

	return &dsu{parent: p}
}

func (d *dsu) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]] // path compression
		x = d.parent[x]
	}

	return x
}

// union merges b's component into a's, keeping min(a,b) as the surviving
// representative.
func (d *dsu) union(a, b int) int {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return ra
	}
	lo, hi := ra, rb
	if hi < lo {
		lo, hi = hi, lo
	}
	d.parent[hi] = lo

	return lo
}

// Linkage runs agglomerative clustering with the given method, cutting the
// dendrogram at k clusters.
//
// Stage 1 (Validate): 1 <= k <= N.
// Stage 2 (Init): cd is the working cluster-distance matrix, seeded from D;
// live holds the ids (original point indices) of currently active cluster
// representatives.
// Stage 3 (Merge loop): repeatedly union the two live clusters with minimal
// cd distance (lowest-index pair breaks ties), updating cd in place via the
// Lance–Williams formula for the chosen linkage, until k clusters remain.
// Stage 4 (Label): map surviving representatives to canonical labels
// 0..k-1 in ascending representative order.
//
// Complexity: O(n^2 * (n-k)) time worst case (an O(n^2) candidate-pair scan
// of the live set and O(n) distance updates per merge, O(n-k) merges),
// O(n^2) memory for cd.
func Linkage(D *distmatrix.Matrix, k int, method Method) ([]int, error) {
	n := D.N()
	if k < 1 || k > n {
		return nil, ErrInvalidK
	}

	cd := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		cd[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v, err := D.At(i, j)
			if err != nil {
				return nil, err
			}
			cd[i][j] = v
		}
	}

	size := make([]int, n)
	for i = 0; i < n; i++ {
		size[i] = 1
	}

	live := make([]bool, n)
	for i = 0; i < n; i++ {
		live[i] = true
	}
	nLive := n

	u := newDSU(n)

	for nLive > k {
		bestA, bestB := -1, -1
		bestD := 0.0
		for i = 0; i < n; i++ {
			if !live[i] {
				continue
			}
			for j = i + 1; j < n; j++ {
				if !live[j] {
					continue
				}
				if bestA == -1 || cd[i][j] < bestD {
					bestA, bestB, bestD = i, j, cd[i][j]
				}
			}
		}

		// Merge bestB into bestA (bestA < bestB always, since the inner
		// loop only visits j>i and DSU keeps the lower index as root).
		sizeA, sizeB := size[bestA], size[bestB]
		var c int
		for c = 0; c < n; c++ {
			if !live[c] || c == bestA || c == bestB {
				continue
			}
			dac := cd[min(bestA, c)][max(bestA, c)]
			dbc := cd[min(bestB, c)][max(bestB, c)]
			merged := linkageUpdate(method, dac, dbc, sizeA, sizeB)
			cd[min(bestA, c)][max(bestA, c)] = merged
		}

		u.union(bestA, bestB)
		size[bestA] = sizeA + sizeB
		live[bestB] = false
		nLive--
	}

	// Canonicalize: sort surviving representatives ascending, map to 0..k-1.
	reps := make([]int, 0, k)
	for i = 0; i < n; i++ {
		if live[i] {
			reps = append(reps, i)
		}
	}
	repLabel := make(map[int]int, len(reps))
	for idx, r := range reps {
		repLabel[r] = idx
	}

	labels := make([]int, n)
	for i = 0; i < n; i++ {
		labels[i] = repLabel[u.find(i)]
	}

	return labels, nil
}

// linkageUpdate applies the Lance–Williams recurrence for the three
// supported linkage criteria.
func linkageUpdate(method Method, dac, dbc float64, sizeA, sizeB int) float64 {
	switch method {
	case Single:
		if dac < dbc {
			return dac
		}

		return dbc
	case Complete:
		if dac > dbc {
			return dac
		}

		return dbc
	case Average:
		na, nb := float64(sizeA), float64(sizeB)

		return (na*dac + nb*dbc) / (na + nb)
	default:
		// Unreachable from the public Linkage/Best surface, which only
		// dispatches Single/Complete/Average here.
		return dac
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
