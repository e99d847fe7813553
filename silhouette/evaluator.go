package silhouette

import "github.com/edelweiss611428/aswsil/distmatrix"

// ASWFromScratch computes the Average Silhouette Width of labelling L
// against D without assuming any precomputed bookkeeping. Used to audit
// ASWFromSums (Property 2: ASW correctness within 1e-10) and to score
// candidate initial partitions.
//
// Complexity: O(n^2) time, O(n*k) transient memory.
func ASWFromScratch(D *distmatrix.Matrix, L []int, k int) (float64, error) {
	st, err := Build(D, L, k)
	if err != nil {
		return 0, err
	}

	return ASWFromSums(st), nil
}

// ASWFromSums computes the ASW of st.L using the already-current sum matrix
// st.S, assuming the caller kept it consistent via Build/MovePoint.
//
// Complexity: O(n*k) time.
func ASWFromSums(st *State) float64 {
	s := PerPointSilhouette(st)
	if len(s) == 0 {
		return 0
	}
	var sum float64
	var i int
	for i = range s {
		sum += s[i]
	}

	return sum / float64(len(s))
}

// PerPointSilhouette returns s(i) for every point, per the formula:
//
//	a(i) = S[i][L[i]] / (n[L[i]]-1)
//	b(i) = min_{c != L[i]} S[i][c]/n[c]
//	s(i) = (b(i)-a(i)) / max(a(i),b(i))   if max > 0 else 0
//
// Numeric policy: a point whose cluster is a singleton, and the both-zero
// case, contribute s(i)=0 (Rousseeuw convention).
//
// Complexity: O(n*k) time.
func PerPointSilhouette(st *State) []float64 {
	n := len(st.L)
	out := make([]float64, n)

	var i, c int
	var a, b, ratio float64
	var ownSize int
	for i = 0; i < n; i++ {
		own := st.L[i]
		ownSize = st.N[own]
		if ownSize <= 1 {
			out[i] = 0 // singleton cluster (Rousseeuw convention)
			continue
		}
		a = st.S[i][own] / float64(ownSize-1)

		b = -1 // sentinel: "not yet set"
		for c = 0; c < st.K; c++ {
			if c == own {
				continue
			}
			ratio = st.S[i][c] / float64(st.N[c])
			if b < 0 || ratio < b {
				b = ratio
			}
		}
		if b < 0 {
			// single-cluster partition (k==1): b is undefined, treat as 0.
			b = 0
		}

		m := a
		if b > m {
			m = b
		}
		if m > 0 {
			out[i] = (b - a) / m
		} else {
			out[i] = 0
		}
	}

	return out
}
