package silhouette

import "github.com/edelweiss611428/aswsil/distmatrix"

// State bundles a partition L, cluster sizes N, and the sum matrix S, kept
// consistent by Build/MovePoint. Engines create a State at entry and mutate
// it in place through their local search; it is discarded when the engine
// returns its final labelling.
type State struct {
	L []int       // L[i] = cluster label of point i, in [0,K)
	N []int       // N[c] = size of cluster c, >= 1
	S [][]float64 // S[i][c] = sum_{j: L[j]=c} D(i,j); K columns per row
	K int         // number of clusters
}

// Build allocates a fresh State for labelling L over distance matrix D.
// Stage 1 (Validate): len(L) == D.N(), every label in [0,K), every cluster
// non-empty.
// Stage 2 (Accumulate): one O(n^2) pass over all pairs populates S.
//
// Complexity: O(n^2 * 1) time (the inner accumulation is O(1) per pair);
// O(n*K) memory for S.
func Build(D *distmatrix.Matrix, L []int, k int) (*State, error) {
	n := D.N()
	if len(L) != n {
		return nil, ErrDimensionMismatch
	}
	if k <= 0 {
		return nil, ErrInvalidK
	}

	sizes := make([]int, k)
	var i int
	for i = 0; i < n; i++ {
		if L[i] < 0 || L[i] >= k {
			return nil, ErrInvalidLabel
		}
		sizes[L[i]]++
	}
	var c int
	for c = 0; c < k; c++ {
		if sizes[c] == 0 {
			return nil, ErrDimensionMismatch
		}
	}

	s := make([][]float64, n)
	var j int
	for i = 0; i < n; i++ {
		s[i] = make([]float64, k)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d, err := D.At(i, j)
			if err != nil {
				return nil, err
			}
			s[i][L[j]] += d
			s[j][L[i]] += d
		}
	}

	lCopy := make([]int, n)
	copy(lCopy, L)

	return &State{L: lCopy, N: sizes, S: s, K: k}, nil
}

// MovePoint reassigns point i from its current cluster to cNew, updating S
// and N in place in O(n).
//
// Precondition: n[L[i]] > 1 after the implied decrement, i.e. the move must
// not empty the source cluster; violating this returns ErrEmptyCluster and
// leaves st unmodified.
//
// Complexity: O(n) time, O(1) extra space.
func (st *State) MovePoint(D *distmatrix.Matrix, i, cNew int) error {
	n := len(st.L)
	if i < 0 || i >= n {
		return ErrDimensionMismatch
	}
	if cNew < 0 || cNew >= st.K {
		return ErrInvalidLabel
	}
	cOld := st.L[i]
	if cNew == cOld {
		return nil
	}
	if st.N[cOld] <= 1 {
		return ErrEmptyCluster
	}

	var j int
	for j = 0; j < n; j++ {
		if j == i {
			continue
		}
		d, err := D.At(i, j)
		if err != nil {
			return err
		}
		st.S[j][cOld] -= d
		st.S[j][cNew] += d
	}

	st.N[cOld]--
	st.N[cNew]++
	st.L[i] = cNew

	return nil
}

// Clone returns a deep, independent copy of st.
//
// Complexity: O(n*K) time and memory.
func (st *State) Clone() *State {
	n := len(st.L)
	cp := &State{
		L: make([]int, n),
		N: make([]int, st.K),
		S: make([][]float64, n),
		K: st.K,
	}
	copy(cp.L, st.L)
	copy(cp.N, st.N)
	var i int
	for i = 0; i < n; i++ {
		cp.S[i] = make([]float64, st.K)
		copy(cp.S[i], st.S[i])
	}

	return cp
}
