// Package aswsil collects a family of Average-Silhouette-Width (ASW)
// optimizing clustering engines: PAMSil, effOSil, and scalOSil.
//
// Each engine takes a precomputed distance matrix and a cluster count k and
// searches for the partition that maximises ASW, the mean per-point
// silhouette score. They share the same underlying bookkeeping (a
// per-cluster distance-sum matrix). effOSil's Efficient variant, which also
// drives scalOSil's sub-sample phase, maintains that matrix incrementally
// and scores each candidate move in O(N*k); PAMSil and effOSil's Original
// variant score each candidate from scratch in O(N^2).
//
// Subpackages:
//
//	distmatrix/   — compact symmetric zero-diagonal distance storage
//	silhouette/   — ASW evaluation and the incremental sum-matrix bookkeeper
//	clusterinit/  — initial-partition strategies (linkage, PAM)
//	pamsil/       — medoid-swap local search
//	effosil/      — single-point-reassignment local search
//	scalosil/     — sub-sample-and-extend engine for large N
//	aswcluster/   — Driver: sweeps an engine over a range of k and reports
//	                the argmax-ASW clustering
//
//	go get github.com/edelweiss611428/aswsil
package aswsil
