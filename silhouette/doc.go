// Package silhouette implements the Average Silhouette Width (ASW)
// evaluator and the incremental per-cluster-sum bookkeeper shared by every
// engine in this module (PAMSil, effOSil, scalOSil).
//
// State holds a partition L, cluster sizes n, and the sum matrix S where
//
//	S[i][c] = sum_{j in cluster c} D(i,j)
//
// Maintaining S incrementally makes a committed single-point reassignment
// an O(N) update and lets a candidate move be scored in O(N*k) instead of
// O(N^2): moving point i from c_old to c_new only changes column c_old and
// c_new of every row,
// via S[j][c_old] -= D(i,j); S[j][c_new] += D(i,j).
package silhouette
