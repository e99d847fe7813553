// Package effosil implements effOSil: an exact single-point-reassignment
// local search that maximises ASW, equivalent to the published OSil
// algorithm but evaluating every candidate move in O(N*k) instead of
// O(N^2) by reading from the already-maintained sum matrix instead of
// recomputing it from scratch.
//
// Two variants are exposed:
//
//	Efficient — trial moves are scored by reading virtual (uncommitted)
//	            updates to the sum matrix (O(N*k) per candidate).
//	Original  — trial moves are scored by rebuilding the sum matrix from
//	            scratch (O(N^2) per candidate); kept for benchmarking and
//	            for Property 4 (variant equivalence) testing.
//
// Both variants search the identical candidate space and accept the same
// globally-best single-point move per pass, so on any input they return
// partitions whose ASW differ by at most floating-point noise.
package effosil
