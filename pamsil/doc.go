// Package pamsil implements PAMSil: a medoid-swap local search that
// maximises Average Silhouette Width (ASW) directly, instead of PAM's
// classical total-dissimilarity-to-medoid objective.
//
// Each iteration evaluates every (medoid, non-medoid) candidate swap,
// reassigns every point to its nearest candidate medoid, scores the
// resulting partition's ASW from scratch, and commits the single best
// strictly-improving swap — mirroring clusterinit.PAM's BUILD/SWAP
// vocabulary with the objective swapped from total dissimilarity to ASW.
package pamsil
