// Package scalosil implements scalOSil: a scalable ASW-optimizing engine
// for datasets too large for effOSil's O(N) per-candidate bookkeeping to
// stay cheap. Instead of running the local search over all N points,
// scalOSil repeats two phases:
//
//  1. Sub-sample phase — draw a random sub-sample P of size n << N, run
//     effosil.Run on D restricted to P, keep the best-ASW trial over
//     NumSubsamples independent draws.
//  2. Extension phase — assign every point outside P to the cluster whose
//     sub-sample members it is, on average, closest to.
//
// Both phases repeat Options.Repeats times; the repeat with the highest
// full-N ASW is returned.
//
// Variant Scalable performs the extension in one direct O(k*N*n) pass.
// Variant OriginalFOSil additionally polishes the extended labelling with
// a full-N effOSil pass (the historical FOSil behaviour of re-evaluating
// the complete objective during extension), trading speed for a chance at
// a marginally better partition.
//
// Property 6 (spec.md): when SampleSize == N and NumSubsamples == 1,
// scalOSil's sub-sample phase degenerates to a plain effOSil run over the
// whole dataset and the extension phase has nothing left to assign.
package scalosil
