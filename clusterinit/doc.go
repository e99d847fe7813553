// Package clusterinit supplies the Initialiser collaborator (C4): given a
// distance matrix and a target cluster count k, it produces an initial
// partition for the ASW-optimising engines to refine.
//
// Four methods are recognised, matching spec.md's contract surface:
//
//	Single, Complete, Average — agglomerative hierarchical clustering cut
//	                            at k clusters, via single/complete/average
//	                            linkage.
//	PAM                       — Partitioning Around Medoids (BUILD+SWAP),
//	                            minimising total dissimilarity to medoids.
//
// Best runs several methods and keeps whichever initial partition scores
// the highest ASW, matching spec.md §4.4: "multiple tags ⇒ best-ASW initial
// partition is chosen as seed."
package clusterinit
