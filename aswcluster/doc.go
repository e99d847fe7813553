// Package aswcluster implements the Driver (spec.md §4.8): it sweeps a
// chosen ASW-optimizing engine (PAMSil, effOSil, or scalOSil) over a set of
// candidate cluster counts K, collects each k's partition and ASW, and
// reports the argmax-ASW solution across the sweep.
//
// All precondition checks run before any k is attempted, mirroring the
// teacher's "validate once, up front" convention: a bad K or option value
// never leaves a partial Result behind.
package aswcluster
