package aswcluster

import (
	"github.com/edelweiss611428/aswsil/effosil"
	"github.com/edelweiss611428/aswsil/pamsil"
	"github.com/edelweiss611428/aswsil/scalosil"
)

// Engine selects which ASW-optimizing local search the Driver dispatches to.
type Engine int

const (
	// PAMSilEngine dispatches to pamsil.Run for every k.
	PAMSilEngine Engine = iota

	// EffOSilEngine dispatches to effosil.Run for every k.
	EffOSilEngine

	// ScalOSilEngine dispatches to scalosil.Run for every k.
	ScalOSilEngine
)

// Options configures a Driver sweep.
type Options struct {
	// K is the set of candidate cluster counts to try. Order does not
	// matter; it is sorted internally, and duplicates are a validation
	// error per spec.md §7.
	K []int

	// Engine selects which algorithm the sweep dispatches to.
	Engine Engine

	// PAMSil configures PAMSilEngine runs; ignored otherwise.
	PAMSil pamsil.Options

	// EffOSil configures EffOSilEngine runs; ignored otherwise.
	EffOSil effosil.Options

	// ScalOSil configures ScalOSilEngine runs; ignored otherwise.
	ScalOSil scalosil.Options

	// Workers bounds how many k's run concurrently. 0 or 1 means
	// sequential (the teacher's default posture everywhere: sequential
	// first, parallel as an opt-in).
	Workers int
}

// Result is the Driver's full sweep output (spec.md §6).
type Result struct {
	// BestClustering is the label vector for BestK.
	BestClustering []int

	// BestASW is the highest ASW seen across the sweep.
	BestASW float64

	// BestK is the argmax-ASW cluster count; ties favour the smallest k.
	BestK int

	// Clusterings holds every k's label vector, keyed by k.
	Clusterings map[int][]int

	// ASW holds every k's ASW, keyed by k.
	ASW map[int]float64

	// Medoids holds PAMSilEngine's medoid index vector per k. Empty for
	// other engines.
	Medoids map[int][]int

	// NIter holds PAMSilEngine/EffOSilEngine's iteration count per k.
	// Empty for ScalOSilEngine (spec.md §6: scalOSil reports no nIter).
	NIter map[int]int
}
