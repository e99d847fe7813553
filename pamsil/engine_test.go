// Package pamsil_test exercises PAMSil's medoid-swap local search.
package pamsil_test

import (
	"math"
	"testing"

	"github.com/edelweiss611428/aswsil/clusterinit"
	"github.com/edelweiss611428/aswsil/distmatrix"
	"github.com/edelweiss611428/aswsil/pamsil"
	"github.com/edelweiss611428/aswsil/silhouette"
	"github.com/stretchr/testify/require"
)

func twoClusterLine(t *testing.T) *distmatrix.Matrix {
	t.Helper()
	n := 20
	pos := make([]float64, n)
	for i := 0; i < 10; i++ {
		pos[i] = float64(i)
		pos[i+10] = float64(100 + i)
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows {
			rows[i][j] = math.Abs(pos[i] - pos[j])
		}
	}
	m, err := distmatrix.NewFromDense(rows)
	require.NoError(t, err)

	return m
}

func TestRunInvalidK(t *testing.T) {
	D := twoClusterLine(t)
	_, err := pamsil.Run(D, 1, pamsil.DefaultOptions())
	require.ErrorIs(t, err, pamsil.ErrInvalidK)

	_, err = pamsil.Run(D, 21, pamsil.DefaultOptions())
	require.ErrorIs(t, err, pamsil.ErrInvalidK)
}

func TestRunTwoWellSeparatedClusters(t *testing.T) {
	D := twoClusterLine(t)
	res, err := pamsil.Run(D, 2, pamsil.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Medoids, 2)
	require.InDelta(t, 0.9632971602236593, res.ASW, 1e-9) // ASW of the split at index 10

	// Property 2: reported ASW matches an independent from-scratch score.
	check, err := silhouette.ASWFromScratch(D, res.Labels, 2)
	require.NoError(t, err)
	require.InDelta(t, check, res.ASW, 1e-10)
}

func TestRunImprovesOverPAMSeed(t *testing.T) {
	D := twoClusterLine(t)

	_, pamMedoids, err := clusterinit.PAM(D, 2)
	require.NoError(t, err)
	seedLabels := assignByMedoids(D, pamMedoids)
	seedASW, err := silhouette.ASWFromScratch(D, seedLabels, 2)
	require.NoError(t, err)

	res, err := pamsil.Run(D, 2, pamsil.DefaultOptions())
	require.NoError(t, err)

	// Property/Scenario S6: PAMSil's ASW is never worse than the PAM seed's.
	require.GreaterOrEqual(t, res.ASW, seedASW-1e-12)
}

func TestRunMonotoneAndBounded(t *testing.T) {
	D := twoClusterLine(t)
	res, err := pamsil.Run(D, 2, pamsil.DefaultOptions())
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.ASW, -1.0)
	require.LessOrEqual(t, res.ASW, 1.0)
}

func TestRunRejectsNegativeIterCap(t *testing.T) {
	D := twoClusterLine(t)
	_, err := pamsil.Run(D, 2, pamsil.DefaultOptions(pamsil.WithIterCap(-1)))
	require.ErrorIs(t, err, pamsil.ErrInvalidIterCap)
}

// assignByMedoids replicates nearest-medoid assignment for the seed-vs-result
// comparison test above (kept local so the test doesn't reach into pamsil's
// unexported helpers).
func assignByMedoids(D *distmatrix.Matrix, medoids []int) []int {
	n := D.N()
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		best, bestDist := 0, -1.0
		for mi, m := range medoids {
			d, _ := D.At(i, m)
			if bestDist < 0 || d < bestDist {
				bestDist, best = d, mi
			}
		}
		labels[i] = best
	}

	return labels
}
