// Package effosil_test exercises effOSil's reassignment local search and
// the Efficient/Original variant equivalence (spec.md Property 4).
package effosil_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/edelweiss611428/aswsil/distmatrix"
	"github.com/edelweiss611428/aswsil/effosil"
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

// randomEuclidean50 builds a deterministic 50-point 2D Euclidean dataset
// (scenario S4 of spec.md's end-to-end suite).
func randomEuclidean50(t *testing.T) *distmatrix.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	n := 50
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = rng.Float64() * 10
		ys[i] = rng.Float64() * 10
	}
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			dx, dy := xs[i]-xs[j], ys[i]-ys[j]
			rows[i][j] = math.Sqrt(dx*dx + dy*dy)
		}
	}
	m, err := distmatrix.NewFromDense(rows)
	require.NoError(t, err)

	return m
}

func TestRunInvalidK(t *testing.T) {
	D := twoClusterLine(t)
	_, err := effosil.Run(D, 1, effosil.DefaultOptions())
	require.ErrorIs(t, err, effosil.ErrInvalidK)
}

func TestRunInvalidVariant(t *testing.T) {
	D := twoClusterLine(t)
	_, err := effosil.Run(D, 2, effosil.DefaultOptions(effosil.WithVariant(Variant(99))))
	require.ErrorIs(t, err, effosil.ErrInvalidVariant)
}

// Variant is a local alias so the invalid-variant test can construct an
// out-of-range value without reaching into the package's internals.
type Variant = effosil.Variant

func TestScenarioS1TwoWellSeparatedClusters(t *testing.T) {
	D := twoClusterLine(t)
	res, err := effosil.Run(D, 2, effosil.DefaultOptions())
	require.NoError(t, err)
	require.Greater(t, res.ASW, 0.99)

	check, err := silhouette.ASWFromScratch(D, res.Labels, 2)
	require.NoError(t, err)
	require.InDelta(t, check, res.ASW, 1e-10)
}

func TestScenarioS4VariantEquivalence(t *testing.T) {
	D := randomEuclidean50(t)

	eff, err := effosil.Run(D, 3, effosil.DefaultOptions(effosil.WithVariant(effosil.Efficient)))
	require.NoError(t, err)

	orig, err := effosil.Run(D, 3, effosil.DefaultOptions(effosil.WithVariant(effosil.Original)))
	require.NoError(t, err)

	require.InDelta(t, orig.ASW, eff.ASW, 1e-9)
	require.Equal(t, orig.Labels, eff.Labels, "deterministic tie-breaks should yield identical partitions")
}

func TestRunBoundedASW(t *testing.T) {
	D := twoClusterLine(t)
	res, err := effosil.Run(D, 2, effosil.DefaultOptions())
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.ASW, -1.0)
	require.LessOrEqual(t, res.ASW, 1.0)
}

func TestRunRejectsNegativeIterCap(t *testing.T) {
	D := twoClusterLine(t)
	_, err := effosil.Run(D, 2, effosil.DefaultOptions(effosil.WithIterCap(-1)))
	require.ErrorIs(t, err, effosil.ErrInvalidIterCap)
}
