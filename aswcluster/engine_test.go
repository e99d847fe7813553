// Package aswcluster_test exercises the Driver's per-k sweep and aggregation.
package aswcluster_test

import (
	"math"
	"testing"

	"github.com/edelweiss611428/aswsil/aswcluster"
	"github.com/edelweiss611428/aswsil/distmatrix"
	"github.com/edelweiss611428/aswsil/effosil"
	"github.com/edelweiss611428/aswsil/pamsil"
	"github.com/edelweiss611428/aswsil/scalosil"
	"github.com/stretchr/testify/require"
)

// threeClusters builds a 30-point, three-well-separated-cluster dataset so
// the sweep has an unambiguous best k (3).
func threeClusters(t *testing.T) *distmatrix.Matrix {
	t.Helper()
	centers := [][2]float64{{0, 0}, {50, 0}, {25, 43.3}}
	xs := make([]float64, 0, 30)
	ys := make([]float64, 0, 30)
	for _, c := range centers {
		for i := 0; i < 10; i++ {
			xs = append(xs, c[0]+float64(i%3)*0.3)
			ys = append(ys, c[1]+float64(i/3)*0.3)
		}
	}
	n := len(xs)
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

func TestRunInvalidDistance(t *testing.T) {
	_, err := aswcluster.Run(nil, aswcluster.Options{K: []int{2, 3}, Engine: aswcluster.PAMSilEngine})
	require.ErrorIs(t, err, aswcluster.ErrInvalidDistance)
}

func TestRunInvalidKEmpty(t *testing.T) {
	D := threeClusters(t)
	_, err := aswcluster.Run(D, aswcluster.Options{Engine: aswcluster.PAMSilEngine, PAMSil: pamsil.DefaultOptions()})
	require.ErrorIs(t, err, aswcluster.ErrInvalidK)
}

func TestRunInvalidKDuplicate(t *testing.T) {
	D := threeClusters(t)
	_, err := aswcluster.Run(D, aswcluster.Options{
		K:      []int{2, 2, 3},
		Engine: aswcluster.PAMSilEngine,
		PAMSil: pamsil.DefaultOptions(),
	})
	require.ErrorIs(t, err, aswcluster.ErrInvalidK)
}

func TestRunInvalidKOutOfRange(t *testing.T) {
	D := threeClusters(t)
	_, err := aswcluster.Run(D, aswcluster.Options{
		K:      []int{1, 3},
		Engine: aswcluster.PAMSilEngine,
		PAMSil: pamsil.DefaultOptions(),
	})
	require.ErrorIs(t, err, aswcluster.ErrInvalidK)
}

func TestRunInvalidInitMethod(t *testing.T) {
	D := threeClusters(t)
	_, err := aswcluster.Run(D, aswcluster.Options{
		K:      []int{2, 3},
		Engine: aswcluster.PAMSilEngine,
		PAMSil: pamsil.DefaultOptions(pamsil.WithInitMethods()),
	})
	require.ErrorIs(t, err, aswcluster.ErrInvalidInitMethod)
}

func TestRunPAMSilSweepPicksBestK(t *testing.T) {
	D := threeClusters(t)
	res, err := aswcluster.Run(D, aswcluster.Options{
		K:      []int{2, 3, 4, 5},
		Engine: aswcluster.PAMSilEngine,
		PAMSil: pamsil.DefaultOptions(),
	})
	require.NoError(t, err)
	require.Equal(t, 3, res.BestK)
	require.Len(t, res.Clusterings, 4)
	require.Len(t, res.Medoids[3], 3)
	require.Contains(t, res.NIter, 3)
}

func TestRunEffOSilSweepConcurrentMatchesSequential(t *testing.T) {
	D := threeClusters(t)
	opts := aswcluster.Options{
		K:       []int{2, 3, 4},
		Engine:  aswcluster.EffOSilEngine,
		EffOSil: effosil.DefaultOptions(),
	}

	seq, err := aswcluster.Run(D, opts)
	require.NoError(t, err)

	opts.Workers = 4
	par, err := aswcluster.Run(D, opts)
	require.NoError(t, err)

	require.Equal(t, seq.BestK, par.BestK)
	require.InDelta(t, seq.BestASW, par.BestASW, 1e-12)
}

func TestRunScalOSilSweepHasNoNIter(t *testing.T) {
	D := threeClusters(t)
	res, err := aswcluster.Run(D, aswcluster.Options{
		K:      []int{2, 3},
		Engine: aswcluster.ScalOSilEngine,
		ScalOSil: scalosil.DefaultOptions(
			scalosil.WithSampleSize(15),
			scalosil.WithNumSubsamples(3),
		),
	})
	require.NoError(t, err)
	require.Empty(t, res.NIter)
	require.GreaterOrEqual(t, res.BestASW, -1.0)
	require.LessOrEqual(t, res.BestASW, 1.0)
}

func TestRunScalOSilInvalidSampleSize(t *testing.T) {
	D := threeClusters(t)
	_, err := aswcluster.Run(D, aswcluster.Options{
		K:        []int{2, 3},
		Engine:   aswcluster.ScalOSilEngine,
		ScalOSil: scalosil.DefaultOptions(scalosil.WithSampleSize(1)),
	})
	require.ErrorIs(t, err, aswcluster.ErrInvalidSampleSize)
}

func TestRunUnrecognisedEngine(t *testing.T) {
	D := threeClusters(t)
	_, err := aswcluster.Run(D, aswcluster.Options{
		K:      []int{2, 3},
		Engine: aswcluster.Engine(99),
	})
	require.ErrorIs(t, err, aswcluster.ErrInvalidVariant)
}

