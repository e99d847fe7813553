// Package distmatrix_test exercises construction, addressing, and
// sub-matrix extraction for the compact lower-triangular distance store.
package distmatrix_test

import (
	"testing"

	"github.com/edelweiss611428/aswsil/distmatrix"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidDimensions(t *testing.T) {
	_, err := distmatrix.New(1)
	require.ErrorIs(t, err, distmatrix.ErrInvalidDimensions)

	m, err := distmatrix.New(2)
	require.NoError(t, err)
	require.Equal(t, 2, m.N())
}

func TestAtDiagonalAlwaysZero(t *testing.T) {
	m, err := distmatrix.New(4)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		v, err := m.At(i, i)
		require.NoError(t, err)
		require.Zero(t, v)
	}
}

func TestSetAtSymmetric(t *testing.T) {
	m, err := distmatrix.New(3)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 2, 5.0))
	v, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	v, err = m.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, v, "distance must be symmetric regardless of Set order")
}

func TestAtOutOfRange(t *testing.T) {
	m, err := distmatrix.New(3)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, distmatrix.ErrOutOfRange)

	_, err = m.At(0, 3)
	require.ErrorIs(t, err, distmatrix.ErrOutOfRange)
}

func TestSetRejectsInvalidValues(t *testing.T) {
	m, err := distmatrix.New(3)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 1, -1), distmatrix.ErrNegativeDistance)
	require.ErrorIs(t, m.Set(1, 1, 2), distmatrix.ErrNonZeroDiagonal)
}

func TestNewFromDenseValidatesShape(t *testing.T) {
	_, err := distmatrix.NewFromDense([][]float64{{0, 1}, {1, 0, 2}})
	require.ErrorIs(t, err, distmatrix.ErrDimensionMismatch)
}

func TestNewFromDenseValidatesDiagonal(t *testing.T) {
	rows := [][]float64{
		{1, 1},
		{1, 0},
	}
	_, err := distmatrix.NewFromDense(rows)
	require.ErrorIs(t, err, distmatrix.ErrNonZeroDiagonal)
}

func TestNewFromDenseValidatesSymmetry(t *testing.T) {
	rows := [][]float64{
		{0, 1},
		{2, 0},
	}
	_, err := distmatrix.NewFromDense(rows)
	require.ErrorIs(t, err, distmatrix.ErrAsymmetry)
}

func TestNewFromDenseValidatesNonNegative(t *testing.T) {
	rows := [][]float64{
		{0, -1},
		{-1, 0},
	}
	_, err := distmatrix.NewFromDense(rows)
	require.ErrorIs(t, err, distmatrix.ErrNegativeDistance)
}

func TestNewFromDenseRoundTrip(t *testing.T) {
	rows := [][]float64{
		{0, 1, 4},
		{1, 0, 9},
		{4, 9, 0},
	}
	m, err := distmatrix.NewFromDense(rows)
	require.NoError(t, err)

	for i := range rows {
		for j := range rows {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, rows[i][j], v)
		}
	}
}

func TestSubDistPreservesOrderAndValues(t *testing.T) {
	rows := [][]float64{
		{0, 1, 2, 3},
		{1, 0, 4, 5},
		{2, 4, 0, 6},
		{3, 5, 6, 0},
	}
	m, err := distmatrix.NewFromDense(rows)
	require.NoError(t, err)

	sub, err := m.SubDist([]int{3, 1, 0})
	require.NoError(t, err)
	require.Equal(t, 3, sub.N())

	// sub point 0 == original 3, sub point 1 == original 1, sub point 2 == original 0.
	v, err := sub.At(0, 1) // D(3,1) == 5
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	v, err = sub.At(1, 2) // D(1,0) == 1
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestCloneIsIndependent(t *testing.T) {
	m, err := distmatrix.New(3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 7))

	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 9))

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 7.0, v, "mutating the clone must not affect the original")
}

func TestRowSum(t *testing.T) {
	rows := [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	}
	m, err := distmatrix.NewFromDense(rows)
	require.NoError(t, err)

	sum, err := m.RowSum(0)
	require.NoError(t, err)
	require.Equal(t, 3.0, sum)
}
