package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneGridIsIndependent(t *testing.T) {
	g := StarterPuzzle()
	clone := CloneGrid(g)
	require.Equal(t, g, clone)

	clone[0][2] = 9
	assert.EqualValues(t, 0, g[0][2], "mutating the clone must not change the source")
	assert.EqualValues(t, 9, clone[0][2])
}

func TestStarterPuzzleReturnsFreshCopy(t *testing.T) {
	a := StarterPuzzle()
	a[4][4] = 1
	b := StarterPuzzle()
	assert.EqualValues(t, 0, b[4][4], "a caller's writes must not leak into the starter")
}

func TestFixedMaskOf(t *testing.T) {
	m := FixedMaskOf(StarterPuzzle())
	assert.True(t, m[0][0], "given at (0,0)")
	assert.False(t, m[0][2], "empty at (0,2)")

	p := StarterPuzzle()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			assert.Equal(t, p[r][c] != 0, m[r][c], "mask mismatch at r=%d c=%d", r, c)
		}
	}
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, StarterPuzzle(), b.Values)
	assert.Equal(t, FixedMaskOf(StarterPuzzle()), b.Fixed)
}

func TestCellCoordInBounds(t *testing.T) {
	assert.True(t, CellCoord{0, 0}.InBounds())
	assert.True(t, CellCoord{8, 8}.InBounds())
	assert.False(t, CellCoord{-1, 0}.InBounds())
	assert.False(t, CellCoord{0, 9}.InBounds())
	assert.False(t, CellCoord{9, 0}.InBounds())
}

func TestStatusKindText(t *testing.T) {
	for _, k := range []StatusKind{StatusNone, StatusError, StatusInfo, StatusSuccess} {
		text, err := k.MarshalText()
		require.NoError(t, err)
		var back StatusKind
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, k, back)
	}
}
