package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-board/internal/domain"
)

// The unique solution of the starter puzzle.
var solved = [9][9]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestCheckEmptyGrid(t *testing.T) {
	v := Check([9][9]uint8{})
	assert.True(t, v.Valid)
	assert.False(t, v.Complete)
	assert.Empty(t, v.Conflicts)
}

func TestCheckStarterIsValidIncomplete(t *testing.T) {
	v := Check(domain.StarterPuzzle())
	assert.True(t, v.Valid)
	assert.False(t, v.Complete)
	assert.Empty(t, v.Conflicts)
}

func TestCheckSolvedIsValidComplete(t *testing.T) {
	v := Check(solved)
	assert.True(t, v.Valid)
	assert.True(t, v.Complete)
	assert.Empty(t, v.Conflicts)
}

func TestCheckIsPure(t *testing.T) {
	g := domain.StarterPuzzle()
	g[0][2] = 5
	first := Check(g)
	second := Check(g)
	assert.Equal(t, first, second, "same grid must yield the identical verdict")
}

func TestRowDuplicateMarksBothCells(t *testing.T) {
	g := domain.StarterPuzzle()
	g[0][2] = 5 // row 0 already has 5 at col 0
	v := Check(g)
	require.False(t, v.Valid)
	assert.Contains(t, v.Conflicts, domain.CellCoord{Row: 0, Col: 0})
	assert.Contains(t, v.Conflicts, domain.CellCoord{Row: 0, Col: 2})
}

func TestColumnDuplicateMarksBothCells(t *testing.T) {
	var g [9][9]uint8
	g[1][4] = 7
	g[6][4] = 7
	v := Check(g)
	require.False(t, v.Valid)
	assert.Contains(t, v.Conflicts, domain.CellCoord{Row: 1, Col: 4})
	assert.Contains(t, v.Conflicts, domain.CellCoord{Row: 6, Col: 4})
}

func TestBoxDuplicateMarksBothCells(t *testing.T) {
	var g [9][9]uint8
	// same 3x3 box, different row and column
	g[3][0] = 2
	g[5][2] = 2
	v := Check(g)
	require.False(t, v.Valid)
	assert.Contains(t, v.Conflicts, domain.CellCoord{Row: 3, Col: 0})
	assert.Contains(t, v.Conflicts, domain.CellCoord{Row: 5, Col: 2})
}

func TestOutOfRangeValueIsConflict(t *testing.T) {
	var g [9][9]uint8
	g[4][4] = 12
	v := Check(g)
	require.False(t, v.Valid)
	assert.Contains(t, v.Conflicts, domain.CellCoord{Row: 4, Col: 4})
	assert.False(t, v.Complete)
}

func TestOutOfRangeNeverJoinsDuplicateScan(t *testing.T) {
	var g [9][9]uint8
	g[0][0] = 12
	g[0][1] = 12
	v := Check(g)
	// both flagged by the range check only; the verdict must not blow up
	assert.Contains(t, v.Conflicts, domain.CellCoord{Row: 0, Col: 0})
	assert.Contains(t, v.Conflicts, domain.CellCoord{Row: 0, Col: 1})
}

func TestZerosNeverConflictWithEachOther(t *testing.T) {
	var g [9][9]uint8
	g[0][0] = 1 // one entry, rest zeros
	v := Check(g)
	assert.True(t, v.Valid)
}

func TestTripleDuplicateMarksAllThree(t *testing.T) {
	var g [9][9]uint8
	g[2][0] = 4
	g[2][4] = 4
	g[2][8] = 4
	v := Check(g)
	require.False(t, v.Valid)
	assert.Contains(t, v.Conflicts, domain.CellCoord{Row: 2, Col: 0})
	assert.Contains(t, v.Conflicts, domain.CellCoord{Row: 2, Col: 4})
	assert.Contains(t, v.Conflicts, domain.CellCoord{Row: 2, Col: 8})
}

func TestCompleteButInvalid(t *testing.T) {
	g := solved
	// swap two non-equal values inside row 0: still complete, now invalid
	g[0][0], g[0][1] = g[0][1], g[0][0]
	v := Check(g)
	assert.True(t, v.Complete, "completion is independent of validity")
	assert.False(t, v.Valid)
}

func TestConflictsSortedRowMajorAndUnique(t *testing.T) {
	var g [9][9]uint8
	g[0][0] = 3
	g[0][5] = 3 // row pair
	g[4][2] = 3
	g[8][2] = 3 // column pair
	v := Check(g)
	require.False(t, v.Valid)
	seen := map[domain.CellCoord]bool{}
	for i, cc := range v.Conflicts {
		assert.False(t, seen[cc], "duplicate conflict entry %v", cc)
		seen[cc] = true
		if i > 0 {
			prev := v.Conflicts[i-1]
			less := prev.Row < cc.Row || (prev.Row == cc.Row && prev.Col < cc.Col)
			assert.True(t, less, "conflicts not sorted at index %d", i)
		}
	}
}

func TestFastValidatorAdapter(t *testing.T) {
	b := domain.NewBoard()
	v, err := New().Validate(context.Background(), &b)
	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.False(t, v.Complete)
}
