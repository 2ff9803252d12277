package domain

// starter is the compile-time starter puzzle (0 = empty). It has a unique
// solution; the givens never change for the lifetime of the process.
var starter = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

// StarterPuzzle returns a fresh copy of the starter grid.
func StarterPuzzle() [9][9]uint8 {
	return starter
}

// CloneGrid returns an independent copy of g. Grids are value types, so the
// copy shares no storage with the source; prior snapshots stay untouched by
// later single-cell writes.
func CloneGrid(g [9][9]uint8) [9][9]uint8 {
	return g
}

// FixedMaskOf derives the fixed-cell mask from a puzzle: true wherever the
// puzzle holds a non-zero clue.
func FixedMaskOf(puzzle [9][9]uint8) [9][9]bool {
	var m [9][9]bool
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			m[r][c] = puzzle[r][c] != 0
		}
	}
	return m
}

// NewBoard builds a session-start board: a copy of the starter puzzle with
// its derived fixed mask.
func NewBoard() Board {
	p := StarterPuzzle()
	return Board{Values: p, Fixed: FixedMaskOf(p)}
}
