package validator

import (
	"sort"

	"svw.info/sudoku-board/internal/domain"
)

// Check scans a grid against the Sudoku rules and returns the full verdict.
// It is pure and total: malformed values are reported as conflicts, never as
// errors. Both members of a duplicate pair are marked so the UI can
// highlight every cell involved in a violation.
func Check(grid [9][9]uint8) domain.Verdict {
	conf := make(map[domain.CellCoord]struct{}, 8)
	mark := func(r, c int) {
		conf[domain.CellCoord{Row: r, Col: c}] = struct{}{}
	}

	// range check; the duplicate scans below only compare values in [1,9]
	complete := true
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := grid[r][c]
			if v > 9 {
				mark(r, c)
				complete = false
			} else if v == 0 {
				complete = false
			}
		}
	}

	// rows: map value -> first column seen; a repeat marks both cells
	for r := 0; r < 9; r++ {
		var first [10]int
		for i := range first {
			first[i] = -1
		}
		for c := 0; c < 9; c++ {
			v := grid[r][c]
			if v == 0 || v > 9 {
				continue
			}
			if fc := first[v]; fc >= 0 {
				mark(r, fc)
				mark(r, c)
			} else {
				first[v] = c
			}
		}
	}

	// cols
	for c := 0; c < 9; c++ {
		var first [10]int
		for i := range first {
			first[i] = -1
		}
		for r := 0; r < 9; r++ {
			v := grid[r][c]
			if v == 0 || v > 9 {
				continue
			}
			if fr := first[v]; fr >= 0 {
				mark(fr, c)
				mark(r, c)
			} else {
				first[v] = r
			}
		}
	}

	// boxes, cells visited row-major within each 3x3 box
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			var firstR, firstC [10]int
			for i := 0; i < 10; i++ {
				firstR[i] = -1
			}
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					v := grid[r][c]
					if v == 0 || v > 9 {
						continue
					}
					if fr := firstR[v]; fr >= 0 {
						mark(fr, firstC[v])
						mark(r, c)
					} else {
						firstR[v] = r
						firstC[v] = c
					}
				}
			}
		}
	}

	out := make([]domain.CellCoord, 0, len(conf))
	for cc := range conf {
		out = append(out, cc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	if len(out) == 0 {
		out = nil
	}
	return domain.Verdict{Valid: len(out) == 0, Conflicts: out, Complete: complete}
}
