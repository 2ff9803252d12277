package domain

// Board holds current values and which cells are fixed givens.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether the coordinate addresses one of the 81 cells.
func (c CellCoord) InBounds() bool {
	return c.Row >= 0 && c.Row < 9 && c.Col >= 0 && c.Col < 9
}

// Verdict is the result of checking a grid against the Sudoku rules.
// Conflicts lists every cell involved in a violation: both members of a
// duplicate pair, and any cell holding an out-of-range value. It is sorted
// row-major and free of duplicates.
type Verdict struct {
	Valid     bool        `json:"valid"`
	Conflicts []CellCoord `json:"conflicts,omitempty"`
	Complete  bool        `json:"complete"`
}

// Status is the last validation outcome shown to the user.
type Status struct {
	Kind    StatusKind `json:"kind"`
	Message string     `json:"message,omitempty"`
}

// NoStatus is the cleared status (nothing to show).
var NoStatus = Status{Kind: StatusNone}
