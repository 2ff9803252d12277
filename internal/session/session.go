// Package session implements the interaction controller for one board:
// sanitized cell edits, on-demand validation, the conflict-highlight display
// flag, and reset. The grid is replaced wholesale on every change
// (copy-on-write snapshots); the verdict is derived state, recomputed from
// the current grid whenever it changes.
package session

import (
	"sync"

	"svw.info/sudoku-board/internal/domain"
	"svw.info/sudoku-board/internal/validator"
)

// DisplayState is the conceptual state of the message/highlight panel.
type DisplayState int

const (
	Unvalidated DisplayState = iota
	ValidatedWithConflicts
	ValidatedIncomplete
	ValidatedComplete
)

func (s DisplayState) String() string {
	switch s {
	case ValidatedWithConflicts:
		return "validated-with-conflicts"
	case ValidatedIncomplete:
		return "validated-incomplete"
	case ValidatedComplete:
		return "validated-complete"
	default:
		return "unvalidated"
	}
}

// Messages shown in the status panel.
const (
	msgConflicts  = "There are conflicts on the board. Highlighted cells break the rules."
	msgIncomplete = "So far so good. No conflicts, keep going."
	msgSolved     = "Congratulations, the puzzle is solved!"
)

// View is an immutable snapshot handed to the presentation layer.
type View struct {
	Board         domain.Board
	Verdict       domain.Verdict
	Status        domain.Status
	ShowConflicts bool
}

// State derives the display state from flag and status.
func (v View) State() DisplayState {
	if !v.ShowConflicts && v.Status.Kind == domain.StatusNone {
		return Unvalidated
	}
	switch v.Status.Kind {
	case domain.StatusError:
		return ValidatedWithConflicts
	case domain.StatusInfo:
		return ValidatedIncomplete
	case domain.StatusSuccess:
		return ValidatedComplete
	default:
		// edited after validation: highlights stay on, status cleared
		return Unvalidated
	}
}

// Session holds one user's board. Methods are safe for concurrent use so
// the HTTP adapter can call them from parallel requests; each operation
// runs to completion under the lock, preserving strict arrival order.
type Session struct {
	mu            sync.Mutex
	board         domain.Board
	verdict       domain.Verdict
	status        domain.Status
	showConflicts bool
}

// New starts a session on a fresh copy of the starter puzzle.
func New() *Session {
	b := domain.NewBoard()
	return &Session{
		board:   b,
		verdict: validator.Check(b.Values),
	}
}

// Snapshot returns the current view.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

func (s *Session) view() View {
	return View{
		Board:         s.board,
		Verdict:       s.verdict,
		Status:        s.status,
		ShowConflicts: s.showConflicts,
	}
}

// EditCell writes a sanitized digit into a cell. Fixed cells and
// out-of-bounds coordinates are no-ops. A validation message that is
// currently showing is cleared, but the conflict highlights stay visible and
// are refreshed against the new grid.
func (s *Session) EditCell(coord domain.CellCoord, raw string) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !coord.InBounds() || s.board.Fixed[coord.Row][coord.Col] {
		return s.view()
	}
	next := domain.CloneGrid(s.board.Values)
	next[coord.Row][coord.Col] = SanitizeDigit(raw)
	s.board.Values = next
	s.verdict = validator.Check(next)
	s.status = domain.NoStatus
	return s.view()
}

// Validate recomputes the verdict, turns conflict highlighting on, and picks
// the status by priority: conflicts, then incomplete, then solved.
func (s *Session) Validate() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showConflicts = true
	s.verdict = validator.Check(s.board.Values)
	switch {
	case !s.verdict.Valid:
		s.status = domain.Status{Kind: domain.StatusError, Message: msgConflicts}
	case !s.verdict.Complete:
		s.status = domain.Status{Kind: domain.StatusInfo, Message: msgIncomplete}
	default:
		s.status = domain.Status{Kind: domain.StatusSuccess, Message: msgSolved}
	}
	return s.view()
}

// Reset restores the starter puzzle and clears highlighting and status.
func (s *Session) Reset() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = domain.NewBoard()
	s.verdict = validator.Check(s.board.Values)
	s.status = domain.NoStatus
	s.showConflicts = false
	return s.view()
}
