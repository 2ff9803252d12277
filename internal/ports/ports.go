package ports

import (
	"context"

	"svw.info/sudoku-board/internal/domain"
	"svw.info/sudoku-board/internal/session"
)

// Validator performs the full constraint check (range, row/col/box, completion).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (domain.Verdict, error)
}

// Sessions registers and retrieves live board sessions.
type Sessions interface {
	Create() (string, *session.Session)
	Get(id string) (*session.Session, bool)
	Remove(id string)
	Len() int
}
