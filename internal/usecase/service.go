package usecase

import (
	"context"
	"errors"

	"svw.info/sudoku-board/internal/domain"
	"svw.info/sudoku-board/internal/ports"
	"svw.info/sudoku-board/internal/session"
)

type Service struct {
	Validator ports.Validator
	Sessions  ports.Sessions
}

func NewService(v ports.Validator, st ports.Sessions) *Service {
	return &Service{Validator: v, Sessions: st}
}

var (
	errNotConfigured = errors.New("usecase dependency not configured")

	// ErrNoSession is returned when a session id is unknown or expired.
	ErrNoSession = errors.New("unknown session")
)

func (u *Service) NewSession(ctx context.Context) (string, session.View, error) {
	if u.Sessions == nil {
		return "", session.View{}, errNotConfigured
	}
	id, s := u.Sessions.Create()
	return id, s.Snapshot(), nil
}

func (u *Service) View(ctx context.Context, id string) (session.View, error) {
	s, err := u.session(id)
	if err != nil {
		return session.View{}, err
	}
	return s.Snapshot(), nil
}

func (u *Service) EditCell(ctx context.Context, id string, coord domain.CellCoord, raw string) (session.View, error) {
	s, err := u.session(id)
	if err != nil {
		return session.View{}, err
	}
	return s.EditCell(coord, raw), nil
}

func (u *Service) Validate(ctx context.Context, id string) (session.View, error) {
	s, err := u.session(id)
	if err != nil {
		return session.View{}, err
	}
	return s.Validate(), nil
}

func (u *Service) Reset(ctx context.Context, id string) (session.View, error) {
	s, err := u.session(id)
	if err != nil {
		return session.View{}, err
	}
	return s.Reset(), nil
}

func (u *Service) CloseSession(ctx context.Context, id string) error {
	if u.Sessions == nil {
		return errNotConfigured
	}
	u.Sessions.Remove(id)
	return nil
}

// Check validates an arbitrary grid without touching session state.
func (u *Service) Check(ctx context.Context, b *domain.Board) (domain.Verdict, error) {
	if u.Validator == nil {
		return domain.Verdict{}, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

func (u *Service) session(id string) (*session.Session, error) {
	if u.Sessions == nil {
		return nil, errNotConfigured
	}
	s, ok := u.Sessions.Get(id)
	if !ok {
		return nil, ErrNoSession
	}
	return s, nil
}
