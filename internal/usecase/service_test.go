package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-board/internal/domain"
	"svw.info/sudoku-board/internal/session"
	"svw.info/sudoku-board/internal/validator"
)

func newService() *Service {
	return NewService(validator.New(), session.NewStore(time.Minute))
}

func TestServiceSessionFlow(t *testing.T) {
	ctx := context.Background()
	u := newService()

	id, v, err := u.NewSession(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, domain.StarterPuzzle(), v.Board.Values)

	v, err = u.EditCell(ctx, id, domain.CellCoord{Row: 0, Col: 2}, "5")
	require.NoError(t, err)
	assert.EqualValues(t, 5, v.Board.Values[0][2])

	v, err = u.Validate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusError, v.Status.Kind)

	v, err = u.Reset(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StarterPuzzle(), v.Board.Values)

	require.NoError(t, u.CloseSession(ctx, id))
	_, err = u.View(ctx, id)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestServiceUnknownSession(t *testing.T) {
	ctx := context.Background()
	u := newService()
	_, err := u.Validate(ctx, "missing")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestServiceStatelessCheck(t *testing.T) {
	ctx := context.Background()
	u := newService()
	var g [9][9]uint8
	g[0][0] = 1
	g[0][8] = 1
	v, err := u.Check(ctx, &domain.Board{Values: g})
	require.NoError(t, err)
	assert.False(t, v.Valid)
}

func TestServiceNilDependencies(t *testing.T) {
	ctx := context.Background()
	u := &Service{}
	_, _, err := u.NewSession(ctx)
	assert.Error(t, err)
	_, err = u.Check(ctx, &domain.Board{})
	assert.Error(t, err)
	assert.Error(t, u.CloseSession(ctx, "x"))
}
