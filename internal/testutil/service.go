package testutil

import (
	"github.com/preston-bernstein/mlb-matchup-service/internal/app/board"
	"github.com/preston-bernstein/mlb-matchup-service/internal/store"
)

// NewServiceWithBoard builds a board service backed by an in-memory store,
// preloaded with b when it has any dates.
func NewServiceWithBoard(b board.Board) *board.Service {
	ms := store.NewMemoryStore()
	if len(b.Dates) > 0 {
		ms.SetBoard(b)
	}
	return board.NewService(nil, nil, ms, nil, nil, board.Config{})
}
