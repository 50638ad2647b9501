package store

import (
	"sync"

	"github.com/preston-bernstein/mlb-matchup-service/internal/app/board"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/matchups"
)

type gameKey struct {
	date string
	id   string
}

type gameRef struct {
	date int
	game int
}

// MemoryStore keeps a thread-safe copy of the latest board in memory, indexed
// by date and by game.
type MemoryStore struct {
	mu    sync.RWMutex
	board board.Board
	set   bool
	dates map[string]int
	games map[gameKey]gameRef
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		dates: make(map[string]int),
		games: make(map[gameKey]gameRef),
	}
}

// SetBoard replaces the existing board with a new one.
func (s *MemoryStore) SetBoard(b board.Board) {
	dates := make(map[string]int, len(b.Dates))
	games := make(map[gameKey]gameRef, b.GameCount())
	for di, d := range b.Dates {
		dates[d.Date] = di
		for gi, g := range d.Games {
			key := gameKey{date: d.Date, id: g.GameID}
			if _, dup := games[key]; !dup {
				games[key] = gameRef{date: di, game: gi}
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = b
	s.set = true
	s.dates = dates
	s.games = games
}

// Board returns the latest board, if one has been published.
func (s *MemoryStore) Board() (board.Board, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board, s.set
}

// DateBoard retrieves one date of the latest board.
func (s *MemoryStore) DateBoard(date string) (board.DateBoard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.dates[date]
	if !ok {
		return board.DateBoard{}, false
	}
	return s.board.Dates[i], true
}

// Game retrieves a game by date and ID.
func (s *MemoryStore) Game(date, id string) (matchups.MatchupResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, ok := s.games[gameKey{date: date, id: id}]
	if !ok {
		return matchups.MatchupResult{}, false
	}
	return s.board.Dates[ref.date].Games[ref.game], true
}
