package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *tictactoe.Game) error
	GetByID(ctx context.Context, id string) (*tictactoe.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// memGame keeps games in process memory only; nothing outlives the process.
type memGame struct {
	mu    sync.RWMutex
	games map[string]*tictactoe.Game
}

func NewGameRepository() GameRepository {
	return &memGame{
		games: make(map[string]*tictactoe.Game),
	}
}

func (that *memGame) CreateOrUpdate(_ context.Context, game *tictactoe.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID()] = game

	return nil
}

func (that *memGame) GetByID(_ context.Context, id string) (*tictactoe.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}

	return game, nil
}

func (that *memGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}
