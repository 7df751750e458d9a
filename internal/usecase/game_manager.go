package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *tictactoe.Game) error
	GetByID(ctx context.Context, id string) (*tictactoe.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager runs any number of independent games side by side.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	notifier tictactoe.Notifier
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, notifier tictactoe.Notifier) *GameManager {
	if notifier == nil {
		notifier = tictactoe.NopNotifier{}
	}

	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		notifier: notifier,
	}
}

// NewGame starts a game and announces the first turn.
func (that *GameManager) NewGame(ctx context.Context) (*tictactoe.Game, error) {
	game := tictactoe.NewGame(uuid.NewString(), that.notifier)

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID())
	that.notifier.TurnChanged(ctx, game.Snapshot())

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*tictactoe.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn plays the current player's mark at cell. A rejected move returns
// the unchanged game along with an error wrapping the apperror reason.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, cell int) (*tictactoe.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID, "cell", cell)

	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	player := game.CurrentPlayer()

	result, err := game.AttemptMove(ctx, cell)
	if err != nil {
		log.Debug("move rejected", "result", result.String(), "error", err)
		return game, fmt.Errorf("failed make turn: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	log.Debug("move accepted", "player", player.String())

	if game.IsOver() {
		log.Info("game finished", "outcome", game.Outcome().String(), "moves", game.MovesPlayed())
	}

	return game, nil
}

// ResetGame clears the board and turn order of an existing game.
func (that *GameManager) ResetGame(ctx context.Context, gameID string) (*tictactoe.Game, error) {
	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	game.Reset(ctx)

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	that.logger.Info("game reset", "gameID", gameID)

	return game, nil
}

func (that *GameManager) EndGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", gameID)

	return nil
}
