package tictactoe

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

// MoveResult tells the caller what happened to an attempted move.
type MoveResult int

const (
	Accepted MoveResult = iota
	CellOccupied
	GameAlreadyOver
	IndexOutOfRange
)

func (that MoveResult) String() string {
	switch that {
	case Accepted:
		return "accepted"
	case CellOccupied:
		return "cell occupied"
	case GameAlreadyOver:
		return "game already over"
	case IndexOutOfRange:
		return "index out of range"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only view of a game, safe to hand to renderers and publishers.
type Snapshot struct {
	ID          string       `json:"id"`
	Board       entity.Board `json:"board"`
	Turn        string       `json:"player_turn"`
	Winner      string       `json:"winner"`
	Status      string       `json:"status"`
	MovesPlayed int          `json:"moves_played"`
}

func (that Snapshot) IsOver() bool {
	return that.Status == entity.StatusWon || that.Status == entity.StatusDraw
}

// Game aggregates one board and one engine. It is not safe for concurrent use.
type Game struct {
	id       string
	board    entity.Board
	engine   *Engine
	notifier Notifier
}

func NewGame(id string, notifier Notifier) *Game {
	if notifier == nil {
		notifier = NopNotifier{}
	}

	return &Game{
		id:       id,
		engine:   NewEngine(),
		notifier: notifier,
	}
}

func (that *Game) ID() string {
	return that.id
}

// AttemptMove plays the current player's mark at cell. The error is nil only
// for Accepted; otherwise it wraps the apperror sentinel matching the result.
func (that *Game) AttemptMove(ctx context.Context, cell int) (MoveResult, error) {
	if err := that.engine.PlayRound(&that.board, cell); err != nil {
		return resultOf(err), err
	}

	if that.engine.IsOver() {
		that.notifier.GameEnded(ctx, that.Snapshot())
	} else {
		that.notifier.TurnChanged(ctx, that.Snapshot())
	}

	return Accepted, nil
}

// Reset clears the board and restarts the turn order in one step.
func (that *Game) Reset(ctx context.Context) {
	that.board.Reset()
	that.engine.Reset()

	that.notifier.TurnChanged(ctx, that.Snapshot())
}

func (that *Game) IsOver() bool {
	return that.engine.IsOver()
}

func (that *Game) Outcome() entity.Outcome {
	return that.engine.Outcome()
}

func (that *Game) CurrentPlayer() entity.Player {
	return that.engine.CurrentPlayer()
}

func (that *Game) MovesPlayed() int {
	return that.engine.MovesPlayed()
}

func (that *Game) Field(cell int) string {
	return that.board.GetField(cell)
}

// Board returns a copy of the cells.
func (that *Game) Board() entity.Board {
	return that.board
}

func (that *Game) Snapshot() Snapshot {
	snapshot := Snapshot{
		ID:          that.id,
		Board:       that.board,
		Status:      that.engine.Outcome().Status,
		MovesPlayed: that.engine.MovesPlayed(),
	}

	outcome := that.engine.Outcome()
	switch {
	case outcome.IsWon():
		snapshot.Winner = outcome.Winner.Mark()
	case !outcome.IsOver():
		snapshot.Turn = that.engine.CurrentPlayer().Mark()
	}

	return snapshot
}

func resultOf(err error) MoveResult {
	switch {
	case errors.Is(err, apperror.ErrGameFinished):
		return GameAlreadyOver
	case errors.Is(err, apperror.ErrCellOccupied):
		return CellOccupied
	case errors.Is(err, apperror.ErrInvalidCell):
		return IndexOutOfRange
	default:
		return GameAlreadyOver
	}
}
