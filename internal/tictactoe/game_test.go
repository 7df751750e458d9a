package tictactoe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

type mockNotifier struct {
	mock.Mock
}

func (that *mockNotifier) TurnChanged(ctx context.Context, game Snapshot) {
	that.Called(ctx, game)
}

func (that *mockNotifier) GameEnded(ctx context.Context, game Snapshot) {
	that.Called(ctx, game)
}

func playMoves(t *testing.T, game *Game, cells ...int) {
	t.Helper()

	for i, cell := range cells {
		result, err := game.AttemptMove(context.Background(), cell)
		require.NoError(t, err, "move %d on cell %d", i+1, cell)
		require.Equal(t, Accepted, result)
	}
}

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame("123", nil)

	// Then: the snapshot shows an empty board with X to move
	expected := Snapshot{
		ID:          "123",
		Board:       entity.Board{},
		Turn:        entity.PlayerX,
		Winner:      "",
		Status:      entity.StatusOngoing,
		MovesPlayed: 0,
	}

	require.Equal(t, expected, game.Snapshot())
	assert.Equal(t, "123", game.ID())
	assert.False(t, game.IsOver())
}

func TestGame_AttemptMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Accepted move notifies the next turn", func(t *testing.T) {
		// Given: a new game with a notifier
		notifier := &mockNotifier{}
		game := NewGame("g1", notifier)

		notifier.On("TurnChanged", ctx, mock.MatchedBy(func(s Snapshot) bool {
			return s.Turn == entity.PlayerO && s.MovesPlayed == 1 && s.Board[4] == entity.PlayerX
		})).Return().Once()

		// When: X plays the centre
		result, err := game.AttemptMove(ctx, 4)

		// Then: the move is accepted and O is announced
		require.NoError(t, err)
		assert.Equal(t, Accepted, result)
		assert.Equal(t, entity.PlayerX, game.Field(4))
		assert.Equal(t, entity.Second, game.CurrentPlayer())
		notifier.AssertExpectations(t)
	})

	t.Run("Occupied cell is rejected without changes", func(t *testing.T) {
		// Given: X has played cell 0
		game := NewGame("g2", nil)
		playMoves(t, game, 0)
		before := game.Snapshot()

		// When: O tries the same cell
		result, err := game.AttemptMove(ctx, 0)

		// Then: CellOccupied is returned and the game is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, CellOccupied, result)
		assert.Equal(t, before, game.Snapshot())
		assert.Equal(t, 1, game.MovesPlayed())
		assert.Equal(t, entity.PlayerX, game.Field(0))
	})

	t.Run("Out of range cells are rejected", func(t *testing.T) {
		game := NewGame("g3", nil)

		for _, cell := range []int{-1, 9, 100} {
			result, err := game.AttemptMove(ctx, cell)

			require.ErrorIs(t, err, apperror.ErrInvalidCell)
			assert.Equal(t, IndexOutOfRange, result)
		}
		assert.Equal(t, 0, game.MovesPlayed())
	})

	t.Run("Winning move notifies the end once", func(t *testing.T) {
		// Given: a game where X is one move away from column 0,3,6
		notifier := &mockNotifier{}
		game := NewGame("g4", notifier)

		notifier.On("TurnChanged", ctx, mock.Anything).Return().Times(4)
		notifier.On("GameEnded", ctx, mock.MatchedBy(func(s Snapshot) bool {
			return s.Status == entity.StatusWon && s.Winner == entity.PlayerX && s.Turn == "" && s.MovesPlayed == 5
		})).Return().Once()

		// When: moves 0,1,3,4,6 are played
		playMoves(t, game, 0, 1, 3, 4, 6)

		// Then: First has won
		assert.True(t, game.IsOver())
		assert.Equal(t, entity.Won(entity.First), game.Outcome())
		notifier.AssertExpectations(t)

		// When: another move is attempted
		result, err := game.AttemptMove(ctx, 8)

		// Then: it is refused and no event is raised
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, GameAlreadyOver, result)
		assert.Equal(t, entity.EmptyCell, game.Field(8))
		notifier.AssertNumberOfCalls(t, "GameEnded", 1)
	})

	t.Run("Draw notifies the end", func(t *testing.T) {
		// Given: a game with a notifier
		notifier := &mockNotifier{}
		game := NewGame("g5", notifier)

		notifier.On("TurnChanged", ctx, mock.Anything).Return().Times(8)
		notifier.On("GameEnded", ctx, mock.MatchedBy(func(s Snapshot) bool {
			return s.Status == entity.StatusDraw && s.Winner == "" && s.MovesPlayed == 9
		})).Return().Once()

		// When: a drawn sequence is played
		playMoves(t, game, 0, 1, 2, 4, 3, 6, 7, 5, 8)

		// Then: the game is a draw
		assert.Equal(t, entity.Draw(), game.Outcome())
		notifier.AssertExpectations(t)
	})

	t.Run("Anti-diagonal on move 7 ends the game early", func(t *testing.T) {
		// Given: a game with a notifier
		notifier := &mockNotifier{}
		game := NewGame("g6", notifier)

		notifier.On("TurnChanged", ctx, mock.Anything).Return().Times(6)
		notifier.On("GameEnded", ctx, mock.MatchedBy(func(s Snapshot) bool {
			return s.IsOver() && s.Winner == entity.PlayerX && s.MovesPlayed == 7
		})).Return().Once()

		// When: 0,1,2,3,4,5,6 are played; X holds 2,4,6
		playMoves(t, game, 0, 1, 2, 3, 4, 5, 6)

		// Then: First has won after 7 moves
		assert.Equal(t, entity.Won(entity.First), game.Outcome())
		assert.Equal(t, 7, game.MovesPlayed())

		// When: the remaining cells 8 and 7 are attempted
		for _, cell := range []int{8, 7} {
			result, err := game.AttemptMove(ctx, cell)

			// Then: each is refused and the cell stays empty
			require.ErrorIs(t, err, apperror.ErrGameFinished)
			assert.Equal(t, GameAlreadyOver, result)
			assert.Equal(t, entity.EmptyCell, game.Field(cell))
		}

		assert.Equal(t, 7, game.MovesPlayed())
		assert.Equal(t, entity.Won(entity.First), game.Outcome())
		assert.True(t, game.Snapshot().IsOver())
		notifier.AssertExpectations(t)
	})
}

func TestGame_Reset(t *testing.T) {
	ctx := context.Background()

	t.Run("Reset clears board and turn order together", func(t *testing.T) {
		// Given: a finished game
		game := NewGame("g6", nil)
		playMoves(t, game, 0, 1, 3, 4, 6)

		// When: the game is reset
		game.Reset(ctx)

		// Then: it is back to its initial state
		assert.Equal(t, NewGame("g6", nil).Snapshot(), game.Snapshot())
		assert.Equal(t, entity.First, game.CurrentPlayer())
	})

	t.Run("Reset is idempotent", func(t *testing.T) {
		// Given: a game in progress
		game := NewGame("g7", nil)
		playMoves(t, game, 4, 0)

		// When: reset is called twice
		game.Reset(ctx)
		first := game.Snapshot()
		game.Reset(ctx)

		// Then: both resets leave the same initial state
		assert.Equal(t, first, game.Snapshot())
		assert.Equal(t, entity.Board{}, game.Board())
		assert.Equal(t, entity.Ongoing(), game.Outcome())
	})

	t.Run("Reset announces X's turn", func(t *testing.T) {
		notifier := &mockNotifier{}
		game := NewGame("g8", notifier)

		notifier.On("TurnChanged", ctx, mock.MatchedBy(func(s Snapshot) bool {
			return s.Turn == entity.PlayerX && s.MovesPlayed == 0
		})).Return().Once()

		game.Reset(ctx)

		notifier.AssertExpectations(t)
	})
}

func TestNotifiers(t *testing.T) {
	ctx := context.Background()
	snapshot := Snapshot{ID: "g9", Status: entity.StatusDraw}

	// Given: two notifiers behind a fan-out
	first, second := &mockNotifier{}, &mockNotifier{}
	first.On("GameEnded", ctx, snapshot).Return().Once()
	second.On("GameEnded", ctx, snapshot).Return().Once()
	first.On("TurnChanged", ctx, snapshot).Return().Once()
	second.On("TurnChanged", ctx, snapshot).Return().Once()

	notifiers := Notifiers{first, second, NopNotifier{}}

	// When: events are raised
	notifiers.GameEnded(ctx, snapshot)
	notifiers.TurnChanged(ctx, snapshot)

	// Then: every notifier receives them
	first.AssertExpectations(t)
	second.AssertExpectations(t)
}

func TestMoveResult_String(t *testing.T) {
	assert.Equal(t, "accepted", Accepted.String())
	assert.Equal(t, "cell occupied", CellOccupied.String())
	assert.Equal(t, "game already over", GameAlreadyOver.String())
	assert.Equal(t, "index out of range", IndexOutOfRange.String())
}
