package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

const (
	firstRound = 1
	lastRound  = entity.BoardSize
)

// WinCombos lists every line of the board: rows, columns, then diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Engine owns turn order and the outcome of one game. It never owns the board.
type Engine struct {
	round   int
	outcome entity.Outcome
}

func NewEngine() *Engine {
	return &Engine{
		round:   firstRound,
		outcome: entity.Ongoing(),
	}
}

// CurrentPlayer is First on odd rounds and Second on even ones.
func (that *Engine) CurrentPlayer() entity.Player {
	if that.round%2 == 1 {
		return entity.First
	}
	return entity.Second
}

// MovesPlayed returns how many marks have been placed in this game.
func (that *Engine) MovesPlayed() int {
	if that.outcome.IsOver() {
		return that.round
	}
	return that.round - 1
}

func (that *Engine) Outcome() entity.Outcome {
	return that.outcome
}

func (that *Engine) IsOver() bool {
	return that.outcome.IsOver()
}

// PlayRound places the current player's mark at cell and advances the game.
// A rejected move leaves both the board and the engine untouched.
func (that *Engine) PlayRound(board *entity.Board, cell int) error {
	if that.IsOver() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(board, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	player := that.CurrentPlayer()
	board.SetField(cell, player.Mark())

	that.updateGameStatus(board, cell, player)

	return nil
}

// Reset starts a new game. The board has to be reset separately.
func (that *Engine) Reset() {
	that.round = firstRound
	that.outcome = entity.Ongoing()
}

// validateMove - checks if the move is valid.
func validateMove(board *entity.Board, cell int) error {
	if !board.InRange(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !board.IsEmpty(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func (that *Engine) updateGameStatus(board *entity.Board, cell int, player entity.Player) {
	switch {
	case isWinningMove(board, cell, player.Mark()):
		that.outcome = entity.Won(player)
	case that.round == lastRound:
		that.outcome = entity.Draw()
	default:
		that.round++
	}
}

// isWinningMove reports whether mark owns a whole line through cell.
// Only lines through the last placed mark can have just been completed.
func isWinningMove(board *entity.Board, cell int, mark string) bool {
	for _, combo := range LinesThrough(cell) {
		if board.GetField(combo[0]) == mark && board.GetField(combo[1]) == mark && board.GetField(combo[2]) == mark {
			return true
		}
	}

	return false
}

// LinesThrough returns the lines containing cell: 3 for corners, 2 for edges, 4 for the centre.
func LinesThrough(cell int) [][3]int {
	lines := make([][3]int, 0, 4)
	for _, combo := range WinCombos {
		if combo[0] == cell || combo[1] == cell || combo[2] == cell {
			lines = append(lines, combo)
		}
	}

	return lines
}
