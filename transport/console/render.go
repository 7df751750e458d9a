package console

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

const rowSeparator = "---+---+---\n"

// renderBoard draws the grid; empty cells show the number that plays them.
func renderBoard(board entity.Board) string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString(rowSeparator)
		}

		for col := 0; col < 3; col++ {
			cell := row*3 + col

			label := board[cell]
			if label == entity.EmptyCell {
				label = strconv.Itoa(cell + 1)
			}

			if col > 0 {
				sb.WriteString("|")
			}
			sb.WriteString(" " + label + " ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func turnMessage(game tictactoe.Snapshot) string {
	return "Player " + game.Turn + "'s turn"
}

func resultMessage(game tictactoe.Snapshot) string {
	if game.Status == entity.StatusDraw {
		return "It's a draw!"
	}
	return "Player " + game.Winner + " has won!"
}
