package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

const helpText = `Commands:
  1-9        place your mark on that cell
  r, restart start a new round
  q, quit    leave the game
  h, help    show this help
`

type gameManager interface {
	NewGame(ctx context.Context) (*tictactoe.Game, error)
	MakeTurn(ctx context.Context, gameID string, cell int) (*tictactoe.Game, error)
	ResetGame(ctx context.Context, gameID string) (*tictactoe.Game, error)
	EndGame(ctx context.Context, gameID string) error
}

// errQuit stops the read loop.
var errQuit = errors.New("quit")

// Console is the terminal front end. It renders every game event it is
// notified about and relays typed cell numbers to the game manager.
type Console struct {
	logger *slog.Logger
	out    io.Writer
	prompt string

	handlers map[string]commandHandler
}

type commandHandler func(ctx context.Context, manager gameManager, game *tictactoe.Game) error

func New(logger *slog.Logger, out io.Writer, prompt string) *Console {
	console := &Console{
		logger: logger.With("component", "console"),
		out:    out,
		prompt: prompt,
	}

	console.handlers = map[string]commandHandler{
		"h":       console.handleHelp,
		"help":    console.handleHelp,
		"q":       console.handleQuit,
		"quit":    console.handleQuit,
		"exit":    console.handleQuit,
		"r":       console.handleRestart,
		"restart": console.handleRestart,
	}

	return console
}

// TurnChanged draws the board and names the player to move.
func (that *Console) TurnChanged(_ context.Context, game tictactoe.Snapshot) {
	that.announce(game)
}

// GameEnded draws the final board and the result.
func (that *Console) GameEnded(_ context.Context, game tictactoe.Snapshot) {
	that.announce(game)
}

func (that *Console) announce(game tictactoe.Snapshot) {
	if game.IsOver() {
		that.print(renderBoard(game.Board) + resultMessage(game) + "\nType r to play again or q to quit.\n")
		return
	}

	that.print(renderBoard(game.Board) + turnMessage(game) + "\n")
}

// Run plays one session: it starts a game and reads commands from in until
// quit, end of input, or ctx is done.
func (that *Console) Run(ctx context.Context, in io.Reader, manager gameManager) error {
	log := that.logger.With("method", "Run")

	game, err := manager.NewGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	defer func() {
		if err := manager.EndGame(context.WithoutCancel(ctx), game.ID()); err != nil {
			log.Error("failed to end game", "gameID", game.ID(), "error", err)
		}
	}()

	scanner := bufio.NewScanner(in)
	for {
		if ctx.Err() != nil {
			return nil
		}

		that.print(that.prompt)

		if !scanner.Scan() {
			break
		}

		err = that.handleCommand(ctx, manager, game, strings.TrimSpace(scanner.Text()))
		if errors.Is(err, errQuit) {
			log.Info("player quit", "gameID", game.ID())
			return nil
		}

		if err != nil {
			log.Error("error processing command", "error", err)
		}
	}

	if err = scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

// handleCommand - dispatches one line of input.
func (that *Console) handleCommand(ctx context.Context, manager gameManager, game *tictactoe.Game, input string) error {
	if input == "" {
		return nil
	}

	command := strings.ToLower(input)

	if handler, ok := that.handlers[command]; ok {
		return handler(ctx, manager, game)
	}

	number, err := strconv.Atoi(command)
	if err != nil {
		that.print(fmt.Sprintf("Unknown command %q. Type h for help.\n", input))
		return nil
	}

	return that.handleMove(ctx, manager, game, number)
}

func (that *Console) handleMove(ctx context.Context, manager gameManager, game *tictactoe.Game, number int) error {
	if game.IsOver() {
		that.print("The game is over. Type r to play again or q to quit.\n")
		return nil
	}

	_, err := manager.MakeTurn(ctx, game.ID(), number-1)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperror.ErrInvalidCell):
		that.print("Pick a cell between 1 and 9.\n")
		return nil
	case errors.Is(err, apperror.ErrCellOccupied):
		that.print(fmt.Sprintf("Cell %d is already taken.\n", number))
		return nil
	case errors.Is(err, apperror.ErrGameFinished):
		that.print("The game is over. Type r to play again or q to quit.\n")
		return nil
	default:
		that.print("Something went wrong, try again.\n")
		return fmt.Errorf("failed to make turn: %w", err)
	}
}

func (that *Console) handleRestart(ctx context.Context, manager gameManager, game *tictactoe.Game) error {
	if _, err := manager.ResetGame(ctx, game.ID()); err != nil {
		return fmt.Errorf("failed to reset game: %w", err)
	}

	return nil
}

func (that *Console) handleHelp(_ context.Context, _ gameManager, _ *tictactoe.Game) error {
	that.print(helpText)
	return nil
}

func (that *Console) handleQuit(_ context.Context, _ gameManager, _ *tictactoe.Game) error {
	that.print("Bye!\n")
	return errQuit
}

func (that *Console) print(text string) {
	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
