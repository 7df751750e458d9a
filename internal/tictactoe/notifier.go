package tictactoe

import "context"

// Notifier receives the two events a game raises. Calls happen synchronously,
// after the move that caused them has been fully applied.
type Notifier interface {
	// TurnChanged is raised when the game continues; game.Turn names the next player.
	TurnChanged(ctx context.Context, game Snapshot)
	// GameEnded is raised once per game, on the winning or drawing move.
	GameEnded(ctx context.Context, game Snapshot)
}

// Notifiers fans every event out to each notifier in order.
type Notifiers []Notifier

func (that Notifiers) TurnChanged(ctx context.Context, game Snapshot) {
	for _, notifier := range that {
		notifier.TurnChanged(ctx, game)
	}
}

func (that Notifiers) GameEnded(ctx context.Context, game Snapshot) {
	for _, notifier := range that {
		notifier.GameEnded(ctx, game)
	}
}

type NopNotifier struct{}

func (NopNotifier) TurnChanged(context.Context, Snapshot) {}

func (NopNotifier) GameEnded(context.Context, Snapshot) {}
