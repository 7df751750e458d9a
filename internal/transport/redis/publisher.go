package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

const (
	EventTurnChanged = "turn_changed"
	EventGameEnded   = "game_ended"
)

// Event is the JSON message published on the channel.
type Event struct {
	Type string             `json:"type"`
	Game tictactoe.Snapshot `json:"game"`
}

// Publisher forwards game events to a Redis Pub/Sub channel. It is a
// tictactoe.Notifier; failures are logged and never reach the game.
type Publisher struct {
	logger  *slog.Logger
	client  *redis.Client
	channel string
}

func NewPublisher(logger *slog.Logger, client *redis.Client, channel string) *Publisher {
	return &Publisher{
		logger:  logger.With("component", "redis_publisher", "channel", channel),
		client:  client,
		channel: channel,
	}
}

func (that *Publisher) TurnChanged(ctx context.Context, game tictactoe.Snapshot) {
	if err := that.Publish(ctx, Event{Type: EventTurnChanged, Game: game}); err != nil {
		that.logger.Error("failed to publish turn", "gameID", game.ID, "error", err)
	}
}

func (that *Publisher) GameEnded(ctx context.Context, game tictactoe.Snapshot) {
	if err := that.Publish(ctx, Event{Type: EventGameEnded, Game: game}); err != nil {
		that.logger.Error("failed to publish game end", "gameID", game.ID, "error", err)
	}
}

// Publish - sends a single event to the channel.
func (that *Publisher) Publish(ctx context.Context, event Event) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
