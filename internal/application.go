package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-core/internal/config"
	"github.com/rocketscienceinc/tictactoe-core/internal/repository"
	"github.com/rocketscienceinc/tictactoe-core/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-core/internal/transport/redis"
	"github.com/rocketscienceinc/tictactoe-core/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-core/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	terminal := console.New(logger, os.Stdout, conf.Console.Prompt)
	notifiers := tictactoe.Notifiers{terminal}

	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisClient, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisClient.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		log.Info("Publishing game events", "addr", redisAddrString, "channel", conf.Redis.Channel)
		notifiers = append(notifiers, redis.NewPublisher(logger, redisClient, conf.Redis.Channel))
	}

	gameRepo := repository.NewGameRepository()
	gameManager := usecase.NewGameManager(logger, gameRepo, notifiers)

	// run console session
	consoleErrCh := make(chan error, 1)
	go func() {
		consoleErrCh <- terminal.Run(ctx, os.Stdin, gameManager)
	}()

	select {
	case err := <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console session error: %w", err)
		}
		log.Info("Console session finished")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
