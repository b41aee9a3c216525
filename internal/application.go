package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tris/internal/config"
	"github.com/rocketscienceinc/tris/internal/console"
	"github.com/rocketscienceinc/tris/internal/entity"
	"github.com/rocketscienceinc/tris/internal/repository"
	"github.com/rocketscienceinc/tris/internal/repository/storage"
	"github.com/rocketscienceinc/tris/internal/search"
	"github.com/rocketscienceinc/tris/internal/service"
	"github.com/rocketscienceinc/tris/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the interactive game until the user quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameRepo, closeRepo, err := newGameRepository(ctx, conf)
	if err != nil {
		return err
	}
	defer func() {
		if err = closeRepo(); err != nil {
			log.Error("could not close game storage", "error", err)
		}
	}()

	gameService := service.NewGameService(gameRepo)
	botService := service.NewBotService(logger)
	gamePlayService := service.NewGamePlayService(logger, gameService, botService, service.Options{
		Difficulty:    conf.Game.Difficulty,
		RandomOpening: conf.Game.RandomOpening(),
	})
	gameUseCase := usecase.NewGameUseCase(gamePlayService)

	// reads from in block, ctx is watched by the select below
	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console", "storage", conf.Storage.Driver, "difficulty", conf.Game.Difficulty)
		consoleErrCh <- console.New(logger, gameUseCase, in, out).Run(ctx)
	}()

	select {
	case err = <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, func() error, error) {
	if conf.Storage.Driver != config.DriverRedis {
		return repository.NewMemoryGameRepository(), func() error { return nil }, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewGameRepository(redisStorage.Connection, conf.Redis.TTL), redisStorage.Close, nil
}

// RunBench runs both search algorithms on the empty board and prints what each one cost.
func RunBench(logger *slog.Logger, out io.Writer) error {
	log := logger.With("component", "bench")
	board := entity.NewBoard(entity.PlayerX)

	if _, err := fmt.Fprintf(out, "%-12s %6s %10s %14s\n", "algorithm", "value", "nodes", "elapsed"); err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}

	for _, algorithm := range []search.Algorithm{search.AlgorithmMinimax, search.AlgorithmPruning} {
		report, err := search.Profile(algorithm, board)
		if err != nil {
			return fmt.Errorf("could not profile %s: %w", algorithm, err)
		}

		log.Debug("search finished", "algorithm", algorithm, "nodes", report.Nodes, "elapsed", report.Elapsed)

		_, err = fmt.Fprintf(out, "%-12s %6d %10d %14s\n", report.Algorithm, report.Value, report.Nodes, report.Elapsed)
		if err != nil {
			return fmt.Errorf("could not write report: %w", err)
		}
	}

	return nil
}
