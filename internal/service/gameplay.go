package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tris/internal/entity"
)

type GamePlayService interface {
	StartGame(ctx context.Context, humanFirst bool) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, row, col int) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game)
}

// Options control how the bot plays new games.
type Options struct {
	Difficulty    string
	RandomOpening bool
}

type gamePlayService struct {
	logger *slog.Logger

	gameService GameService
	botService  BotService
	options     Options
}

func NewGamePlayService(logger *slog.Logger, gameService GameService, botService BotService, options Options) GamePlayService {
	return &gamePlayService{
		logger:      logger.With("component", "gameplay"),
		gameService: gameService,
		botService:  botService,
		options:     options,
	}
}

// StartGame creates a game and, when the bot moves first, plays its opening.
func (that *gamePlayService) StartGame(ctx context.Context, humanFirst bool) (*entity.Game, error) {
	game, err := that.gameService.CreateGame(ctx, humanFirst, that.options.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if game.IsBotTurn() {
		// all openings have game value 0
		if that.options.RandomOpening {
			err = that.botService.MakeRandomTurn(game)
		} else {
			err = that.botService.MakeTurn(game)
		}
		if err != nil {
			return nil, fmt.Errorf("bot failed to open: %w", err)
		}

		if err = that.gameService.UpdateGame(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to update game: %w", err)
		}
	}

	that.logger.Info("game started", "game_id", game.ID, "human", game.Human, "difficulty", game.Difficulty)

	return game, nil
}

// MakeTurn plays the human's 1-based move and the bot's reply. On a rejected
// move the unchanged game is returned together with the error.
func (that *gamePlayService) MakeTurn(ctx context.Context, gameID string, row, col int) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.ApplyUserMove(row, col); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsBotTurn() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		that.logger.Info("game finished", "game_id", game.ID, "winner", game.Winner)
	}

	return game, nil
}

func (that *gamePlayService) CleanupGame(ctx context.Context, game *entity.Game) {
	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil {
		that.logger.Error("failed to delete game", "game_id", game.ID, "error", err)
	}
}
