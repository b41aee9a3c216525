package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tris/internal/entity"
)

type GameUseCase interface {
	StartGame(ctx context.Context, humanFirst bool) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, row, col int) (*entity.Game, error)
}

type gamePlayService interface {
	StartGame(ctx context.Context, humanFirst bool) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, row, col int) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game)
}

type gameUseCase struct {
	gamePlayService gamePlayService
}

func NewGameUseCase(gamePlayService gamePlayService) GameUseCase {
	return &gameUseCase{
		gamePlayService: gamePlayService,
	}
}

func (that *gameUseCase) StartGame(ctx context.Context, humanFirst bool) (*entity.Game, error) {
	game, err := that.gamePlayService.StartGame(ctx, humanFirst)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	return game, nil
}

// MakeTurn plays a 1-based move. Finished games are removed from storage,
// the returned game still holds the final board.
func (that *gameUseCase) MakeTurn(ctx context.Context, gameID string, row, col int) (*entity.Game, error) {
	game, err := that.gamePlayService.MakeTurn(ctx, gameID, row, col)
	if err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsFinished() {
		that.gamePlayService.CleanupGame(ctx, game)
	}

	return game, nil
}
