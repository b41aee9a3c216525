package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rocketscienceinc/tris/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errRedisDown = errors.New("redis down")

type mockGameRepo struct {
	mock.Mock
}

func (m *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*entity.Game), args.Error(1)
}

func (m *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestGameService_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a new game with a generated id", func(t *testing.T) {
		// Given: a repository that accepts writes
		repo := &mockGameRepo{}
		repo.On("CreateOrUpdate", mock.Anything, mock.AnythingOfType("*entity.Game")).Return(nil).Once()
		gameService := NewGameService(repo)

		// When: creating a game where the human moves first
		game, err := gameService.CreateGame(ctx, true, entity.DifficultyMedium)

		// Then: the game is stored with an id and the human plays X
		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.Equal(t, entity.PlayerX, game.Human)
		assert.Equal(t, entity.DifficultyMedium, game.Difficulty)
		repo.AssertExpectations(t)
	})

	t.Run("Returns the storage error", func(t *testing.T) {
		repo := &mockGameRepo{}
		repo.On("CreateOrUpdate", mock.Anything, mock.Anything).Return(errRedisDown).Once()
		gameService := NewGameService(repo)

		game, err := gameService.CreateGame(ctx, false, entity.DifficultyHard)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
	})
}

func TestGameService_GetGameByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the stored game", func(t *testing.T) {
		stored := entity.NewGame("123", true, entity.DifficultyHard)
		repo := &mockGameRepo{}
		repo.On("GetByID", mock.Anything, "123").Return(stored, nil).Once()

		game, err := NewGameService(repo).GetGameByID(ctx, "123")

		require.NoError(t, err)
		assert.Equal(t, stored, game)
	})

	t.Run("Wraps the repository error", func(t *testing.T) {
		repo := &mockGameRepo{}
		repo.On("GetByID", mock.Anything, "123").Return(&entity.Game{}, errRedisDown).Once()

		game, err := NewGameService(repo).GetGameByID(ctx, "123")

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
	})
}

func TestGameService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	game := entity.NewGame("123", true, entity.DifficultyHard)

	repo := &mockGameRepo{}
	repo.On("CreateOrUpdate", mock.Anything, game).Return(nil).Once()
	repo.On("DeleteByID", mock.Anything, "123").Return(errRedisDown).Once()
	gameService := NewGameService(repo)

	require.NoError(t, gameService.UpdateGame(ctx, game))
	require.ErrorIs(t, gameService.DeleteGame(ctx, "123"), errRedisDown)
	repo.AssertExpectations(t)
}
