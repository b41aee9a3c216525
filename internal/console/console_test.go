package console

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tris/internal/apperror"
	"github.com/rocketscienceinc/tris/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGameUseCase struct {
	mock.Mock
}

func (m *mockGameUseCase) StartGame(ctx context.Context, humanFirst bool) (*entity.Game, error) {
	args := m.Called(ctx, humanFirst)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGameUseCase) MakeTurn(ctx context.Context, gameID string, row, col int) (*entity.Game, error) {
	args := m.Called(ctx, gameID, row, col)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func newConsole(games gameUseCase, input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(logger, games, strings.NewReader(input), out), out
}

func finishedGame(id string, cells [9]entity.Mark) *entity.Game {
	game := entity.NewGame(id, true, entity.DifficultyHard)
	game.Board = entity.Board{Cells: cells, Turn: entity.PlayerO}
	game.UpdateGameState()
	return game
}

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestConsole_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Re-prompts on bad input until the game ends", func(t *testing.T) {
		// Given: a human-first game that X wins on row 1, column 3
		games := &mockGameUseCase{}
		start := entity.NewGame("g1", true, entity.DifficultyHard)
		start.Board = entity.Board{Cells: [9]entity.Mark{x, x, e, o, o, e, e, e, e}, Turn: x}
		won := finishedGame("g1", [9]entity.Mark{x, x, x, o, o, e, e, e, e})

		games.On("StartGame", mock.Anything, true).Return(start, nil).Once()
		games.On("MakeTurn", mock.Anything, "g1", 0, 3).Return(start, fmt.Errorf("wrapped: %w", apperror.ErrOutOfRange)).Once()
		games.On("MakeTurn", mock.Anything, "g1", 1, 1).Return(start, apperror.ErrCellOccupied).Once()
		games.On("MakeTurn", mock.Anything, "g1", 1, 3).Return(won, nil).Once()

		console, out := newConsole(games, "y\nhello\n0 3\n1 1\n1 3\nq\n")

		// When: the session runs
		err := console.Run(ctx)

		// Then: every problem was reported and the winner announced
		require.NoError(t, err)
		output := out.String()
		assert.Contains(t, output, promptFirst)
		assert.Contains(t, output, msgMalformed)
		assert.Contains(t, output, msgOutOfRange)
		assert.Contains(t, output, msgOccupied)
		assert.Contains(t, output, "X won!")
		assert.Contains(t, output, promptRestart)
		games.AssertExpectations(t)
	})

	t.Run("Restarts until Q", func(t *testing.T) {
		games := &mockGameUseCase{}
		draw := finishedGame("g2", [9]entity.Mark{x, o, x, x, o, o, o, x, x})
		lost := finishedGame("g3", [9]entity.Mark{o, o, o, x, x, e, x, e, e})

		games.On("StartGame", mock.Anything, false).Return(draw, nil).Once()
		games.On("StartGame", mock.Anything, true).Return(lost, nil).Once()

		console, out := newConsole(games, "n\n\nY\nQ\n")

		require.NoError(t, console.Run(ctx))

		assert.Contains(t, out.String(), "It's a draw.")
		assert.Contains(t, out.String(), "O won!")
		assert.Equal(t, 2, strings.Count(out.String(), promptFirst))
		games.AssertExpectations(t)
	})

	t.Run("End of input stops the session", func(t *testing.T) {
		games := &mockGameUseCase{}
		games.On("StartGame", mock.Anything, true).Return(entity.NewGame("g4", true, entity.DifficultyHard), nil).Once()

		console, out := newConsole(games, "y\n")

		require.NoError(t, console.Run(ctx))
		assert.Contains(t, out.String(), promptMove)
	})

	t.Run("Storage failures are returned", func(t *testing.T) {
		errDown := errors.New("redis down")
		games := &mockGameUseCase{}
		games.On("StartGame", mock.Anything, true).Return(entity.NewGame("g5", true, entity.DifficultyHard), nil).Once()
		games.On("MakeTurn", mock.Anything, "g5", 2, 2).Return(nil, errDown).Once()

		console, _ := newConsole(games, "y\n2 2\n")

		assert.ErrorIs(t, console.Run(ctx), errDown)
	})
}

func TestConsole_RenderBoard(t *testing.T) {
	console, _ := newConsole(&mockGameUseCase{}, "")

	board := entity.Board{Cells: [9]entity.Mark{x, e, o, e, x, e, e, e, o}, Turn: x}
	rendered := console.renderBoard(board)

	lines := strings.Split(rendered, "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "X |   | O")
	assert.Contains(t, lines[1], "---+---+---")
	assert.Contains(t, lines[2], "  | X |  ")
	assert.Contains(t, lines[4], "  |   | O")
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		input    string
		row, col int
		ok       bool
	}{
		{input: "1 3", row: 1, col: 3, ok: true},
		{input: "  2   2 ", row: 2, col: 2, ok: true},
		{input: "0 4", row: 0, col: 4, ok: true},
		{input: "1", ok: false},
		{input: "a b", ok: false},
		{input: "1 2 3", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			row, col, ok := parseMove(tt.input)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.row, row)
				assert.Equal(t, tt.col, col)
			}
		})
	}
}
