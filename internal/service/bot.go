package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/rocketscienceinc/tris/internal/entity"
	"github.com/rocketscienceinc/tris/internal/search"
)

var (
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

type BotService interface {
	// MakeTurn plays the bot's move according to the game's difficulty.
	MakeTurn(game *entity.Game) error
	// MakeRandomTurn plays a uniformly random legal move for the bot.
	MakeRandomTurn(game *entity.Game) error
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

func (that *botService) MakeTurn(game *entity.Game) error {
	next, err := that.chooseMove(game.Board, game.Difficulty)
	if err != nil {
		return err
	}

	return that.play(game, next)
}

func (that *botService) MakeRandomTurn(game *entity.Game) error {
	next, err := randomMove(game.Board)
	if err != nil {
		return err
	}

	return that.play(game, next)
}

func (that *botService) play(game *entity.Game, next entity.Board) error {
	if err := game.ApplyBoard(next); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot moved", "game_id", game.ID, "difficulty", game.Difficulty, "board", next.String())

	return nil
}

func (that *botService) chooseMove(board entity.Board, difficulty string) (entity.Board, error) {
	if board.IsTerminal() {
		return board, ErrNoAvailableMoves
	}

	switch difficulty {
	case entity.DifficultyEasy:
		return randomMove(board)
	case entity.DifficultyMedium:
		return tacticalMove(board)
	case entity.DifficultyHard, "":
		return search.BestMove(board), nil
	default:
		return board, fmt.Errorf("%w: %s", ErrUnknownDifficulty, difficulty)
	}
}

func randomMove(board entity.Board) (entity.Board, error) {
	successors := board.Successors()
	if len(successors) == 0 || board.IsTerminal() {
		return board, ErrNoAvailableMoves
	}

	return successors[rand.IntN(len(successors))], nil //nolint: gosec // it's ok
}

// tacticalMove wins if it can, blocks if it must, otherwise moves randomly.
func tacticalMove(board entity.Board) (entity.Board, error) {
	for _, mark := range []entity.Mark{board.Turn, board.Turn.Opponent()} {
		if cell, ok := winningCell(board, mark); ok {
			return board.Place(cell/3, cell%3)
		}
	}

	return randomMove(board)
}

// winningCell finds an empty cell that would complete a line for mark.
func winningCell(board entity.Board, mark entity.Mark) (int, bool) {
	probe := board
	probe.Turn = mark

	for i, cell := range board.Cells {
		if cell != entity.EmptyCell {
			continue
		}

		next, err := probe.Place(i/3, i%3)
		if err == nil && next.Winner() == mark {
			return i, true
		}
	}

	return 0, false
}
