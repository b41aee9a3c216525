package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tris/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

var (
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrIllegalBoard      = errors.New("board is not a successor of the current one")
)

// Game is one human-versus-bot session. Whoever moves first plays X.
type Game struct {
	ID         string `json:"id"`
	Board      Board  `json:"board"`
	Human      Mark   `json:"human"`
	Bot        Mark   `json:"bot"`
	Winner     Mark   `json:"winner"`
	Status     string `json:"status"`
	Difficulty string `json:"difficulty"`
}

func NewGame(id string, humanFirst bool, difficulty string) *Game {
	human, bot := PlayerO, PlayerX
	if humanFirst {
		human, bot = PlayerX, PlayerO
	}

	return &Game{
		ID:         id,
		Board:      NewBoard(PlayerX),
		Human:      human,
		Bot:        bot,
		Status:     StatusOngoing,
		Difficulty: difficulty,
	}
}

func (that *Game) UpdateGameState() {
	switch winner := that.Board.Winner(); winner {
	// one player wins or the board is full
	case PlayerX, PlayerO, Tie:
		that.Winner = winner
		that.Status = StatusFinished
	// game continue
	default:
		that.Winner = EmptyCell
		that.Status = StatusOngoing
	}
}

// ApplyUserMove plays the human's move at a 1-based row and column.
// The game is left untouched when an error is returned.
func (that *Game) ApplyUserMove(row, col int) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Board.Turn != that.Human {
		return apperror.ErrNotYourTurn
	}

	next, err := ApplyUserMove(that.Board, row, col)
	if err != nil {
		return err
	}

	that.Board = next
	that.UpdateGameState()

	return nil
}

// ApplyBoard installs a successor chosen by the bot.
func (that *Game) ApplyBoard(next Board) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Board.Turn != that.Bot {
		return apperror.ErrNotYourTurn
	}

	if !that.isSuccessor(next) {
		return ErrIllegalBoard
	}

	that.Board = next
	that.UpdateGameState()

	return nil
}

func (that *Game) isSuccessor(next Board) bool {
	for _, child := range that.Board.Successors() {
		if child == next {
			return true
		}
	}
	return false
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Board.Turn == that.Bot
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
