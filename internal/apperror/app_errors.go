package apperror

import "errors"

var (
	ErrOutOfRange   = errors.New("row or column out of range")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
)
