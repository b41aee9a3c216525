package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tris/internal/apperror"
)

// Mark is the content of a cell, or the side to move when used as Board.Turn.
type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"

	// Tie is only ever stored in Game.Winner.
	Tie Mark = "-"
)

const (
	boardSize = 3
	cellCount = boardSize * boardSize
)

// Opponent returns the other player's mark.
func (m Mark) Opponent() Mark {
	if m == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Outcome of a board from X's point of view.
type Outcome int

const (
	OutcomeUndecided Outcome = iota
	OutcomeWin
	OutcomeLoss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "undecided"
	}
}

// WinCombos lists the cell indexes of the 3 rows, 3 columns, main diagonal and anti-diagonal, in that order.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid plus the mark that moves next. It is a value type:
// every transition returns a new Board and never touches the receiver.
type Board struct {
	Cells [cellCount]Mark `json:"cells"`
	Turn  Mark            `json:"turn"`
}

// NewBoard returns an empty grid with turn to move.
func NewBoard(turn Mark) Board {
	return Board{Turn: turn}
}

func index(row, col int) (int, error) {
	if row < 0 || row >= boardSize || col < 0 || col >= boardSize {
		return 0, fmt.Errorf("%w: row %d, column %d", apperror.ErrOutOfRange, row, col)
	}
	return row*boardSize + col, nil
}

// CellAt returns the mark at the 0-based position.
func (that Board) CellAt(row, col int) (Mark, error) {
	i, err := index(row, col)
	if err != nil {
		return EmptyCell, err
	}
	return that.Cells[i], nil
}

// Place writes the current turn's mark at the 0-based position and flips the turn.
func (that Board) Place(row, col int) (Board, error) {
	i, err := index(row, col)
	if err != nil {
		return that, err
	}

	if that.Cells[i] != EmptyCell {
		return that, fmt.Errorf("%w: row %d, column %d", apperror.ErrCellOccupied, row, col)
	}

	return that.placeAt(i), nil
}

func (that Board) placeAt(i int) Board {
	next := that
	next.Cells[i] = that.Turn
	next.Turn = that.Turn.Opponent()
	return next
}

// Successors returns every board reachable with one move, in cell order.
func (that Board) Successors() []Board {
	children := make([]Board, 0, that.EmptyCount())
	for i, cell := range that.Cells {
		if cell == EmptyCell {
			children = append(children, that.placeAt(i))
		}
	}
	return children
}

// Lines returns the marks of each line in the order of WinCombos.
func (that Board) Lines() [8][3]Mark {
	var lines [8][3]Mark
	for i, line := range WinCombos {
		lines[i] = [3]Mark{that.Cells[line[0]], that.Cells[line[1]], that.Cells[line[2]]}
	}
	return lines
}

func (that Board) Outcome() Outcome {
	for _, line := range that.Lines() {
		if line[0] == EmptyCell || line[0] != line[1] || line[1] != line[2] {
			continue
		}

		if line[0] == PlayerX {
			return OutcomeWin
		}
		return OutcomeLoss
	}

	return OutcomeUndecided
}

func (that Board) EmptyCount() int {
	count := 0
	for _, cell := range that.Cells {
		if cell == EmptyCell {
			count++
		}
	}
	return count
}

func (that Board) IsTerminal() bool {
	return that.EmptyCount() == 0 || that.Outcome() != OutcomeUndecided
}

// Utility scores the board for X. Wins and losses are scaled by the empty
// cells left, so a quicker win is worth more and a quicker loss costs more.
func (that Board) Utility() int {
	switch that.Outcome() {
	case OutcomeWin:
		return 1 + that.EmptyCount()
	case OutcomeLoss:
		return -(1 + that.EmptyCount())
	default:
		return 0
	}
}

// Winner maps the outcome to a mark: X, O, Tie for a full board, EmptyCell otherwise.
func (that Board) Winner() Mark {
	switch that.Outcome() {
	case OutcomeWin:
		return PlayerX
	case OutcomeLoss:
		return PlayerO
	}

	if that.EmptyCount() == 0 {
		return Tie
	}
	return EmptyCell
}

// String renders the grid the way it is printed in logs.
func (that Board) String() string {
	var sb strings.Builder
	for row := range boardSize {
		cells := make([]string, boardSize)
		for col := range boardSize {
			cells[col] = string(that.Cells[row*boardSize+col])
			if cells[col] == "" {
				cells[col] = " "
			}
		}
		sb.WriteString(strings.Join(cells, " | "))
		if row < boardSize-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// ApplyUserMove places the current turn's mark at a 1-based row and column.
func ApplyUserMove(board Board, row, col int) (Board, error) {
	if row < 1 || row > boardSize || col < 1 || col > boardSize {
		return board, fmt.Errorf("%w: row %d, column %d", apperror.ErrOutOfRange, row, col)
	}

	return board.Place(row-1, col-1)
}
