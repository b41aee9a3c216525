// Package console runs games against the bot on a terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tris/internal/apperror"
	"github.com/rocketscienceinc/tris/internal/entity"
)

const (
	promptFirst   = "Do you want to play first? (Y or N)"
	promptMove    = "Insert row and column separated by a space."
	promptRestart = "Send Q to exit, or any key to restart."

	msgOutOfRange = "Wrong row or column number, try again."
	msgOccupied   = "Cell occupied, try again."
	msgMalformed  = "Please insert two numbers, for example: 2 3"
)

type gameUseCase interface {
	StartGame(ctx context.Context, humanFirst bool) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, row, col int) (*entity.Game, error)
}

type Console struct {
	logger *slog.Logger
	games  gameUseCase

	in  *bufio.Scanner
	out io.Writer

	styles styles
}

type styles struct {
	x, o, grid, message, warning lipgloss.Style
	board                        lipgloss.Style
}

func newStyles(out io.Writer) styles {
	renderer := lipgloss.NewRenderer(out)

	return styles{
		x:       renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7")),
		o:       renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#F4D03F")),
		grid:    renderer.NewStyle().Foreground(lipgloss.Color("#2C4A54")),
		message: renderer.NewStyle().Bold(true),
		warning: renderer.NewStyle().Foreground(lipgloss.Color("#E74C3C")),
		board:   renderer.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#16858E")).Padding(0, 1),
	}
}

func New(logger *slog.Logger, games gameUseCase, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		games:  games,
		in:     bufio.NewScanner(in),
		out:    out,
		styles: newStyles(out),
	}
}

// Run plays games until the user quits or the input ends.
func (that *Console) Run(ctx context.Context) error {
	for {
		humanFirst, err := that.askFirst()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		game, err := that.games.StartGame(ctx, humanFirst)
		if err != nil {
			return fmt.Errorf("could not start game: %w", err)
		}

		game, err = that.play(ctx, game)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		that.showBoard(game.Board)
		that.println(that.styles.message.Render(resultMessage(game)))

		answer, err := that.prompt(promptRestart)
		if errors.Is(err, io.EOF) || strings.EqualFold(strings.TrimSpace(answer), "q") {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (that *Console) play(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	for game.IsOngoing() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		that.showBoard(game.Board)

		row, col, err := that.readMove()
		if err != nil {
			return nil, err
		}

		next, err := that.games.MakeTurn(ctx, game.ID, row, col)
		switch {
		case errors.Is(err, apperror.ErrOutOfRange):
			that.println(that.styles.warning.Render(msgOutOfRange))
			continue
		case errors.Is(err, apperror.ErrCellOccupied):
			that.println(that.styles.warning.Render(msgOccupied))
			continue
		case err != nil:
			return nil, fmt.Errorf("could not make turn: %w", err)
		}

		game = next
	}

	return game, nil
}

func (that *Console) askFirst() (bool, error) {
	answer, err := that.prompt(promptFirst)
	if err != nil {
		return false, err
	}

	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}

// readMove keeps prompting until the line holds two integers.
func (that *Console) readMove() (int, int, error) {
	for {
		line, err := that.prompt(promptMove)
		if err != nil {
			return 0, 0, err
		}

		row, col, ok := parseMove(line)
		if ok {
			return row, col, nil
		}

		that.logger.Debug("malformed move", "input", line)
		that.println(that.styles.warning.Render(msgMalformed))
	}
}

func parseMove(line string) (int, int, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, false
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, false
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, false
	}

	return row, col, true
}

func (that *Console) prompt(text string) (string, error) {
	that.println(text)

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("could not read input: %w", err)
		}
		return "", io.EOF
	}

	return that.in.Text(), nil
}

func (that *Console) showBoard(board entity.Board) {
	that.println(that.styles.board.Render(that.renderBoard(board)))
}

func (that *Console) renderBoard(board entity.Board) string {
	rows := make([]string, 0, 5)
	for row := range 3 {
		cells := make([]string, 3)
		for col := range 3 {
			cells[col] = that.renderMark(board.Cells[row*3+col])
		}
		rows = append(rows, " "+strings.Join(cells, that.styles.grid.Render(" | "))+" ")

		if row < 2 {
			rows = append(rows, that.styles.grid.Render("---+---+---"))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (that *Console) renderMark(mark entity.Mark) string {
	switch mark {
	case entity.PlayerX:
		return that.styles.x.Render(string(mark))
	case entity.PlayerO:
		return that.styles.o.Render(string(mark))
	default:
		return " "
	}
}

func (that *Console) println(text string) {
	if _, err := fmt.Fprintln(that.out, text); err != nil {
		that.logger.Error("could not write output", "error", err)
	}
}

func resultMessage(game *entity.Game) string {
	switch game.Winner {
	case entity.PlayerX, entity.PlayerO:
		return fmt.Sprintf("%s won!", game.Winner)
	default:
		return "It's a draw."
	}
}
