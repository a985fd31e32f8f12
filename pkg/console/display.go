package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/JJ-Intelligence/N-In-A-Row/pkg/game"
	"github.com/JJ-Intelligence/N-In-A-Row/pkg/session"
)

// Display prints game events as text: the board after every move and the
// result at the end.
type Display struct {
	Out io.Writer
}

func NewDisplay(out io.Writer) *Display {
	return &Display{Out: out}
}

func (d *Display) Notify(event interface{}) {
	switch e := event.(type) {
	case game.GameStartedEvent:
		rows := make([]string, e.BoardSize)
		for i := range rows {
			rows[i] = strings.Repeat(game.Empty.String(), e.BoardSize)
		}
		d.printBoard(rows)

	case game.MoveMadeEvent:
		d.printBoard(e.Board)

	case game.ComputerWinningNotice:
		fmt.Fprintln(d.Out, "Computer is going to Win!")

	case game.GameOverEvent:
		switch e.Winner {
		case game.Human.String():
			fmt.Fprintln(d.Out, "Human Win!")
		case game.Computer.String():
			fmt.Fprintln(d.Out, "Computer Win!")
		default:
			fmt.Fprintln(d.Out, "Draw!")
		}

	case session.SessionOverEvent:
		fmt.Fprintf(d.Out, "Human %d - Computer %d - Draws %d\n",
			e.HumanWins, e.ComputerWins, e.Draws)
	}
}

func (d *Display) printBoard(rows []string) {
	var b strings.Builder
	b.WriteString("Game Board\n\n")
	for _, row := range rows {
		b.WriteString("|")
		for _, cell := range row {
			b.WriteRune(cell)
			b.WriteString("|")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	fmt.Fprint(d.Out, b.String())
}
