package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JJ-Intelligence/N-In-A-Row/pkg/game"
)

// Input reads the human player's answers one line at a time, writing prompts
// to Out.
type Input struct {
	Out     io.Writer
	scanner *bufio.Scanner
}

func NewInput(in io.Reader, out io.Writer) *Input {
	return &Input{Out: out, scanner: bufio.NewScanner(in)}
}

// NextMove asks for a row then a column. Whether the cell can be played is
// left to the caller.
func (i *Input) NextMove(board game.Board) (game.Position, error) {
	fmt.Fprintln(i.Out, "Make Move row:")
	row, err := i.readInt()
	if err != nil {
		return game.Position{}, err
	}

	fmt.Fprintln(i.Out, "Make Move column:")
	col, err := i.readInt()
	if err != nil {
		return game.Position{}, err
	}
	return game.Position{Row: row, Col: col}, nil
}

// PlayAgain asks whether to start another game; only "y" means yes.
func (i *Input) PlayAgain() (bool, error) {
	fmt.Fprintln(i.Out, "Do you want to play again?")
	answer, err := i.readLine()
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.ToLower(strings.TrimSpace(answer)) == "y", nil
}

// readInt keeps reading lines until one holds a number.
func (i *Input) readInt() (int, error) {
	for {
		line, err := i.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(i.Out, "Please enter a number.")
	}
}

func (i *Input) readLine() (string, error) {
	if !i.scanner.Scan() {
		if err := i.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return i.scanner.Text(), nil
}
