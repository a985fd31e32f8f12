package game

import (
	"errors"
	"fmt"
)

// Cell is the state of a single square on the board.
type Cell int

const (
	Empty     Cell = 0
	PlayerOne Cell = 1 // Human, drawn as X
	PlayerTwo Cell = 2 // Computer, drawn as O
)

const (
	Human    = PlayerOne
	Computer = PlayerTwo
)

// Opponent returns the other player.
func (c Cell) Opponent() Cell {
	if c == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (c Cell) String() string {
	switch c {
	case PlayerOne:
		return "X"
	case PlayerTwo:
		return "O"
	default:
		return " "
	}
}

// Position is a (row, col) coordinate on the board.
type Position struct {
	Row int `json:"row" mapstructure:"row"`
	Col int `json:"col" mapstructure:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func (p Position) add(d Direction, n int) Position {
	return Position{Row: p.Row + d.Row*n, Col: p.Col + d.Col*n}
}

var ErrInvalidBoardSize = errors.New("board size must be at least 1")

// Board is a square grid of cells, indexed [row][col].
type Board [][]Cell

// NewBoard returns an empty size x size board.
func NewBoard(size int) (Board, error) {
	if size < 1 {
		return nil, ErrInvalidBoardSize
	}
	b := make(Board, size)
	for i := range b {
		b[i] = make([]Cell, size)
	}
	return b, nil
}

// ParseBoard builds a board from rows such as "XX_", using X for PlayerOne,
// O for PlayerTwo and '_' or ' ' for empty cells.
func ParseBoard(rows ...string) (Board, error) {
	b, err := NewBoard(len(rows))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(rows))
		}
		for j, r := range row {
			switch r {
			case 'X', 'x':
				b[i][j] = PlayerOne
			case 'O', 'o':
				b[i][j] = PlayerTwo
			case '_', ' ', '.':
				b[i][j] = Empty
			default:
				return nil, fmt.Errorf("invalid cell %q at %d,%d", r, i, j)
			}
		}
	}
	return b, nil
}

// Size is the length of one side of the board.
func (b Board) Size() int {
	return len(b)
}

func (b Board) At(p Position) Cell {
	return b[p.Row][p.Col]
}

func (b Board) Set(p Position, c Cell) {
	b[p.Row][p.Col] = c
}

// EmptyCells counts the cells that can still be played.
func (b Board) EmptyCells() int {
	n := 0
	for _, row := range b {
		for _, c := range row {
			if c == Empty {
				n++
			}
		}
	}
	return n
}

func (b Board) Clone() Board {
	c := make(Board, len(b))
	for i, row := range b {
		c[i] = append([]Cell(nil), row...)
	}
	return c
}

func (b Board) Equal(o Board) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if len(b[i]) != len(o[i]) {
			return false
		}
		for j := range b[i] {
			if b[i][j] != o[i][j] {
				return false
			}
		}
	}
	return true
}

// Rows renders each row as a string of cell glyphs.
func (b Board) Rows() []string {
	rows := make([]string, len(b))
	for i, row := range b {
		s := make([]byte, 0, len(row))
		for _, c := range row {
			s = append(s, c.String()...)
		}
		rows[i] = string(s)
	}
	return rows
}
