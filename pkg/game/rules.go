package game

import "errors"

// Outcome is the result of scoring or searching a position, always from the
// computer's point of view.
type Outcome int

const (
	HumanWin    Outcome = -1
	Neutral     Outcome = 0
	ComputerWin Outcome = 1
)

func (o Outcome) String() string {
	switch o {
	case HumanWin:
		return "human win"
	case ComputerWin:
		return "computer win"
	default:
		return "neutral"
	}
}

// Direction is a unit step along one of the four lines through a cell.
type Direction struct {
	Row int
	Col int
}

var (
	Vertical        = Direction{1, 0}
	Horizontal      = Direction{0, 1}
	ForwardDiagonal = Direction{1, 1}
	ReverseDiagonal = Direction{1, -1}
)

// Directions is the order lines are scanned in.
var Directions = [4]Direction{Horizontal, Vertical, ForwardDiagonal, ReverseDiagonal}

var ErrInvalidConnect = errors.New("connect length must be between 1 and the board size")

// Rules holds the board size and the run length needed to win.
type Rules struct {
	Size    int
	Connect int
}

func NewRules(size, connect int) (Rules, error) {
	if size < 1 {
		return Rules{}, ErrInvalidBoardSize
	}
	if connect < 1 || connect > size {
		return Rules{}, ErrInvalidConnect
	}
	return Rules{Size: size, Connect: connect}, nil
}

// DefaultRules is standard tic-tac-toe.
func DefaultRules() Rules {
	return Rules{Size: 3, Connect: 3}
}

// IsValidMove reports whether (row, col) is on the board and empty.
func (r Rules) IsValidMove(board Board, row, col int) bool {
	return row >= 0 && col >= 0 && row < r.Size && col < r.Size && board[row][col] == Empty
}

// Score reports whether player placing a mark at original completes a line of
// Connect marks. The board is not modified; original is read as if it already
// held player's mark. A computer line anywhere through original wins over a
// human line.
func (r Rules) Score(board Board, original Position, player Cell) Outcome {
	result := Neutral
	for _, d := range Directions {
		switch r.lineScore(board, original, d, player) {
		case ComputerWin:
			return ComputerWin
		case HumanWin:
			result = HumanWin
		}
	}
	return result
}

// lineScore walks the segment of up to Connect cells either side of original
// along d, trimmed to the board.
func (r Rules) lineScore(board Board, original Position, d Direction, player Cell) Outcome {
	back := r.reach(original, d, -1)
	fwd := r.reach(original, d, 1)

	computerRun, humanRun := 0, 0
	computerLine, humanLine := false, false
	for t := -back; t <= fwd; t++ {
		p := original.add(d, t)
		cell := board[p.Row][p.Col]
		if t == 0 {
			cell = player
		}

		switch cell {
		case Computer:
			computerRun++
			humanRun = 0
		case Human:
			humanRun++
			computerRun = 0
		default:
			computerRun, humanRun = 0, 0
		}

		if computerRun >= r.Connect {
			computerLine = true
		}
		if humanRun >= r.Connect {
			humanLine = true
		}
	}

	if computerLine {
		return ComputerWin
	}
	if humanLine {
		return HumanWin
	}
	return Neutral
}

// reach counts how many steps (at most Connect) can be taken from p along
// sign*d before leaving the board.
func (r Rules) reach(p Position, d Direction, sign int) int {
	n := 0
	for n < r.Connect {
		next := p.add(d, sign*(n+1))
		if next.Row < 0 || next.Col < 0 || next.Row >= r.Size || next.Col >= r.Size {
			break
		}
		n++
	}
	return n
}
