package game

import (
	"errors"
	"io"
	"testing"

	"go.uber.org/zap/zaptest"
)

// scriptedMoves hands out moves in order, returning io.EOF when it runs out.
type scriptedMoves struct {
	moves []Position
	asked int
}

func (s *scriptedMoves) NextMove(board Board) (Position, error) {
	s.asked++
	if len(s.moves) == 0 {
		return Position{}, io.EOF
	}
	p := s.moves[0]
	s.moves = s.moves[1:]
	return p, nil
}

// firstFree plays opening, then always the first empty cell in row-major order.
type firstFree struct {
	opening *Position
}

func (f *firstFree) NextMove(board Board) (Position, error) {
	if f.opening != nil {
		p := *f.opening
		f.opening = nil
		return p, nil
	}
	for row := range board {
		for col := range board[row] {
			if board[row][col] == Empty {
				return Position{row, col}, nil
			}
		}
	}
	return Position{}, io.EOF
}

// searchingHuman plays opening and then the searcher's best human move.
type searchingHuman struct {
	opening  *Position
	searcher *Searcher
}

func (s *searchingHuman) NextMove(board Board) (Position, error) {
	if s.opening != nil {
		p := *s.opening
		s.opening = nil
		return p, nil
	}
	res := s.searcher.Search(board, Human)
	if !res.HasMove {
		return Position{}, ErrNoMove
	}
	return res.Move, nil
}

type recorder struct {
	events []interface{}
}

func (r *recorder) Notify(event interface{}) {
	r.events = append(r.events, event)
}

func (r *recorder) moves() []MoveMadeEvent {
	var moves []MoveMadeEvent
	for _, e := range r.events {
		if m, ok := e.(MoveMadeEvent); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

func (r *recorder) notices() int {
	n := 0
	for _, e := range r.events {
		if _, ok := e.(ComputerWinningNotice); ok {
			n++
		}
	}
	return n
}

func (r *recorder) gameOver(t *testing.T) GameOverEvent {
	t.Helper()
	if len(r.events) == 0 {
		t.Fatalf("expected events")
	}
	over, ok := r.events[len(r.events)-1].(GameOverEvent)
	if !ok {
		t.Fatalf("expected the last event to be GameOverEvent, got %T", r.events[len(r.events)-1])
	}
	return over
}

func TestEngineHumanWinsImmediately(t *testing.T) {
	rules, _ := NewRules(3, 1)
	human := &scriptedMoves{moves: []Position{{-1, 0}, {3, 3}, {0, 3}, {2, 1}}}
	events := &recorder{}

	outcome, err := NewEngine(rules, human, events, zaptest.NewLogger(t)).Play("game-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != HumanWin {
		t.Fatalf("expected human win, got %s", outcome)
	}
	if human.asked != 4 {
		t.Fatalf("expected the three invalid moves to be asked again, got %d requests", human.asked)
	}

	started, ok := events.events[0].(GameStartedEvent)
	if !ok || started.GameID != "game-1" || started.BoardSize != 3 || started.Connect != 1 {
		t.Fatalf("unexpected first event %#v", events.events[0])
	}
	moves := events.moves()
	if len(moves) != 1 || moves[0].Row != 2 || moves[0].Col != 1 || moves[0].Player != "X" {
		t.Fatalf("expected a single X move at (2,1), got %#v", moves)
	}
	if got := moves[0].Board; got[2] != " X " {
		t.Fatalf("expected board row \" X \", got %q", got[2])
	}
	if over := events.gameOver(t); over.Winner != "X" {
		t.Fatalf("expected X to win, got %q", over.Winner)
	}
}

func TestEngineHumanWinsAfterBlock(t *testing.T) {
	rules, _ := NewRules(3, 2)
	// Every neighbour of (0,0) wins; the computer can only block one.
	human := &scriptedMoves{moves: []Position{{0, 0}, {0, 1}, {1, 0}, {1, 1}}}
	events := &recorder{}

	outcome, err := NewEngine(rules, human, events, zaptest.NewLogger(t)).Play("game-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != HumanWin {
		t.Fatalf("expected human win, got %s", outcome)
	}
	moves := events.moves()
	if len(moves) != 3 || moves[1].Player != "O" {
		t.Fatalf("expected X, O, X moves, got %#v", moves)
	}
}

func TestEngineComputerWins(t *testing.T) {
	human := &firstFree{opening: &Position{0, 1}}
	events := &recorder{}

	outcome, err := NewEngine(DefaultRules(), human, events, zaptest.NewLogger(t)).Play("game-3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != ComputerWin {
		t.Fatalf("expected computer win, got %s", outcome)
	}
	if over := events.gameOver(t); over.Winner != "O" {
		t.Fatalf("expected O to win, got %q", over.Winner)
	}
	// After X(0,1) O(0,0) X(0,2) the computer has a forced win it cannot take
	// in one move.
	if events.notices() != 1 {
		t.Fatalf("expected one winning notice, got %d", events.notices())
	}
	moves := events.moves()
	last := moves[len(moves)-1]
	if last.Player != "O" || last.Row != 2 || last.Col != 0 {
		t.Fatalf("expected O to finish at (2,0), got %#v", last)
	}
}

func TestEngineDraw(t *testing.T) {
	human := &firstFree{opening: &Position{1, 2}}
	events := &recorder{}

	outcome, err := NewEngine(DefaultRules(), human, events, zaptest.NewLogger(t)).Play("game-4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != Neutral {
		t.Fatalf("expected a draw, got %s", outcome)
	}
	if len(events.moves()) != 9 {
		t.Fatalf("expected the board to fill, got %d moves", len(events.moves()))
	}
	if over := events.gameOver(t); over.Winner != "" {
		t.Fatalf("expected no winner, got %q", over.Winner)
	}
}

func TestEngineBestPlayDraws(t *testing.T) {
	rules := DefaultRules()
	human := &searchingHuman{opening: &Position{1, 1}, searcher: NewSearcher(rules, nil)}
	events := &recorder{}

	outcome, err := NewEngine(rules, human, events, zaptest.NewLogger(t)).Play("game-5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != Neutral {
		t.Fatalf("expected best play from both sides to draw, got %s", outcome)
	}
	if events.notices() != 0 {
		t.Fatalf("expected no winning notice, got %d", events.notices())
	}
}

func TestEngineSourceError(t *testing.T) {
	human := &scriptedMoves{moves: []Position{{1, 1}}}
	events := &recorder{}

	_, err := NewEngine(DefaultRules(), human, events, zaptest.NewLogger(t)).Play("game-6")
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	for _, e := range events.events {
		if _, ok := e.(GameOverEvent); ok {
			t.Fatalf("expected no GameOverEvent when input ends")
		}
	}
}
