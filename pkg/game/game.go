package game

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var ErrNoMove = errors.New("no move available")

// MoveSource supplies the human player's moves. Moves that are off the board
// or on an occupied cell are discarded and NextMove is called again.
type MoveSource interface {
	NextMove(board Board) (Position, error)
}

// Observer receives the events of a game as it is played.
type Observer interface {
	Notify(event interface{})
}

// Engine drives a single game between a human (PlayerOne, moving first) and
// the computer (PlayerTwo).
type Engine struct {
	Log      *zap.Logger
	Rules    Rules
	Searcher *Searcher
	Human    MoveSource
	Observer Observer
}

func NewEngine(rules Rules, human MoveSource, observer Observer, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		Log:      log,
		Rules:    rules,
		Searcher: NewSearcher(rules, log),
		Human:    human,
		Observer: observer,
	}
}

// Play runs one game to completion and returns HumanWin, ComputerWin or
// Neutral for a draw. An error from the MoveSource ends the game early.
func (e *Engine) Play(gameID string) (Outcome, error) {
	log := e.Log.With(zap.String("game", gameID))
	board, err := NewBoard(e.Rules.Size)
	if err != nil {
		return Neutral, err
	}

	e.notify(GameStartedEvent{GameID: gameID, BoardSize: e.Rules.Size, Connect: e.Rules.Connect})
	log.Info("Game started", zap.Int("boardSize", e.Rules.Size), zap.Int("connect", e.Rules.Connect))

	movesLeft := e.Rules.Size * e.Rules.Size
	for movesLeft > 0 {
		p, err := e.humanMove(board, log)
		if err != nil {
			return Neutral, fmt.Errorf("reading human move: %w", err)
		}
		score := e.Rules.Score(board, p, Human)
		e.place(board, gameID, p, Human)
		if score == HumanWin {
			return e.finish(gameID, log, HumanWin), nil
		}

		movesLeft--
		if movesLeft == 0 {
			break
		}

		res := e.Searcher.Search(board, Computer)
		if !res.HasMove {
			return Neutral, ErrNoMove
		}
		score = e.Rules.Score(board, res.Move, Computer)
		if res.Score == ComputerWin && score != ComputerWin {
			e.notify(ComputerWinningNotice{GameID: gameID})
		}
		e.place(board, gameID, res.Move, Computer)
		log.Debug("Computer moved",
			zap.Stringer("move", res.Move),
			zap.Stringer("predicted", res.Score),
			zap.Int("nodes", res.Nodes),
		)
		if score == ComputerWin {
			return e.finish(gameID, log, ComputerWin), nil
		}

		movesLeft--
	}

	return e.finish(gameID, log, Neutral), nil
}

func (e *Engine) humanMove(board Board, log *zap.Logger) (Position, error) {
	for {
		p, err := e.Human.NextMove(board)
		if err != nil {
			return Position{}, err
		}
		if e.Rules.IsValidMove(board, p.Row, p.Col) {
			return p, nil
		}
		log.Debug("Rejected human move", zap.Stringer("move", p))
	}
}

func (e *Engine) place(board Board, gameID string, p Position, player Cell) {
	board.Set(p, player)
	e.notify(MoveMadeEvent{
		GameID: gameID,
		Player: player.String(),
		Row:    p.Row,
		Col:    p.Col,
		Board:  board.Rows(),
	})
}

func (e *Engine) finish(gameID string, log *zap.Logger, outcome Outcome) Outcome {
	winner := ""
	switch outcome {
	case HumanWin:
		winner = Human.String()
	case ComputerWin:
		winner = Computer.String()
	}
	e.notify(GameOverEvent{GameID: gameID, Winner: winner})
	log.Info("Game over", zap.Stringer("outcome", outcome))
	return outcome
}

func (e *Engine) notify(event interface{}) {
	if e.Observer != nil {
		e.Observer.Notify(event)
	}
}
