package game

import (
	"time"

	"go.uber.org/zap"
)

// Result is the outcome of a top-level search. Move is only meaningful when
// HasMove is set.
type Result struct {
	Score    Outcome
	Move     Position
	HasMove  bool
	Nodes    int
	MaxDepth int
}

// Searcher runs an exhaustive minimax search. The computer maximises and the
// human minimises; there is no pruning and no depth limit.
type Searcher struct {
	rules Rules
	log   *zap.Logger
}

func NewSearcher(rules Rules, log *zap.Logger) *Searcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Searcher{rules: rules, log: log}
}

// Search returns the best achievable outcome for player on board, and the move
// that reaches it. The board is mutated while searching but is always back in
// its original state when Search returns.
func (s *Searcher) Search(board Board, player Cell) Result {
	start := time.Now()
	run := &searchRun{rules: s.rules, board: board}
	score, move, ok := run.search(player, true, board.EmptyCells(), 0)

	s.log.Debug("Search finished",
		zap.Stringer("player", player),
		zap.Stringer("score", score),
		zap.Stringer("move", move),
		zap.Bool("hasMove", ok),
		zap.Int("nodes", run.nodes),
		zap.Int("maxDepth", run.maxDepth),
		zap.Duration("elapsed", time.Since(start)),
	)
	return Result{
		Score:    score,
		Move:     move,
		HasMove:  ok,
		Nodes:    run.nodes,
		MaxDepth: run.maxDepth,
	}
}

type searchRun struct {
	rules    Rules
	board    Board
	nodes    int
	maxDepth int
}

// search evaluates every empty cell in row-major order. remaining is the
// number of empty cells on the board. Only the outermost frame (top) reports
// a move.
func (r *searchRun) search(player Cell, top bool, remaining, depth int) (Outcome, Position, bool) {
	r.nodes++
	if depth > r.maxDepth {
		r.maxDepth = depth
	}

	var (
		best     Outcome
		move     Position
		hasMove  bool
		explored bool
	)
	for row := 0; row < r.rules.Size; row++ {
		for col := 0; col < r.rules.Size; col++ {
			if !r.rules.IsValidMove(r.board, row, col) {
				continue
			}
			pos := Position{Row: row, Col: col}

			score := r.rules.Score(r.board, pos, player)
			if score != Neutral {
				// Terminal: the mover wins here, or the line was already decided.
				return score, pos, top
			}

			if remaining == 1 {
				// Last free cell, nothing left to recurse into.
				return Neutral, pos, top
			}

			r.board.Set(pos, player)
			child, _, _ := r.search(player.Opponent(), false, remaining-1, depth+1)
			r.board.Set(pos, Empty)

			if player == Computer {
				if !explored || child > best {
					best = child
					if top {
						move, hasMove = pos, true
					}
				}
			} else if !explored || child < best {
				best = child
				if top {
					move, hasMove = pos, true
				}
			}
			explored = true
		}
	}

	if !explored {
		return Neutral, Position{}, false
	}
	return best, move, hasMove
}
