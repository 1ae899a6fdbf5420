// Package searcher picks moves by fixed-depth adversarial search. Minimax is the
// reference implementation; AlphaBeta prunes it and must choose the same move.
//
// Both searchers walk a single board, applying and undoing moves in place. The
// board passed to BestMove is left exactly as it was found. A searcher keeps
// per-search state and must not be used by two goroutines at once; concurrent
// searches need their own searcher and their own board.
package searcher

import (
	"fmt"
	"math"

	"othello/experiments/metrics"
	"othello/game"
)

// Searcher finds the move it considers best for color.
type Searcher interface {
	Name() string
	BestMove(b *game.Board, color game.Color) (game.Square, metrics.SearchMetric, error)
}

// Sentinels for the worst score of each side. Evaluations never reach them.
const (
	negInf = math.MinInt32
	posInf = math.MaxInt32
)

var noSquare = game.Square{Row: -1, Col: -1}

// nodeFn searches a position with mover to move and ply plies left, returning
// its score from the root's perspective and the move that achieves it.
type nodeFn func(mover game.Color, ply int) (int, game.Square)

type search struct {
	config

	board   *game.Board
	root    game.Color
	nodes   int
	aborted bool
}

// run drives one search from the root and assembles its result.
func (s *search) run(name string, b *game.Board, color game.Color, node nodeFn) (game.Square, metrics.SearchMetric, error) {
	if color != game.Black && color != game.White {
		return noSquare, metrics.SearchMetric{}, fmt.Errorf("searching for %s: %w", color, game.ErrInvalidColor)
	}
	moves := b.LegalMoves(color)
	if len(moves) == 0 {
		return noSquare, metrics.SearchMetric{}, fmt.Errorf("searching for %s: %w", color, game.ErrNoLegalMove)
	}

	s.board, s.root, s.nodes, s.aborted = b, color, 0, false
	defer func() { s.board = nil }()

	s.metrics.Start(name, s.depth)
	score, best := node(color, s.depth)
	if best == noSquare { // Budget ran out before any root move was searched
		best = moves[0]
	}

	metric := s.metrics.Complete(score)
	metric.Algorithm = name
	metric.Depth = s.depth
	metric.Score = score
	metric.Aborted = s.aborted
	return best, metric, nil
}

// enter accounts for a new node. It returns false once the budget is spent.
func (s *search) enter() bool {
	if s.budget > 0 && s.nodes >= s.budget {
		s.aborted = true
		s.metrics.SetAborted()
		return false
	}
	s.nodes++
	s.metrics.AddNode()
	return true
}

func (s *search) leaf() int {
	s.metrics.AddLeaf()
	return s.evaluate(s.board, s.root)
}

// expand returns the moves to search at a node, or ok=false with the node's
// score when the node is a leaf or a forced pass.
func (s *search) expand(mover game.Color, ply int, node func(game.Color, int) int) (moves []game.Square, score int, ok bool) {
	if ply == 0 {
		return nil, s.leaf(), false
	}
	moves = s.board.LegalMoves(mover)
	if len(moves) > 0 {
		return moves, 0, true
	}
	if s.pass == PassRecurse && s.board.HasAnyLegalMove(mover.Opponent()) {
		return nil, node(mover.Opponent(), ply-1), false
	}
	return nil, s.leaf(), false
}

// play applies a generated move. Generated moves are legal, so failure is a bug.
func (s *search) play(sq game.Square, mover game.Color) game.UndoRecord {
	record, err := s.board.Apply(sq, mover)
	if err != nil {
		panic(fmt.Sprintf("searcher: generated move rejected: %v", err))
	}
	return record
}

// BestMove searches depth plies with alpha-beta and returns the chosen square
// for color.
func BestMove(b *game.Board, color game.Color, depth int) (game.Square, error) {
	sq, _, err := NewAlphaBeta(WithDepth(depth)).BestMove(b, color)
	return sq, err
}
