package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
)

// AlphaBeta is minimax with alpha-beta pruning. Pruning only skips subtrees
// that cannot change the result, so for the same board, depth and pass policy
// it returns the same move as Minimax while visiting fewer nodes.
type AlphaBeta struct {
	search
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{search: search{config: newConfig(options)}}
}

func (a *AlphaBeta) Name() string {
	return "alphabeta"
}

func (a *AlphaBeta) BestMove(b *game.Board, color game.Color) (game.Square, metrics.SearchMetric, error) {
	return a.run(a.Name(), b, color, func(mover game.Color, ply int) (int, game.Square) {
		return a.alphaBeta(mover, ply, negInf, posInf)
	})
}

// alphaBeta carries alpha, the score the root player is already guaranteed,
// and beta, the score the opponent is already guaranteed. Cuts fail hard: a
// beta cut returns beta and an alpha cut returns alpha.
func (a *AlphaBeta) alphaBeta(mover game.Color, ply int, alpha, beta int) (int, game.Square) {
	if !a.enter() {
		return 0, noSquare
	}
	moves, score, ok := a.expand(mover, ply, func(next game.Color, ply int) int {
		score, _ := a.alphaBeta(next, ply, alpha, beta)
		return score
	})
	if !ok {
		return score, noSquare
	}

	maximizing := mover == a.root
	bestScore, bestSquare := posInf, noSquare
	if maximizing {
		bestScore = negInf
	}
	for _, sq := range moves {
		record := a.play(sq, mover)
		score, _ := a.alphaBeta(mover.Opponent(), ply-1, alpha, beta)
		a.board.Undo(record)
		if a.aborted { // Score is incomplete
			return bestScore, bestSquare
		}

		if maximizing {
			if score > bestScore {
				bestScore, bestSquare = score, sq
				alpha = score
			}
			if score >= beta { // Beta cut
				a.metrics.AddCutoff()
				return beta, bestSquare
			}
		} else {
			if score < bestScore {
				bestScore, bestSquare = score, sq
				beta = score
			}
			if score <= alpha { // Alpha cut
				a.metrics.AddCutoff()
				return alpha, bestSquare
			}
		}
	}
	return bestScore, bestSquare
}
