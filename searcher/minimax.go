package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
)

// Minimax searches the full game tree to a fixed depth, O(b^d) positions for
// branching factor b. It exists as the reference that AlphaBeta must agree with.
type Minimax struct {
	search
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{search: search{config: newConfig(options)}}
}

func (m *Minimax) Name() string {
	return "minimax"
}

func (m *Minimax) BestMove(b *game.Board, color game.Color) (game.Square, metrics.SearchMetric, error) {
	return m.run(m.Name(), b, color, m.minimax)
}

// minimax returns the score of the position for the root player, maximizing on
// the root player's turns and minimizing on the opponent's. Only a strictly
// better score replaces the best move, so the first move in scan order wins
// ties.
func (m *Minimax) minimax(mover game.Color, ply int) (int, game.Square) {
	if !m.enter() {
		return 0, noSquare
	}
	moves, score, ok := m.expand(mover, ply, func(next game.Color, ply int) int {
		score, _ := m.minimax(next, ply)
		return score
	})
	if !ok {
		return score, noSquare
	}

	maximizing := mover == m.root
	bestScore, bestSquare := posInf, noSquare
	if maximizing {
		bestScore = negInf
	}
	for _, sq := range moves {
		record := m.play(sq, mover)
		score, _ := m.minimax(mover.Opponent(), ply-1)
		m.board.Undo(record)
		if m.aborted { // Score is incomplete
			return bestScore, bestSquare
		}

		if maximizing {
			if score > bestScore {
				bestScore, bestSquare = score, sq
			}
		} else {
			if score < bestScore {
				bestScore, bestSquare = score, sq
			}
		}
	}
	return bestScore, bestSquare
}
