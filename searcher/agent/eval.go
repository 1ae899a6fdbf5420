package agent

import (
	"fmt"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"golang.org/x/exp/rand"
)

type searchAgent struct {
	searcher searcher.Searcher
}

// NewSearchAgent returns an agent that plays the move chosen by s. The search
// runs on a private copy of the board, so the caller's board is never touched.
func NewSearchAgent(s searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(b *game.Board, color game.Color) (game.Square, metrics.SearchMetric, error) {
	board := *b
	sq, metric, err := a.searcher.BestMove(&board, color)
	if err != nil {
		return sq, metric, fmt.Errorf("%s agent: %w", a.searcher.Name(), err)
	}
	return sq, metric, nil
}

type randomAgent struct {
	r *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
// The same seed replays the same choices.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{r: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(b *game.Board, color game.Color) (game.Square, metrics.SearchMetric, error) {
	if color != game.Black && color != game.White {
		return game.Square{}, metrics.SearchMetric{}, fmt.Errorf("random agent: %w", game.ErrInvalidColor)
	}
	moves := b.LegalMoves(color)
	if len(moves) == 0 {
		return game.Square{}, metrics.SearchMetric{}, fmt.Errorf("random agent: %w", game.ErrNoLegalMove)
	}
	return moves[a.r.Intn(len(moves))], metrics.SearchMetric{Algorithm: "random"}, nil
}
