package agent

import (
	"othello/experiments/metrics"
	"othello/game"
)

type Agent interface {
	// FindMove returns the square to play for color and performance metrics (if collected) from the search
	FindMove(b *game.Board, color game.Color) (game.Square, metrics.SearchMetric, error)
}
