package engine

import (
	"othello/experiments/metrics"
	"othello/game"
)

// MaxTurns bounds a game: every placement can be preceded by at most one pass.
const MaxTurns = 2 * (game.MaxPlacements + 1)

type Runner interface {
	// Run plays a game till it is over and returns its metrics
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
