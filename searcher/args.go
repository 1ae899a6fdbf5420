package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
)

// Search parameters

const DefaultDepth = 7

// PassPolicy decides how a search treats a position whose mover has no legal
// move.
type PassPolicy int

const (
	// PassAsLeaf scores the position with the evaluator.
	PassAsLeaf PassPolicy = iota
	// PassRecurse searches the forced pass: same board, opponent to move, one
	// ply used. The position is only scored when neither side can move.
	PassRecurse
)

type Option func(c *config)

type config struct {
	depth    int
	pass     PassPolicy
	budget   int
	evaluate game.Evaluator
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.depth = depth
		}
	}
}

func WithForcedPass() Option {
	return func(c *config) {
		c.pass = PassRecurse
	}
}

// WithNodeBudget stops the search after it has entered nodes positions.
func WithNodeBudget(nodes int) Option {
	return func(c *config) {
		if nodes > 0 {
			c.budget = nodes
		}
	}
}

func WithEvaluator(evaluate game.Evaluator) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = metrics.NewCollector()
	}
}

func newConfig(options []Option) config {
	c := config{ // Default values
		depth:    DefaultDepth,
		pass:     PassAsLeaf,
		evaluate: game.Positional,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	return c
}
