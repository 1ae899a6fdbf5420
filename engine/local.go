package engine

import (
	"fmt"
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher/agent"

	"github.com/rs/zerolog/log"
)

var _ Runner = (*Engine)(nil)

type Engine struct {
	Board  *game.Board
	State  *game.State
	Agents [2]agent.Agent // Black first
}

// LocalEngine sets up a new game in the opening position. agents[0] plays
// Black and moves first.
func LocalEngine(agents [2]agent.Agent) *Engine {
	for i, a := range agents {
		if a == nil {
			panic(fmt.Sprintf("agent %d is nil", i))
		}
	}

	b, s := game.NewGame()
	return &Engine{
		Board:  b,
		State:  s,
		Agents: agents,
	}
}

func (e *Engine) agentFor(color game.Color) agent.Agent {
	if color == game.Black {
		return e.Agents[0]
	}
	return e.Agents[1]
}

// Run executes the entire game loop until the game is over. A side with no
// legal move passes without consulting its agent.
func (e *Engine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%s is starting", e.State.Turn)

	for turn := 1; ; turn++ {
		if over, outcome := e.State.IsTerminal(e.Board); over {
			e.complete(&gameMetric, outcome, turn-1)
			log.Info().Msgf("game over after %d turns: %s (%d-%d)", turn-1, outcome, gameMetric.Black, gameMetric.White)
			return gameMetric, moveMetrics, nil
		}
		if turn > MaxTurns {
			return gameMetric, moveMetrics, fmt.Errorf("no result after %d turns", MaxTurns)
		}

		color := e.State.Turn
		if !e.Board.HasAnyLegalMove(color) {
			e.State.RecordPassOrMove(false)
			gameMetric.Passes++
			moveMetrics = append(moveMetrics, metrics.MoveMetric{Step: turn, Player: color, Pass: true})
			log.Debug().Msgf("turn %d: %s passes", turn, color)
			continue
		}

		sq, searchMetric, err := e.agentFor(color).FindMove(e.Board, color)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", turn, err)
		}
		if _, err := e.Board.Apply(sq, color); err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("turn %d: agent played an illegal move: %w", turn, err)
		}
		e.State.RecordPassOrMove(true)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       color,
			Square:       sq,
			SearchMetric: searchMetric,
		})

		count := e.Board.Count()
		log.Debug().Msgf("turn %d: %s plays %s (%d-%d)", turn, color, sq, count.Black, count.White)
	}
}

func (e *Engine) complete(m *metrics.GameMetric, outcome game.Outcome, turns int) {
	count := e.Board.Count()
	m.Outcome = outcome
	m.Black = count.Black
	m.White = count.White
	m.Placed = e.State.Placed
	m.TotalMoves = turns
	m.EndTime = time.Now()
	m.Duration = m.EndTime.Sub(m.StartTime)
}
