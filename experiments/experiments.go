package experiments

import (
	"fmt"
	"runtime"
	"sync"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"

	"github.com/rs/zerolog/log"
)

// DepthExperiment pits alpha-beta at increasing depths against a random
// baseline.
func DepthExperiment() Config {
	baseline := metrics.AgentConfig{ID: 0, Kind: KindRandom, Seed: 1}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]int{}
	for depth := 1; depth <= 5; depth++ {
		configs = append(configs, metrics.AgentConfig{ID: depth, Kind: KindAlphaBeta, Depth: depth})
		matchUps = append(matchUps, []int{depth, baseline.ID})
	}

	return Config{
		Name:     "depth",
		Games:    20,
		Parallel: runtime.NumCPU(),
		OutDir:   DefaultOutDir,
		Agents:   configs,
		MatchUps: matchUps,
	}
}

// PruningExperiment plays minimax and alpha-beta at the same depth against the
// same random baseline. Both searchers choose the same moves, so each game is
// replayed move for move and only the node counts differ.
func PruningExperiment() Config {
	const depth = 4
	baseline := metrics.AgentConfig{ID: 0, Kind: KindRandom, Seed: 1}
	return Config{
		Name:     "pruning",
		Games:    10,
		Parallel: runtime.NumCPU(),
		OutDir:   DefaultOutDir,
		Agents: []metrics.AgentConfig{
			baseline,
			{ID: 1, Kind: KindMinimax, Depth: depth},
			{ID: 2, Kind: KindAlphaBeta, Depth: depth},
		},
		MatchUps: [][]int{{1, baseline.ID}, {2, baseline.ID}},
	}
}

// Report holds the records of a finished experiment.
type Report struct {
	Dir   string // Where the CSV files were written
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

type job struct {
	id      int // GameRecord.ID
	matchUp int
	round   int // Game number within the match up
	black   metrics.AgentConfig
	white   metrics.AgentConfig
}

type result struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
	err   error
}

// Run plays every match up of the experiment and stores agent configs, game
// records and move records as CSV files under cfg.OutDir. Games run on up to
// cfg.Parallel goroutines, each with its own board and agents.
func Run(cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	byID := make(map[int]metrics.AgentConfig, len(cfg.Agents))
	for _, config := range cfg.Agents {
		byID[config.ID] = config
	}

	// Colors alternate so that each agent moves first in half the games
	jobs := []job{}
	for mi, matchUp := range cfg.MatchUps {
		for i := 0; i < cfg.Games; i++ {
			first, second := byID[matchUp[0]], byID[matchUp[1]]
			if i%2 == 1 {
				first, second = second, first
			}
			jobs = append(jobs, job{id: len(jobs) + 1, matchUp: mi, round: i, black: first, white: second})
		}
	}

	log.Info().Msgf("starting %s experiment with %d games...", cfg.Name, len(jobs))

	results := make([]result, len(jobs))
	queue := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < min(cfg.Parallel, len(jobs)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range queue {
				results[i] = runGame(jobs[i], len(cfg.MatchUps))
			}
		}()
	}
	for i := range jobs {
		queue <- i
	}
	close(queue)
	wg.Wait()

	report := &Report{}
	for i, r := range results {
		if r.err != nil {
			return nil, fmt.Errorf("game %d: %w", jobs[i].id, r.err)
		}
		report.Games = append(report.Games, r.game)
		report.Moves = append(report.Moves, r.moves...)
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	dir, err := store(cfg, report)
	if err != nil {
		return nil, err
	}
	report.Dir = dir
	return report, nil
}

// runGame executes a single game between the two agents of a job
func runGame(j job, matchUps int) result {
	log.Debug().Msgf("starting matchup %d of %d game %d: black=%d white=%d", j.matchUp+1, matchUps, j.round+1, j.black.ID, j.white.ID)

	black, err := createAgent(j.black, j.round)
	if err != nil {
		return result{err: err}
	}
	white, err := createAgent(j.white, j.round)
	if err != nil {
		return result{err: err}
	}

	e := engine.LocalEngine([2]agent.Agent{black, white})
	gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return result{err: err}
	}

	r := result{game: metrics.GameRecord{
		ID:         j.id,
		BlackAgent: j.black.ID,
		WhiteAgent: j.white.ID,
		GameMetric: gameMetric,
	}}
	for _, mm := range moveMetrics {
		agentID := j.black.ID
		if mm.Player == game.White {
			agentID = j.white.ID
		}
		r.moves = append(r.moves, metrics.MoveRecord{Game: j.id, Agent: agentID, MoveMetric: mm})
	}

	log.Info().Msgf("completed matchup %d of %d game %d with outcome: %s", j.matchUp+1, matchUps, j.round+1, gameMetric.Outcome)
	return r
}

// createAgent builds a fresh agent for one game. Random agents are seeded by
// round, so every match up replays the same random choices in the same round.
func createAgent(config metrics.AgentConfig, round int) (agent.Agent, error) {
	options := []searcher.Option{}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.NodeBudget > 0 {
		options = append(options, searcher.WithNodeBudget(config.NodeBudget))
	}
	if config.ForcedPass {
		options = append(options, searcher.WithForcedPass())
	}
	options = append(options, searcher.WithMetrics())

	switch config.Kind {
	case KindAlphaBeta:
		return agent.NewSearchAgent(searcher.NewAlphaBeta(options...)), nil
	case KindMinimax:
		return agent.NewSearchAgent(searcher.NewMinimax(options...)), nil
	case KindRandom:
		return agent.NewRandomAgent(config.Seed + uint64(round)), nil
	default:
		return nil, fmt.Errorf("%w: unknown agent kind %q", ErrInvalidConfig, config.Kind)
	}
}

func store(cfg Config, report *Report) (string, error) {
	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(report.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(report.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
