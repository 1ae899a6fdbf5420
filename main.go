package main

import (
	"flag"
	"fmt"
	"os"

	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	configPath = flag.String("config", "", "Experiment config file (YAML)")
	experiment = flag.String("experiment", "", "Built-in experiment to run: depth, pruning")
	depth      = flag.Int("depth", searcher.DefaultDepth, "Search depth of the alpha-beta player in a single game")
	seed       = flag.Uint64("seed", 1, "Seed of the random player in a single game")
	verbose    = flag.Bool("v", false, "Log every move")
	profiling  = flag.String("profile", "", "Write a profile of the run: cpu, mem")
	profileDir = flag.String("profile-dir", ".", "Directory for profile output")
)

func main() {
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	os.Exit(execute())
}

// execute runs the selected mode and returns the process exit code. The
// profile is stopped before returning so it is written on failure too.
func execute() int {
	switch *profiling {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir), profile.Quiet, profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(*profileDir), profile.Quiet, profile.NoShutdownHook).Stop()
	default:
		log.Error().Msgf("unknown profile %q", *profiling)
		return 2
	}

	if err := run(); err != nil {
		log.Error().Err(err).Msg("run failed")
		return 1
	}
	return 0
}

func run() error {
	switch {
	case *configPath != "":
		cfg, err := experiments.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		return runExperiment(cfg)
	case *experiment == "depth":
		return runExperiment(experiments.DepthExperiment())
	case *experiment == "pruning":
		return runExperiment(experiments.PruningExperiment())
	case *experiment != "":
		return fmt.Errorf("unknown experiment %q", *experiment)
	default:
		return runGame()
	}
}

func runExperiment(cfg experiments.Config) error {
	report, err := experiments.Run(cfg)
	if err != nil {
		return err
	}
	log.Info().Msgf("results stored in %s", report.Dir)
	return nil
}

// runGame plays a random black player against an alpha-beta white player
func runGame() error {
	ai := agent.NewSearchAgent(searcher.NewAlphaBeta(searcher.WithDepth(*depth), searcher.WithMetrics()))
	e := engine.LocalEngine([2]agent.Agent{agent.NewRandomAgent(*seed), ai})

	gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Print(e.Board)
	fmt.Printf("%s: black %d, white %d (%s for alpha-beta)\n",
		gameMetric.Outcome, gameMetric.Black, gameMetric.White, gameMetric.Outcome.ResultFor(game.White))
	return nil
}
