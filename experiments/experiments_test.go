package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"othello/experiments/metrics"
	"othello/game"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRun(t *testing.T) {
	t.Run("playing every game and storing the records", func(t *testing.T) {
		cfg := Config{
			Name:     "smoke",
			Games:    4,
			Parallel: 2,
			OutDir:   t.TempDir(),
			Agents: []metrics.AgentConfig{
				{ID: 0, Kind: KindRandom, Seed: 3},
				{ID: 1, Kind: KindAlphaBeta, Depth: 2},
			},
			MatchUps: [][]int{{1, 0}},
		}

		report, err := Run(cfg)
		require.NoError(t, err)

		require.Len(t, report.Games, 4)
		for i, g := range report.Games {
			require.Equal(t, i+1, g.ID, "Records should keep game order")
			if i%2 == 0 {
				require.Equal(t, [2]int{1, 0}, [2]int{g.BlackAgent, g.WhiteAgent})
			} else {
				require.Equal(t, [2]int{0, 1}, [2]int{g.BlackAgent, g.WhiteAgent}, "Colors should swap every game")
			}
			require.NotEqual(t, game.Undecided, g.Outcome)
		}
		for _, m := range report.Moves {
			g := report.Games[m.Game-1]
			if m.Player == game.Black {
				require.Equal(t, g.BlackAgent, m.Agent)
			} else {
				require.Equal(t, g.WhiteAgent, m.Agent)
			}
		}

		require.DirExists(t, report.Dir)
		configs := readCSV(t, filepath.Join(report.Dir, "agent_configs.csv"))
		require.Equal(t, []string{"id", "kind", "depth", "node_budget", "forced_pass", "seed"}, configs[0])
		require.Len(t, configs, 3)

		games := readCSV(t, filepath.Join(report.Dir, "game_records.csv"))
		require.Len(t, games, 1+len(report.Games))
		require.Equal(t, "id", games[0][0])

		moves := readCSV(t, filepath.Join(report.Dir, "move_records.csv"))
		require.Len(t, moves, 1+len(report.Moves))
	})

	t.Run("replaying the same games with either searcher", func(t *testing.T) {
		cfg := Config{
			Name:     "pruning",
			Games:    2,
			Parallel: 4,
			OutDir:   t.TempDir(),
			Agents: []metrics.AgentConfig{
				{ID: 0, Kind: KindRandom, Seed: 5},
				{ID: 1, Kind: KindMinimax, Depth: 2},
				{ID: 2, Kind: KindAlphaBeta, Depth: 2},
			},
			MatchUps: [][]int{{1, 0}, {2, 0}},
		}

		report, err := Run(cfg)
		require.NoError(t, err)

		byGame := map[int][]metrics.MoveRecord{}
		for _, m := range report.Moves {
			byGame[m.Game] = append(byGame[m.Game], m)
		}
		for round := 1; round <= cfg.Games; round++ {
			minimax, alphaBeta := byGame[round], byGame[round+cfg.Games]
			require.Len(t, alphaBeta, len(minimax), "Round %d should last as long under both searchers", round)
			for i := range minimax {
				require.Equal(t, minimax[i].Square, alphaBeta[i].Square, "Round %d move %d", round, i+1)
				require.Equal(t, minimax[i].Pass, alphaBeta[i].Pass)
				if minimax[i].Algorithm == "minimax" {
					require.Equal(t, "alphabeta", alphaBeta[i].Algorithm)
					require.LessOrEqual(t, alphaBeta[i].Nodes, minimax[i].Nodes)
				}
			}
		}
	})

	t.Run("refusing an invalid config", func(t *testing.T) {
		_, err := Run(Config{Name: "empty", Games: 1})

		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestBuiltinExperiments(t *testing.T) {
	for _, cfg := range []Config{DepthExperiment(), PruningExperiment()} {
		require.NoError(t, cfg.Validate(), cfg.Name)
	}
}
