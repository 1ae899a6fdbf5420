package experiments

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"othello/experiments/metrics"

	"gopkg.in/yaml.v3"
)

const (
	DefaultGames  = 10 // Per match up
	DefaultOutDir = "results"
)

// Agent kinds
const (
	KindAlphaBeta = "alphabeta"
	KindMinimax   = "minimax"
	KindRandom    = "random"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

// Config describes an experiment: the agents taking part and the match ups
// between them. Each match up lists two agent IDs and is played Games times,
// swapping colors every game.
type Config struct {
	Name     string                `yaml:"name"`
	Games    int                   `yaml:"games"`
	Parallel int                   `yaml:"parallel"` // Games played at once
	OutDir   string                `yaml:"outDir"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	MatchUps [][]int               `yaml:"matchups"`
}

// LoadConfig reads an experiment from a YAML file. The file name stands in for
// a missing experiment name.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Name == "" {
		cfg.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return cfg, nil
}

// ParseConfig decodes a YAML experiment and fills in defaults. Unknown fields
// are rejected.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Games <= 0 {
		c.Games = DefaultGames
	}
	if c.Parallel <= 0 {
		c.Parallel = 1
	}
	if c.OutDir == "" {
		c.OutDir = DefaultOutDir
	}
}

// Validate checks that every agent is well formed and every match up refers to
// two known agents.
func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidConfig)
	}
	if c.Games <= 0 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	}
	if len(c.Agents) == 0 {
		return fmt.Errorf("%w: no agents", ErrInvalidConfig)
	}
	if len(c.MatchUps) == 0 {
		return fmt.Errorf("%w: no match ups", ErrInvalidConfig)
	}

	ids := map[int]bool{}
	for _, agent := range c.Agents {
		if ids[agent.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, agent.ID)
		}
		ids[agent.ID] = true

		switch agent.Kind {
		case KindAlphaBeta, KindMinimax, KindRandom:
		default:
			return fmt.Errorf("%w: agent %d has unknown kind %q", ErrInvalidConfig, agent.ID, agent.Kind)
		}
		if agent.Depth < 0 || agent.NodeBudget < 0 {
			return fmt.Errorf("%w: agent %d has a negative depth or node budget", ErrInvalidConfig, agent.ID)
		}
	}

	for i, matchUp := range c.MatchUps {
		if len(matchUp) != 2 {
			return fmt.Errorf("%w: match up %d needs 2 agents, got %d", ErrInvalidConfig, i+1, len(matchUp))
		}
		for _, id := range matchUp {
			if !ids[id] {
				return fmt.Errorf("%w: match up %d refers to unknown agent %d", ErrInvalidConfig, i+1, id)
			}
		}
	}
	return nil
}
