package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher"
	"othello/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const KindHuman = "human"

// Leaf evaluations selectable with the evaluation key.
const (
	EvaluationWeighted = "weighted"
	EvaluationTiles    = "tiles"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	First      string           `mapstructure:"first"`
	Black      PlayerConfig     `mapstructure:"black"`
	White      PlayerConfig     `mapstructure:"white"`
	Evaluation string           `mapstructure:"evaluation"`
	Weights    WeightsConfig    `mapstructure:"weights"`
	Experiment ExperimentConfig `mapstructure:"experiment"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type PlayerConfig struct {
	Kind      string        `mapstructure:"kind"`
	Depth     int           `mapstructure:"depth"` // -1 for unbounded
	TimeLimit time.Duration `mapstructure:"time_limit"`
	Seed      uint64        `mapstructure:"seed"`
}

type WeightsConfig struct {
	Interior float64 `mapstructure:"interior"`
	Edge     float64 `mapstructure:"edge"`
	Corner   float64 `mapstructure:"corner"`
}

// ExperimentConfig describes a depth experiment: one agent of Kind per entry
// in Depths, each playing Games games against Baseline.
type ExperimentConfig struct {
	Name      string        `mapstructure:"name"`
	Kind      string        `mapstructure:"kind"`
	Depths    []int         `mapstructure:"depths"`
	TimeLimit time.Duration `mapstructure:"time_limit"`
	Baseline  PlayerConfig  `mapstructure:"baseline"`
	Games     int           `mapstructure:"games"`
	Workers   int           `mapstructure:"workers"`
	Output    string        `mapstructure:"output"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("first", "black")

	v.SetDefault("black.kind", KindHuman)
	v.SetDefault("white.kind", agent.KindAlphaBeta)
	for _, side := range []string{"black", "white"} {
		v.SetDefault(side+".depth", meta.DEFAULT_DEPTH)
		v.SetDefault(side+".time_limit", meta.DEFAULT_TIME_LIMIT)
		v.SetDefault(side+".seed", 1)
	}

	v.SetDefault("evaluation", EvaluationWeighted)
	v.SetDefault("weights.interior", meta.INTERIOR_WEIGHT)
	v.SetDefault("weights.edge", meta.EDGE_WEIGHT)
	v.SetDefault("weights.corner", meta.CORNER_WEIGHT)

	v.SetDefault("experiment.name", "depth")
	v.SetDefault("experiment.kind", agent.KindAlphaBeta)
	v.SetDefault("experiment.depths", []int{1, 2, 3, 4})
	v.SetDefault("experiment.time_limit", 0)
	v.SetDefault("experiment.baseline.kind", agent.KindRandom)
	v.SetDefault("experiment.baseline.depth", searcher.Unbounded)
	v.SetDefault("experiment.baseline.time_limit", 0)
	v.SetDefault("experiment.baseline.seed", 1)
	v.SetDefault("experiment.games", meta.EXPERIMENT_GAMES)
	v.SetDefault("experiment.workers", 4)
	v.SetDefault("experiment.output", "results")
}

// Load reads the YAML file at path, if any, and applies OTHELLO_* environment
// overrides, e.g. OTHELLO_WHITE_DEPTH=4. The result is validated.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("othello")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	if _, err := game.ParseColor(c.First); err != nil {
		return fmt.Errorf("%w: first: %v", ErrInvalidConfig, err)
	}
	if err := c.Black.validate("black", true); err != nil {
		return err
	}
	if err := c.White.validate("white", true); err != nil {
		return err
	}
	if c.Evaluation != EvaluationWeighted && c.Evaluation != EvaluationTiles {
		return fmt.Errorf("%w: evaluation: unknown evaluation %q", ErrInvalidConfig, c.Evaluation)
	}
	if c.Weights.Interior <= 0 || c.Weights.Edge <= 0 || c.Weights.Corner <= 0 {
		return fmt.Errorf("%w: weights must be positive, got %+v", ErrInvalidConfig, c.Weights)
	}
	return c.Experiment.validate()
}

func (p PlayerConfig) validate(name string, humanAllowed bool) error {
	switch p.Kind {
	case agent.KindRandom:
		return nil
	case agent.KindMinimax, agent.KindAlphaBeta:
	case KindHuman:
		if humanAllowed {
			return nil
		}
		return fmt.Errorf("%w: %s.kind: humans cannot take part", ErrInvalidConfig, name)
	default:
		return fmt.Errorf("%w: %s.kind: unknown kind %q", ErrInvalidConfig, name, p.Kind)
	}

	if p.Depth < searcher.Unbounded {
		return fmt.Errorf("%w: %s.depth: %d is below -1", ErrInvalidConfig, name, p.Depth)
	}
	if p.TimeLimit < 0 {
		return fmt.Errorf("%w: %s.time_limit: negative duration %s", ErrInvalidConfig, name, p.TimeLimit)
	}
	if p.Depth == searcher.Unbounded && p.TimeLimit == 0 {
		return fmt.Errorf("%w: %s: search must be bounded by depth or time limit", ErrInvalidConfig, name)
	}
	return nil
}

func (e ExperimentConfig) validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: experiment.name is empty", ErrInvalidConfig)
	}
	if len(e.Depths) == 0 {
		return fmt.Errorf("%w: experiment.depths is empty", ErrInvalidConfig)
	}
	for _, depth := range e.Depths {
		contestant := PlayerConfig{Kind: e.Kind, Depth: depth, TimeLimit: e.TimeLimit}
		if err := contestant.validate("experiment", false); err != nil {
			return err
		}
	}
	if err := e.Baseline.validate("experiment.baseline", false); err != nil {
		return err
	}
	if e.Games <= 0 {
		return fmt.Errorf("%w: experiment.games must be positive, got %d", ErrInvalidConfig, e.Games)
	}
	if e.Workers <= 0 {
		return fmt.Errorf("%w: experiment.workers must be positive, got %d", ErrInvalidConfig, e.Workers)
	}
	return nil
}

func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func (c *Config) FirstColor() game.Color {
	color, err := game.ParseColor(c.First)
	if err != nil {
		return game.Black
	}
	return color
}

func (c *Config) EvaluationWeights() game.Weights {
	return game.Weights{Interior: c.Weights.Interior, Edge: c.Weights.Edge, Corner: c.Weights.Corner}
}

// EvaluationOption configures search agents with the selected leaf evaluation.
func (c *Config) EvaluationOption() searcher.Option {
	if c.Evaluation == EvaluationTiles {
		return searcher.WithEvaluationFn(game.EvaluateTiles)
	}
	return searcher.WithWeights(c.EvaluationWeights())
}

func (c *Config) Player(color game.Color) PlayerConfig {
	if color == game.White {
		return c.White
	}
	return c.Black
}

func (p PlayerConfig) IsHuman() bool {
	return p.Kind == KindHuman
}

func (p PlayerConfig) AgentConfig(id int) metrics.AgentConfig {
	return metrics.AgentConfig{ID: id, Kind: p.Kind, Depth: p.Depth, TimeLimit: p.TimeLimit, Seed: p.Seed}
}

// Contestants returns the baseline with ID 0 followed by one agent per
// configured depth.
func (e ExperimentConfig) Contestants() (metrics.AgentConfig, []metrics.AgentConfig) {
	baseline := e.Baseline.AgentConfig(0)
	configs := make([]metrics.AgentConfig, 0, len(e.Depths))
	for i, depth := range e.Depths {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Kind: e.Kind, Depth: depth, TimeLimit: e.TimeLimit})
	}
	return baseline, configs
}
