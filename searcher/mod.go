package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"time"
)

// Unbounded disables the depth limit.
const Unbounded = -1

type Searcher interface {
	// Search picks a move for the state's current player.
	Search(state game.State) (game.Position, metrics.SearchMetric, error)
	// Expanded is the number of successor states generated over all searches.
	Expanded() int
}

type Option func(s *settings)

type settings struct {
	depth     int
	timeLimit time.Duration
	evaluate  game.Evaluate
	metrics   metrics.Collector
	now       func() time.Time
}

// WithDepth limits the search to depth plies. Unbounded removes the limit.
func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth >= 0 || depth == Unbounded {
			s.depth = depth
		}
	}
}

// WithTimeLimit bounds the wall-clock time of each search call. Zero removes
// the limit.
func WithTimeLimit(limit time.Duration) Option {
	return func(s *settings) {
		if limit >= 0 {
			s.timeLimit = limit
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *settings) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithWeights evaluates leaves with the weighted board evaluation.
func WithWeights(weights game.Weights) Option {
	return func(s *settings) {
		s.evaluate = game.NewWeightedEvaluator(weights)
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = metrics.NewCollector()
	}
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		depth:     meta.DEFAULT_DEPTH,
		timeLimit: meta.DEFAULT_TIME_LIMIT,
		evaluate:  game.NewWeightedEvaluator(game.DefaultWeights()),
		metrics:   metrics.NewDummyCollector(),
		now:       time.Now,
	}
	for _, option := range options {
		option(&s)
	}
	if s.depth == Unbounded && s.timeLimit == 0 {
		panic("search must be bounded by depth or time limit")
	}
	return s
}
