package agent

import (
	"errors"
	"fmt"

	"othello/experiments/metrics"
	"othello/game"
	"othello/player"
	"othello/searcher"
)

const (
	KindMinimax   = "minimax"
	KindAlphaBeta = "alphabeta"
	KindRandom    = "random"
)

var ErrUnknownKind = errors.New("unknown agent kind")

// FromConfig builds the agent described by config for color. Extra options
// are passed to search agents after the configured depth and time limit.
func FromConfig(config metrics.AgentConfig, color game.Color, options ...searcher.Option) (player.Player, error) {
	if !color.Valid() {
		return nil, fmt.Errorf("%w: %d", game.ErrUnknownPlayer, color)
	}

	switch config.Kind {
	case KindRandom:
		return NewRandomAgent(color, config.Seed), nil
	case KindMinimax, KindAlphaBeta:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, config.Kind)
	}

	if config.Depth < searcher.Unbounded {
		return nil, fmt.Errorf("agent %d: invalid depth %d", config.ID, config.Depth)
	}
	if config.TimeLimit < 0 {
		return nil, fmt.Errorf("agent %d: invalid time limit %s", config.ID, config.TimeLimit)
	}
	if config.Depth == searcher.Unbounded && config.TimeLimit == 0 {
		return nil, fmt.Errorf("agent %d: search must be bounded by depth or time limit", config.ID)
	}

	options = append([]searcher.Option{
		searcher.WithDepth(config.Depth),
		searcher.WithTimeLimit(config.TimeLimit),
	}, options...)
	if config.Kind == KindMinimax {
		return NewMinimaxAgent(color, options...), nil
	}
	return NewAlphaBetaAgent(color, options...), nil
}
