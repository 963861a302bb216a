package agent

import (
	"fmt"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

// Agent plays the moves a searcher finds. The searcher's counters and time
// anchor belong to this agent alone.
type Agent struct {
	color    game.Color
	searcher searcher.Searcher
	last     metrics.SearchMetric
}

// New returns an agent for color backed by s. It panics on an unknown colour.
func New(color game.Color, s searcher.Searcher) *Agent {
	if !color.Valid() {
		panic(fmt.Sprintf("invalid agent colour %d", color))
	}
	return &Agent{color: color, searcher: s}
}

// NewMinimaxAgent returns an agent searching with plain minimax.
func NewMinimaxAgent(color game.Color, options ...searcher.Option) *Agent {
	options = append(options, searcher.WithMetrics())
	return New(color, searcher.NewMinimax(options...))
}

// NewAlphaBetaAgent returns an agent searching with alpha-beta pruning.
func NewAlphaBetaAgent(color game.Color, options ...searcher.Option) *Agent {
	options = append(options, searcher.WithMetrics())
	return New(color, searcher.NewAlphaBeta(options...))
}

func (a *Agent) Color() game.Color {
	return a.color
}

func (a *Agent) FindMove(state *game.GameState) (game.Position, error) {
	if state.Player() != a.color {
		return game.NoPosition, fmt.Errorf("%s agent asked to move for %s", a.color, state.Player())
	}
	move, metric, err := a.searcher.Search(state)
	if err != nil {
		return game.NoPosition, err
	}
	a.last = metric
	return move, nil
}

func (a *Agent) LastMetrics() metrics.SearchMetric {
	return a.last
}

// Expanded is the number of successor states generated over all searches.
func (a *Agent) Expanded() int {
	return a.searcher.Expanded()
}
