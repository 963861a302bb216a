package searcher

import (
	"math"
	"othello/experiments/metrics"
	"othello/game"
)

// Minimax searches the full game tree down to the cutoff without pruning.
type Minimax struct {
	search
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{search: search{settings: newSettings(options), algorithm: "minimax"}}
}

// Search returns the move with the highest minimax value. Ties go to the move
// found first in row-major order.
func (m *Minimax) Search(state game.State) (game.Position, metrics.SearchMetric, error) {
	moves, err := rootMoves(state)
	if err != nil {
		return game.NoPosition, metrics.SearchMetric{}, err
	}
	m.begin(state)

	best, bestValue := game.NoPosition, math.Inf(-1)
	for _, move := range moves {
		v := m.value(m.result(state, move), m.depth-1)
		if best == game.NoPosition || v > bestValue {
			best, bestValue = move, v
		}
	}
	return best, m.metrics.Complete(bestValue), nil
}

func (m *Minimax) value(state game.State, depth int) float64 {
	if m.maximizing(state) {
		return m.maxValue(state, depth)
	}
	return m.minValue(state, depth)
}

func (m *Minimax) maxValue(state game.State, depth int) float64 {
	if m.cutOff(state, depth) {
		return m.utility(state)
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return m.utility(state)
	}
	v := math.Inf(-1)
	for _, a := range moves {
		v = math.Max(v, m.value(m.result(state, a), depth-1))
	}
	return v
}

func (m *Minimax) minValue(state game.State, depth int) float64 {
	if m.cutOff(state, depth) {
		return m.utility(state)
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return m.utility(state)
	}
	v := math.Inf(1)
	for _, a := range moves {
		v = math.Min(v, m.value(m.result(state, a), depth-1))
	}
	return v
}
