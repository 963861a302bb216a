package searcher

import (
	"math"
	"othello/experiments/metrics"
	"othello/game"
)

// AlphaBeta is minimax with alpha-beta pruning. It shares the cutoff policy
// and the tie-break with Minimax and never generates more successors.
type AlphaBeta struct {
	search
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{search: search{settings: newSettings(options), algorithm: "alphabeta"}}
}

func (ab *AlphaBeta) Search(state game.State) (game.Position, metrics.SearchMetric, error) {
	moves, err := rootMoves(state)
	if err != nil {
		return game.NoPosition, metrics.SearchMetric{}, err
	}
	ab.begin(state)

	alpha, beta := math.Inf(-1), math.Inf(1)
	best, bestValue := game.NoPosition, math.Inf(-1)
	for _, move := range moves {
		// A later move only replaces best with a strictly higher value, so
		// fail-low results at or below alpha keep the first-found move.
		v := ab.value(ab.result(state, move), ab.depth-1, alpha, beta)
		if best == game.NoPosition || v > bestValue {
			best, bestValue = move, v
		}
		alpha = math.Max(alpha, bestValue)
	}
	return best, ab.metrics.Complete(bestValue), nil
}

func (ab *AlphaBeta) value(state game.State, depth int, alpha, beta float64) float64 {
	if ab.maximizing(state) {
		return ab.maxValue(state, depth, alpha, beta)
	}
	return ab.minValue(state, depth, alpha, beta)
}

func (ab *AlphaBeta) maxValue(state game.State, depth int, alpha, beta float64) float64 {
	if ab.cutOff(state, depth) {
		return ab.utility(state)
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return ab.utility(state)
	}
	v := math.Inf(-1)
	for _, a := range moves {
		v = math.Max(v, ab.value(ab.result(state, a), depth-1, alpha, beta))
		if v >= beta {
			return v
		}
		alpha = math.Max(alpha, v)
	}
	return v
}

func (ab *AlphaBeta) minValue(state game.State, depth int, alpha, beta float64) float64 {
	if ab.cutOff(state, depth) {
		return ab.utility(state)
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return ab.utility(state)
	}
	v := math.Inf(1)
	for _, a := range moves {
		v = math.Min(v, ab.value(ab.result(state, a), depth-1, alpha, beta))
		if v <= alpha {
			return v
		}
		beta = math.Min(beta, v)
	}
	return v
}
