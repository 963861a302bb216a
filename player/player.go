package player

import (
	"fmt"
	"othello/experiments/metrics"
	"othello/game"
)

// Player produces moves for one colour. Implementations range from a person
// at a prompt to the search agents in searcher/agent.
type Player interface {
	Color() game.Color
	FindMove(state *game.GameState) (game.Position, error)
}

// Reporter is implemented by players that can describe their last search.
type Reporter interface {
	LastMetrics() metrics.SearchMetric
}

// MoveSource supplies coordinates that were already translated from whatever
// the person typed. Untranslatable input is reported as game.NoPosition.
type MoveSource interface {
	NextMove(color game.Color, legal []game.Position) (game.Position, error)
}

// Human asks a MoveSource for every move. Legality is checked by the engine,
// which asks again after an illegal move.
type Human struct {
	color  game.Color
	source MoveSource
}

func NewHuman(color game.Color, source MoveSource) *Human {
	if !color.Valid() {
		panic(fmt.Sprintf("invalid player colour %d", color))
	}
	return &Human{color: color, source: source}
}

func (h *Human) Color() game.Color {
	return h.color
}

func (h *Human) FindMove(state *game.GameState) (game.Position, error) {
	move, err := h.source.NextMove(h.color, state.LegalMoves())
	if err != nil {
		return game.NoPosition, fmt.Errorf("failed to read move for %s: %w", h.color, err)
	}
	return move, nil
}
