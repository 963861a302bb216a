package agent

import (
	"fmt"
	"othello/game"

	"golang.org/x/exp/rand"
)

// RandomAgent plays a uniformly random legal move. It is the baseline
// opponent in experiments.
type RandomAgent struct {
	color game.Color
	rng   *rand.Rand
}

func NewRandomAgent(color game.Color, seed uint64) *RandomAgent {
	if !color.Valid() {
		panic(fmt.Sprintf("invalid agent colour %d", color))
	}
	return &RandomAgent{color: color, rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) Color() game.Color {
	return a.color
}

func (a *RandomAgent) FindMove(state *game.GameState) (game.Position, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.NoPosition, fmt.Errorf("%w: %s to move", game.ErrNoLegalMoves, state.Player())
	}
	return moves[a.rng.Intn(len(moves))], nil
}
