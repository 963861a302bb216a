package searcher

import (
	"fmt"
	"othello/experiments/metrics"
	"othello/game"
	"time"
)

// search holds what minimax and alpha-beta share: the cutoff test, successor
// generation and the evaluation from the searching player's perspective.
type search struct {
	settings
	algorithm string
	player    game.Color
	start     time.Time
	expanded  int
}

func (s *search) begin(state game.State) {
	s.player = state.Player()
	s.start = s.now()
	s.metrics.Start(s.algorithm, s.depth, s.timeLimit)
}

func (s *search) Expanded() int {
	return s.expanded
}

// result plays move on a copy of state so sibling branches never observe
// each other's moves.
func (s *search) result(state game.State, move game.Position) game.State {
	s.expanded++
	s.metrics.AddExpansion()

	child := state.Clone()
	if _, err := child.Move(move); err != nil {
		panic(fmt.Sprintf("search produced an illegal move: %v", err))
	}
	return child
}

// cutOff reports whether the node is evaluated statically. The clock is only
// read here, so a search can overrun its time limit by the cost of reaching
// the next node.
func (s *search) cutOff(state game.State, depth int) bool {
	switch {
	case state.IsTerminal():
		s.metrics.AddCutoff(metrics.TerminalCutoff)
	case s.depth != Unbounded && depth <= 0:
		s.metrics.AddCutoff(metrics.DepthCutoff)
	case s.timeLimit > 0 && s.now().Sub(s.start) >= s.timeLimit:
		s.metrics.AddCutoff(metrics.TimeCutoff)
	default:
		return false
	}
	return true
}

func (s *search) utility(state game.State) float64 {
	return s.evaluate(state, s.player)
}

// maximizing reports whether the searching player is to move. A pass keeps the
// same player on move, so the levels do not strictly alternate.
func (s *search) maximizing(state game.State) bool {
	return state.Player() == s.player
}

func rootMoves(state game.State) ([]game.Position, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, fmt.Errorf("%w: %s to move", game.ErrNoLegalMoves, state.Player())
	}
	return moves, nil
}
