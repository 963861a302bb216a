package engine

import (
	"othello/experiments/metrics"
	"othello/game"
)

// Engine runs one game between two players.
type Engine interface {
	// Run plays until neither side can move and returns the final tally.
	Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error)
}

// Update describes one applied move. Passed is set when the move left the
// opponent without a reply, so the mover plays again.
type Update struct {
	Step   int
	Player game.Color
	Move   game.Position
	Flips  []game.Position
	Passed bool
	Board  game.Board
}

// Observer is notified after every applied move, e.g. to draw the board.
type Observer func(u Update)

type Option func(e *LocalEngine)

// WithFirst sets the colour that moves first. Black starts by default.
func WithFirst(c game.Color) Option {
	return func(e *LocalEngine) {
		if c.Valid() {
			e.first = c
		}
	}
}

func WithObserver(o Observer) Option {
	return func(e *LocalEngine) {
		if o != nil {
			e.observers = append(e.observers, o)
		}
	}
}

// WithMaxIllegalAttempts bounds how often a player is asked again after
// proposing an illegal move.
func WithMaxIllegalAttempts(n int) Option {
	return func(e *LocalEngine) {
		if n > 0 {
			e.maxIllegal = n
		}
	}
}
