package engine

import (
	"errors"
	"fmt"
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/notation"
	"othello/player"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var ErrTooManyIllegalMoves = errors.New("too many illegal moves")

var _ Engine = (*LocalEngine)(nil)

type LocalEngine struct {
	state      *game.GameState
	players    map[game.Color]player.Player
	first      game.Color
	observers  []Observer
	maxIllegal int
}

// NewLocalEngine pairs a black and a white player on the standard board.
func NewLocalEngine(black, white player.Player, options ...Option) (*LocalEngine, error) {
	if black == nil || white == nil {
		return nil, errors.New("both players are required")
	}
	if black.Color() != game.Black || white.Color() != game.White {
		return nil, fmt.Errorf("%w: got %s and %s", game.ErrSamePlayer, black.Color(), white.Color())
	}

	e := &LocalEngine{
		players:    map[game.Color]player.Player{game.Black: black, game.White: white},
		first:      game.Black,
		maxIllegal: meta.MAX_ILLEGAL_ATTEMPTS,
	}
	for _, option := range options {
		option(e)
	}

	state, err := game.NewGameState(e.first, e.first.Opponent())
	if err != nil {
		return nil, err
	}
	e.state = state
	return e, nil
}

// State returns a copy of the current position.
func (e *LocalEngine) State() *game.GameState {
	return e.state.Copy()
}

// Run executes the game loop until neither player can move.
func (e *LocalEngine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.first,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.first)

	step := 1
	for !e.state.IsTerminal() {
		current := e.state.Player()
		p := e.players[current]

		move, err := e.requestMove(p)
		if err != nil {
			return e.state.Outcome(), gameMetric, moveMetrics, err
		}

		flips, err := e.state.Move(move)
		if err != nil {
			// requestMove only returns legal moves
			panic(fmt.Sprintf("engine applied an unchecked move: %v", err))
		}

		mm := metrics.MoveMetric{Step: step, Player: current, Move: move, Flips: len(flips)}
		if r, ok := p.(player.Reporter); ok {
			mm.SearchMetric = r.LastMetrics()
		}
		moveMetrics = append(moveMetrics, mm)

		passed := e.state.Passed() && !e.state.IsTerminal()
		log.Debug().Msgf("step %d: %s plays %s flipping %d", step, current, notation.Format(move), len(flips))
		if passed {
			gameMetric.Passes++
			log.Info().Msgf("%s has no legal move and passes", current.Opponent())
		}

		e.notify(Update{
			Step:   step,
			Player: current,
			Move:   move,
			Flips:  flips,
			Passed: passed,
			Board:  e.state.Board(),
		})
		step++
	}

	outcome := e.state.Outcome()
	gameMetric.Winner = outcome.Winner
	gameMetric.Black = outcome.Black
	gameMetric.White = outcome.White
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	if outcome.Draw() {
		log.Info().Msgf("game drawn %d-%d after %d moves", outcome.Black, outcome.White, gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("%s wins %d-%d after %d moves", outcome.Winner, outcome.Black, outcome.White, gameMetric.TotalMoves)
	}
	return outcome, gameMetric, moveMetrics, nil
}

// requestMove asks p until it proposes a legal move or runs out of attempts.
func (e *LocalEngine) requestMove(p player.Player) (game.Position, error) {
	legal := e.state.LegalMoves()
	for attempt := 1; attempt <= e.maxIllegal; attempt++ {
		move, err := p.FindMove(e.state.Copy())
		if err != nil {
			return game.NoPosition, fmt.Errorf("%s failed to move: %w", p.Color(), err)
		}
		if slices.Contains(legal, move) {
			return move, nil
		}
		log.Warn().Msgf("%s proposed illegal move %s (attempt %d of %d)", p.Color(), notation.Format(move), attempt, e.maxIllegal)
	}
	return game.NoPosition, fmt.Errorf("%w: %s gave up after %d attempts", ErrTooManyIllegalMoves, p.Color(), e.maxIllegal)
}

func (e *LocalEngine) notify(u Update) {
	for _, o := range e.observers {
		o(u)
	}
}
