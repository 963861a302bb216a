package experiments

import (
	"context"
	"fmt"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// MatchUp pairs two agents. The first takes black in the first game of the
// matchup and the colours alternate after that.
type MatchUp [2]metrics.AgentConfig

type Results struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

type job struct {
	id      int
	matchUp int
	game    int
	black   metrics.AgentConfig
	white   metrics.AgentConfig
}

type outcome struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

// DepthMatchUps pits every config against the baseline.
func DepthMatchUps(baseline metrics.AgentConfig, configs []metrics.AgentConfig) []MatchUp {
	matchUps := make([]MatchUp, 0, len(configs))
	for _, config := range configs {
		matchUps = append(matchUps, MatchUp{baseline, config})
	}
	return matchUps
}

// Run plays games games per matchup on at most workers goroutines. Every game
// is single-threaded and owns its agents. Results are ordered by game ID
// whatever the scheduling. A non-nil writer receives the configs, the records
// and the expansion chart.
func Run(ctx context.Context, name string, configs []metrics.AgentConfig, matchUps []MatchUp, games, workers int,
	writer *metrics.Writer, options ...searcher.Option) (Results, error) {
	if games <= 0 {
		return Results{}, fmt.Errorf("experiment %s: games must be positive, got %d", name, games)
	}
	if workers <= 0 {
		workers = 1
	}

	jobs := make([]job, 0, len(matchUps)*games)
	for mi, matchUp := range matchUps {
		for i := 0; i < games; i++ {
			black, white := matchUp[0], matchUp[1]
			if i%2 == 1 {
				black, white = white, black
			}
			jobs = append(jobs, job{id: len(jobs) + 1, matchUp: mi + 1, game: i + 1, black: black, white: white})
		}
	}

	log.Info().Msgf("starting %s experiment with %d games on %d workers...", name, len(jobs), workers)

	outcomes := make([]outcome, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		i, j := i, j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			log.Info().Msgf("starting matchup %d of %d game %d of %d between black=%+v and white=%+v...",
				j.matchUp, len(matchUps), j.game, games, j.black, j.white)

			o, err := runGame(j, options)
			if err != nil {
				return fmt.Errorf("game %d: %w", j.id, err)
			}
			outcomes[i] = o

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", j.matchUp, len(matchUps), j.game, o.game.Winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Results{}, err
	}
	if err := ctx.Err(); err != nil {
		return Results{}, err
	}

	results := Results{}
	for _, o := range outcomes {
		results.Games = append(results.Games, o.game)
		results.Moves = append(results.Moves, o.moves...)
	}
	log.Info().Msgf("completed %s experiment", name)

	if writer == nil {
		return results, nil
	}
	if err := write(writer, configs, results); err != nil {
		return results, err
	}
	return results, nil
}

func runGame(j job, options []searcher.Option) (outcome, error) {
	black, err := agent.FromConfig(seeded(j.black, j.id), game.Black, options...)
	if err != nil {
		return outcome{}, err
	}
	white, err := agent.FromConfig(seeded(j.white, j.id), game.White, options...)
	if err != nil {
		return outcome{}, err
	}

	e, err := engine.NewLocalEngine(black, white)
	if err != nil {
		return outcome{}, err
	}
	_, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return outcome{}, err
	}

	o := outcome{
		game: metrics.GameRecord{
			ID:         j.id,
			Black:      j.black.ID,
			White:      j.white.ID,
			GameMetric: gameMetric,
		},
		moves: make([]metrics.MoveRecord, 0, len(moveMetrics)),
	}
	for _, mm := range moveMetrics {
		o.moves = append(o.moves, metrics.MoveRecord{Game: j.id, MoveMetric: mm})
	}
	return o, nil
}

// seeded varies the random seed per game so repeated games differ but a rerun
// reproduces them.
func seeded(config metrics.AgentConfig, gameID int) metrics.AgentConfig {
	config.Seed += uint64(gameID)
	return config
}

func write(writer *metrics.Writer, configs []metrics.AgentConfig, results Results) error {
	err := writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(results.Games)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(results.Moves)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	err = writer.WriteExpansionChart(configs, results.Games, results.Moves)
	if err != nil {
		return fmt.Errorf("failed to write expansion chart: %w", err)
	}
	log.Info().Msgf("stored experiment in %s", writer.Dir())
	return nil
}
