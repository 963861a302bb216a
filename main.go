package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"othello/config"
	"othello/display"
	"othello/engine"
	"othello/experiments"
	"othello/experiments/metrics"
	"othello/game"
	"othello/notation"
	"othello/player"
	"othello/searcher"
	"othello/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a YAML configuration file")
	experiment := flag.Bool("experiment", false, "Run the configured experiment instead of a game")
	colors := flag.Bool("colors", true, "Colour the board")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	evaluation := cfg.EvaluationOption()

	if *experiment {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runExperiment(ctx, cfg, evaluation); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	if err := playGame(cfg, *colors, evaluation); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

func playGame(cfg *config.Config, colors bool, options ...searcher.Option) error {
	players := make(map[game.Color]player.Player, 2)
	for id, color := range []game.Color{game.Black, game.White} {
		pc := cfg.Player(color)
		if pc.IsHuman() {
			human := player.NewHuman(color, newConsoleSource(os.Stdin, os.Stdout))
			players[color] = &hintedHuman{Player: human, out: os.Stdout, colors: colors}
			continue
		}
		p, err := agent.FromConfig(pc.AgentConfig(id+1), color, options...)
		if err != nil {
			return err
		}
		players[color] = p
	}

	e, err := engine.NewLocalEngine(players[game.Black], players[game.White],
		engine.WithFirst(cfg.FirstColor()),
		engine.WithObserver(func(u engine.Update) {
			fmt.Printf("\n%s plays %s\n", u.Player, notation.Format(u.Move))
			if err := display.Render(os.Stdout, u.Board, colors); err != nil {
				log.Error().Err(err).Msg("failed to draw board")
			}
			if u.Passed {
				fmt.Printf("%s has no legal move and passes\n", u.Player.Opponent())
			}
		}))
	if err != nil {
		return err
	}

	outcome, _, _, err := e.Run()
	if err != nil {
		return err
	}

	if outcome.Draw() {
		fmt.Printf("\nDraw, %d to %d\n", outcome.Black, outcome.White)
	} else {
		fmt.Printf("\n%s wins, %d to %d\n", outcome.Winner, outcome.Black, outcome.White)
	}
	return nil
}

func runExperiment(ctx context.Context, cfg *config.Config, options ...searcher.Option) error {
	ex := cfg.Experiment
	baseline, configs := ex.Contestants()

	writer, err := metrics.NewWriter(ex.Output, ex.Name)
	if err != nil {
		return err
	}

	_, err = experiments.Run(ctx, ex.Name, append(configs, baseline), experiments.DepthMatchUps(baseline, configs),
		ex.Games, ex.Workers, writer, options...)
	return err
}
