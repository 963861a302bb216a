package experiments

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"othello/experiments/metrics"
	"othello/game"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	baseline := metrics.AgentConfig{ID: 0, Kind: "random", Depth: -1, Seed: 1}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: "alphabeta", Depth: 1},
		{ID: 2, Kind: "minimax", Depth: 1},
	}
	matchUps := DepthMatchUps(baseline, configs)

	t.Run("alternates colours and records every game", func(t *testing.T) {
		results, err := Run(context.Background(), "depth", append(configs, baseline), matchUps, 3, 4, nil)
		require.NoError(t, err)
		require.Len(t, results.Games, 6)

		for i, g := range results.Games {
			require.Equal(t, i+1, g.ID)
			require.Equal(t, game.Black, g.StartingPlayer)
			require.Equal(t, 64, g.GameMetric.Black+g.GameMetric.White+emptyAtEnd(t, results, g))
			require.Positive(t, g.TotalMoves)
		}
		require.Equal(t, []int{0, 1, 0}, []int{results.Games[0].Black, results.Games[1].Black, results.Games[2].Black})
		require.Equal(t, []int{1, 0, 1}, []int{results.Games[0].White, results.Games[1].White, results.Games[2].White})
		require.Equal(t, 2, results.Games[4].Black)

		total := 0
		for _, g := range results.Games {
			total += g.TotalMoves
		}
		require.Len(t, results.Moves, total)
		for _, m := range results.Moves {
			g := results.Games[m.Game-1]
			if (m.Player == game.Black && g.Black == 0) || (m.Player == game.White && g.White == 0) {
				require.Empty(t, m.Algorithm)
			} else {
				require.NotEmpty(t, m.Algorithm)
			}
		}
	})

	t.Run("is reproducible", func(t *testing.T) {
		first, err := Run(context.Background(), "depth", configs, matchUps[:1], 2, 2, nil)
		require.NoError(t, err)
		second, err := Run(context.Background(), "depth", configs, matchUps[:1], 2, 1, nil)
		require.NoError(t, err)

		for i := range first.Moves {
			require.Equal(t, first.Moves[i].Move, second.Moves[i].Move)
		}
	})

	t.Run("writes the results", func(t *testing.T) {
		writer, err := metrics.NewWriter(t.TempDir(), "depth")
		require.NoError(t, err)

		_, err = Run(context.Background(), "depth", configs, matchUps[:1], 1, 1, writer)
		require.NoError(t, err)

		for _, name := range []string{"agent_configs.csv", "games.csv", "moves.csv", "expansions.html"} {
			_, err := os.Stat(filepath.Join(writer.Dir(), name))
			require.NoError(t, err, name)
		}
	})

	t.Run("fails on a bad config", func(t *testing.T) {
		bad := []MatchUp{{baseline, {ID: 9, Kind: "mcts"}}}
		_, err := Run(context.Background(), "bad", nil, bad, 1, 1, nil)
		require.Error(t, err)
	})

	t.Run("stops when cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Run(ctx, "cancelled", configs, matchUps, 2, 1, nil)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("needs games", func(t *testing.T) {
		_, err := Run(context.Background(), "empty", configs, matchUps, 0, 1, nil)
		require.Error(t, err)
	})
}

// emptyAtEnd replays the recorded moves of g to count the empty cells left.
func emptyAtEnd(t *testing.T, results Results, g metrics.GameRecord) int {
	state := game.StandardGame()
	for _, m := range results.Moves {
		if m.Game != g.ID {
			continue
		}
		require.Equal(t, state.Player(), m.Player)
		_, err := state.Move(m.Move)
		require.NoError(t, err)
	}
	require.True(t, state.IsTerminal())
	return 64 - state.TileCount(game.Black) - state.TileCount(game.White)
}
