package game_test

import (
	"testing"

	"othello/game"
	"othello/notation"

	"github.com/stretchr/testify/require"
)

func at(s string) game.Position {
	return notation.MustParse(s)
}

func positions(ss ...string) []game.Position {
	out := make([]game.Position, len(ss))
	for i, s := range ss {
		out[i] = at(s)
	}
	return out
}

// place plays a move directly on the board, ignoring turn order.
func place(t *testing.T, b *game.Board, mover game.Color, s string) {
	t.Helper()
	flips := game.Flips(b, mover, mover.Opponent(), at(s))
	require.NotNil(t, flips, "%s should be legal for %s", s, mover)
	for _, p := range flips {
		b.Set(p, mover)
	}
	b.Set(at(s), mover)
}

func TestFlips(t *testing.T) {
	b := game.StartingBoard()

	t.Run("illegal places have no flips", func(t *testing.T) {
		require.Nil(t, game.Flips(&b, game.Black, game.White, game.NoPosition))
		require.Nil(t, game.Flips(&b, game.Black, game.White, game.Position{Row: 2, Col: 11}))
		require.Nil(t, game.Flips(&b, game.Black, game.White, at("d4")), "occupied cell")
		require.Nil(t, game.Flips(&b, game.Black, game.White, at("a1")), "no bounded run")
	})

	t.Run("opening moves for black", func(t *testing.T) {
		require.Equal(t, positions("d4"), game.Flips(&b, game.Black, game.White, at("d3")))
		require.Equal(t, positions("d4"), game.Flips(&b, game.Black, game.White, at("c4")))
		require.Equal(t, positions("e5"), game.Flips(&b, game.Black, game.White, at("e6")))
		require.Equal(t, positions("e5"), game.Flips(&b, game.Black, game.White, at("f5")))
	})

	t.Run("runs reaching the edge do not capture", func(t *testing.T) {
		var edge game.Board
		edge.Set(at("b1"), game.White)
		edge.Set(at("a1"), game.White)
		require.Nil(t, game.Flips(&edge, game.Black, game.White, at("c1")))
	})

	t.Run("adjacent own tile contributes nothing", func(t *testing.T) {
		var adj game.Board
		adj.Set(at("b1"), game.Black)
		adj.Set(at("a2"), game.White)
		adj.Set(at("a3"), game.Black)
		require.Equal(t, positions("a2"), game.Flips(&adj, game.Black, game.White, at("a1")))
	})

	t.Run("long runs flip from the bounding tile back to the place", func(t *testing.T) {
		var row game.Board
		row.Set(at("a1"), game.Black)
		row.Set(at("b1"), game.White)
		row.Set(at("c1"), game.White)
		row.Set(at("d1"), game.White)
		require.Equal(t, positions("b1", "c1", "d1"), game.Flips(&row, game.Black, game.White, at("e1")))
	})

	t.Run("captures in several directions", func(t *testing.T) {
		var g game.Board
		for _, s := range []string{"d3", "d2", "c4", "e5", "e4"} {
			g.Set(at(s), game.White)
		}
		for _, s := range []string{"d1", "b4", "f6"} {
			g.Set(at(s), game.Black)
		}
		// e4 is open-ended towards f4 and stays white.
		require.Equal(t, positions("d2", "d3", "c4", "e5"), game.Flips(&g, game.Black, game.White, at("d4")))
	})

	t.Run("every flip is an opponent tile on a ray from the place", func(t *testing.T) {
		for _, move := range game.LegalMoves(&b, game.Black, game.White) {
			for _, f := range game.Flips(&b, game.Black, game.White, move) {
				require.Equal(t, game.Occupant(game.White), b.At(f))
				dr, dc := f.Row-move.Row, f.Col-move.Col
				require.True(t, dr == 0 || dc == 0 || dr == dc || dr == -dc)
			}
		}
	})

	t.Run("panics when both sides are the same", func(t *testing.T) {
		require.Panics(t, func() { game.Flips(&b, game.Black, game.Black, at("d3")) })
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("opening moves in row-major order", func(t *testing.T) {
		b := game.StartingBoard()
		require.Equal(t, positions("d3", "c4", "f5", "e6"), game.LegalMoves(&b, game.Black, game.White))
		require.Equal(t, positions("e3", "f4", "c5", "d6"), game.LegalMoves(&b, game.White, game.Black))
	})

	t.Run("white replies after black d3", func(t *testing.T) {
		b := game.StartingBoard()
		place(t, &b, game.Black, "d3")
		require.Equal(t, positions("c3", "e3", "c5"), game.LegalMoves(&b, game.White, game.Black))
	})

	t.Run("position with a long diagonal and edge runs", func(t *testing.T) {
		b := game.StartingBoard()
		blackMoves := []string{"d3", "f5", "f4", "h5", "g7", "g8", "f3", "c7", "h6", "e7"}
		whiteMoves := []string{"e3", "e6", "g5", "f6", "f7", "d6", "g6", "f8", "h8", "g4"}
		for i := range blackMoves {
			place(t, &b, game.Black, blackMoves[i])
			place(t, &b, game.White, whiteMoves[i])
		}
		require.Equal(t, positions("h3", "h4", "h7"), game.LegalMoves(&b, game.Black, game.White))
	})

	t.Run("empty board has no moves", func(t *testing.T) {
		var b game.Board
		require.Empty(t, game.LegalMoves(&b, game.Black, game.White))
	})
}
