package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeightsGrid(t *testing.T) {
	grid := DefaultWeights().Grid()

	for _, corner := range []Position{{0, 0}, {0, 7}, {7, 0}, {7, 7}} {
		require.Equal(t, 10.0, grid[corner.Row][corner.Col])
	}
	require.Equal(t, 3.0, grid[0][3])
	require.Equal(t, 3.0, grid[5][7])
	require.Equal(t, 1.0, grid[1][1])
	require.Equal(t, 1.0, grid[3][4])
}

func TestWeightedEvaluator(t *testing.T) {
	evaluate := NewWeightedEvaluator(DefaultWeights())

	t.Run("opening position is balanced", func(t *testing.T) {
		gs := StandardGame()
		require.Equal(t, 0.0, evaluate(gs, Black))
		require.Equal(t, 0.0, evaluate(gs, White))
	})

	t.Run("corners and edges dominate", func(t *testing.T) {
		var b Board
		b.Set(Position{Row: 0, Col: 0}, Black)
		b.Set(Position{Row: 0, Col: 3}, White)
		b.Set(Position{Row: 3, Col: 3}, White)
		gs, err := NewGameStateFromBoard(b, Black, White)
		require.NoError(t, err)

		// black: 10, white: 3 + 1
		require.Equal(t, 6.0, evaluate(gs, Black))
		require.Equal(t, -6.0, evaluate(gs, White))
	})

	t.Run("weights are configurable", func(t *testing.T) {
		flat := NewWeightedEvaluator(Weights{Interior: 1, Edge: 1, Corner: 1})
		gs := StandardGame()
		_, err := gs.Move(Position{Row: 2, Col: 3})
		require.NoError(t, err)
		require.Equal(t, 3.0, flat(gs, Black))
	})

	t.Run("panics on states without a board", func(t *testing.T) {
		require.Panics(t, func() { evaluate(boardless{}, Black) })
	})
}

func TestEvaluateTiles(t *testing.T) {
	gs := StandardGame()
	_, err := gs.Move(Position{Row: 2, Col: 3})
	require.NoError(t, err)

	require.Equal(t, 3.0, EvaluateTiles(gs, Black))
	require.Equal(t, -3.0, EvaluateTiles(gs, White))
}

type boardless struct{}

func (boardless) Player() Color                     { return Black }
func (boardless) LegalMoves() []Position            { return nil }
func (boardless) Move(Position) ([]Position, error) { return nil, nil }
func (boardless) IsTerminal() bool                  { return true }
func (boardless) Clone() State                      { return boardless{} }
