package game

import "othello/meta"

// Weights are the per-cell multipliers of the static evaluation.
type Weights struct {
	Interior float64
	Edge     float64
	Corner   float64
}

func DefaultWeights() Weights {
	return Weights{Interior: meta.INTERIOR_WEIGHT, Edge: meta.EDGE_WEIGHT, Corner: meta.CORNER_WEIGHT}
}

// Grid expands the weights into a per-cell table. Corners take Corner, the
// remaining border cells Edge, everything else Interior.
func (w Weights) Grid() [Size][Size]float64 {
	var grid [Size][Size]float64
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			rowEdge := row == 0 || row == Size-1
			colEdge := col == 0 || col == Size-1
			switch {
			case rowEdge && colEdge:
				grid[row][col] = w.Corner
			case rowEdge || colEdge:
				grid[row][col] = w.Edge
			default:
				grid[row][col] = w.Interior
			}
		}
	}
	return grid
}

// Boarded is implemented by states that expose their grid.
type Boarded interface {
	Board() Board
}

// NewWeightedEvaluator sums weight(cell) * sign(occupant) over the board and
// multiplies by the player's sign. The grid is computed once and never
// mutated afterwards.
func NewWeightedEvaluator(w Weights) Evaluate {
	grid := w.Grid()
	return func(s State, player Color) float64 {
		b := boardOf(s)
		sum := 0.0
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				if owner, ok := b[row][col].Owner(); ok {
					sum += grid[row][col] * float64(owner.Sign())
				}
			}
		}
		return sum * float64(player.Sign())
	}
}

// EvaluateTiles is the unweighted tile difference from player's perspective.
func EvaluateTiles(s State, player Color) float64 {
	b := boardOf(s)
	return float64(b.Count(player) - b.Count(player.Opponent()))
}

func boardOf(s State) Board {
	bs, ok := s.(Boarded)
	if !ok {
		panic("unexpected state type")
	}
	return bs.Board()
}
