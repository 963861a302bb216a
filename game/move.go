package game

type direction struct {
	dr, dc int
}

// Every combination of {-1,0,1}x{-1,0,1} except (0,0).
var directions = []direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Flips returns the opponent tiles that mover captures by playing place, or
// nil if the move is not legal. An off-board or occupied place is not legal.
// It panics if mover and opponent are the same colour.
func Flips(b *Board, mover, opponent Color, place Position) []Position {
	if mover == opponent {
		panic("mover and opponent must be distinct")
	}
	if !b.IsEmpty(place) {
		return nil
	}

	var flips []Position
	for _, d := range directions {
		flips = append(flips, flipsInDirection(b, mover, opponent, place, d)...)
	}
	if len(flips) == 0 {
		return nil
	}
	return flips
}

// flipsInDirection walks the opponent run starting next to place. The run
// only counts when a mover tile bounds it on the board.
func flipsInDirection(b *Board, mover, opponent Color, place Position, d direction) []Position {
	cur := place.step(d)
	if !OnBoard(cur) {
		return nil
	}
	for b.At(cur) == Occupant(opponent) {
		cur = cur.step(d)
		if !OnBoard(cur) {
			return nil
		}
	}
	if b.At(cur) != Occupant(mover) {
		return nil
	}

	var run []Position
	back := direction{-d.dr, -d.dc}
	for cur = cur.step(back); cur != place; cur = cur.step(back) {
		run = append(run, cur)
	}
	return run
}

// IsLegal reports whether mover may play place.
func IsLegal(b *Board, mover, opponent Color, place Position) bool {
	return Flips(b, mover, opponent, place) != nil
}

// LegalMoves enumerates mover's legal moves in row-major order.
func LegalMoves(b *Board, mover, opponent Color) []Position {
	var moves []Position
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			p := Position{Row: row, Col: col}
			if IsLegal(b, mover, opponent, p) {
				moves = append(moves, p)
			}
		}
	}
	return moves
}
