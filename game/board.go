package game

import "fmt"

const Size = 8

// Color identifies one of the two players. The value doubles as the sign used
// for occupancy and utility scoring.
type Color int8

const (
	NoColor Color = 0
	Black   Color = -1
	White   Color = 1
)

func (c Color) Valid() bool {
	return c == Black || c == White
}

// Opponent returns the other player. It panics for NoColor.
func (c Color) Opponent() Color {
	if !c.Valid() {
		panic(fmt.Sprintf("no opponent for colour %d", c))
	}
	return -c
}

func (c Color) Sign() int {
	return int(c)
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}

// ParseColor maps "black" and "white" to their colour.
func ParseColor(name string) (Color, error) {
	switch name {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	default:
		return NoColor, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}
}

// Position is a zero-based (row, column) pair.
type Position struct {
	Row int
	Col int
}

// NoPosition stands in for an absent or unparseable coordinate. It is never
// on the board.
var NoPosition = Position{Row: -1, Col: -1}

// OnBoard reports whether both coordinates lie in [0, Size).
func OnBoard(p Position) bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

func (p Position) step(d direction) Position {
	return Position{Row: p.Row + d.dr, Col: p.Col + d.dc}
}

// Cell is either Empty or occupied by a colour.
type Cell int8

const Empty Cell = 0

func Occupant(c Color) Cell {
	return Cell(c)
}

// Owner returns the occupying colour, false for an empty cell.
func (c Cell) Owner() (Color, bool) {
	if c == Empty {
		return NoColor, false
	}
	return Color(c), true
}

// Board is the fixed 8x8 grid. It is a value type: assignment copies it.
type Board [Size][Size]Cell

// At returns the cell at p. Bounds are the caller's responsibility.
func (b *Board) At(p Position) Cell {
	return b[p.Row][p.Col]
}

// Set places c's tile at p. Bounds are the caller's responsibility.
func (b *Board) Set(p Position, c Color) {
	b[p.Row][p.Col] = Occupant(c)
}

func (b *Board) IsEmpty(p Position) bool {
	return OnBoard(p) && b.At(p) == Empty
}

// Count returns the number of cells occupied by c.
func (b *Board) Count(c Color) int {
	count := 0
	for row := range b {
		for _, cell := range b[row] {
			if cell == Occupant(c) {
				count++
			}
		}
	}
	return count
}

// StartingBoard returns the canonical opening: white on d4 and e5, black on
// e4 and d5.
func StartingBoard() Board {
	var b Board
	mid := Size / 2
	b.Set(Position{Row: mid - 1, Col: mid - 1}, White)
	b.Set(Position{Row: mid, Col: mid}, White)
	b.Set(Position{Row: mid - 1, Col: mid}, Black)
	b.Set(Position{Row: mid, Col: mid - 1}, Black)
	return b
}
