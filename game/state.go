package game

import "fmt"

// GameState owns the board and the turn order. Legal moves and the terminal
// flag are derived from the board on demand.
type GameState struct {
	board   Board
	current Color
	other   Color
	passed  bool
}

// NewGameState starts a game on the canonical opening with current to move.
func NewGameState(current, other Color) (*GameState, error) {
	return NewGameStateFromBoard(StartingBoard(), current, other)
}

// NewGameStateFromBoard starts a game from an arbitrary position.
func NewGameStateFromBoard(board Board, current, other Color) (*GameState, error) {
	if !current.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, current)
	}
	if !other.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, other)
	}
	if current == other {
		return nil, fmt.Errorf("%w: both are %s", ErrSamePlayer, current)
	}
	return &GameState{board: board, current: current, other: other}, nil
}

// StandardGame returns the opening position with black to move.
func StandardGame() *GameState {
	return &GameState{board: StartingBoard(), current: Black, other: White}
}

// Board returns a copy of the grid.
func (gs *GameState) Board() Board {
	return gs.board
}

func (gs *GameState) Player() Color {
	return gs.current
}

func (gs *GameState) Other() Color {
	return gs.other
}

// Passed reports whether the last move forced the other player to pass.
func (gs *GameState) Passed() bool {
	return gs.passed
}

func (gs *GameState) LegalMoves() []Position {
	return LegalMoves(&gs.board, gs.current, gs.other)
}

// Flips returns what the current player would capture at place, nil if the
// move is not legal.
func (gs *GameState) Flips(place Position) []Position {
	return Flips(&gs.board, gs.current, gs.other, place)
}

// Move places the current player's tile, flips the captured tiles and hands
// the turn over. A player without legal moves is skipped. An illegal place
// leaves the state untouched and returns ErrIllegalMove.
func (gs *GameState) Move(place Position) ([]Position, error) {
	flips := gs.Flips(place)
	if flips == nil {
		return nil, fmt.Errorf("%w: %s cannot play (%d,%d)", ErrIllegalMove, gs.current, place.Row, place.Col)
	}

	for _, p := range flips {
		gs.board.Set(p, gs.current)
	}
	gs.board.Set(place, gs.current)

	gs.swap()
	gs.passed = false
	if len(gs.LegalMoves()) == 0 {
		gs.swap()
		gs.passed = true
	}
	return flips, nil
}

func (gs *GameState) swap() {
	gs.current, gs.other = gs.other, gs.current
}

// IsTerminal reports whether neither player has a legal move.
func (gs *GameState) IsTerminal() bool {
	return len(LegalMoves(&gs.board, gs.current, gs.other)) == 0 &&
		len(LegalMoves(&gs.board, gs.other, gs.current)) == 0
}

func (gs *GameState) TileCount(c Color) int {
	return gs.board.Count(c)
}

// Copy returns an independent state. The board is a value, so nothing is
// shared with the receiver.
func (gs *GameState) Copy() *GameState {
	clone := *gs
	return &clone
}

func (gs *GameState) Clone() State {
	return gs.Copy()
}

// Outcome tallies the tiles. The player with more tiles wins, equal counts
// are a draw.
type Outcome struct {
	Black  int
	White  int
	Winner Color // NoColor on a draw
}

func (o Outcome) Draw() bool {
	return o.Winner == NoColor
}

func (gs *GameState) Outcome() Outcome {
	o := Outcome{Black: gs.TileCount(Black), White: gs.TileCount(White)}
	switch {
	case o.Black > o.White:
		o.Winner = Black
	case o.White > o.Black:
		o.Winner = White
	}
	return o
}
