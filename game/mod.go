package game

// State is the view of a game the searchers work on. Implementations are
// mutable: Move changes the receiver, so searchers Clone before playing a
// candidate move.
type State interface {
	// Player returns the colour whose turn it is.
	Player() Color
	// LegalMoves returns the current player's legal moves in row-major order.
	LegalMoves() []Position
	// Move plays a legal move for the current player and returns the flipped tiles.
	Move(place Position) ([]Position, error)
	IsTerminal() bool
	Clone() State
}

// Evaluate scores a state from the given player's perspective. Higher is
// better for player.
type Evaluate func(state State, player Color) float64
