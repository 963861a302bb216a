package player

import (
	"io"
	"othello/game"
)

// ScriptedSource replays a fixed list of moves and then reports io.EOF.
type ScriptedSource struct {
	moves []game.Position
}

func NewScriptedSource(moves ...game.Position) *ScriptedSource {
	return &ScriptedSource{moves: moves}
}

func (s *ScriptedSource) NextMove(game.Color, []game.Position) (game.Position, error) {
	if len(s.moves) == 0 {
		return game.NoPosition, io.EOF
	}
	move := s.moves[0]
	s.moves = s.moves[1:]
	return move, nil
}

func (s *ScriptedSource) Remaining() int {
	return len(s.moves)
}
