package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"othello/display"
	"othello/game"
	"othello/notation"
	"othello/player"
)

// consoleSource prompts on out and reads one coordinate per line from in.
type consoleSource struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newConsoleSource(in io.Reader, out io.Writer) *consoleSource {
	return &consoleSource{scanner: bufio.NewScanner(in), out: out}
}

func (s *consoleSource) NextMove(color game.Color, legal []game.Position) (game.Position, error) {
	fmt.Fprintf(s.out, "%s to move [%s]: ", color, strings.Join(notation.FormatAll(legal), " "))
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return game.NoPosition, err
		}
		return game.NoPosition, io.EOF
	}

	line := s.scanner.Text()
	move, ok := notation.Parse(line)
	if !ok {
		fmt.Fprintf(s.out, "cannot read %q, expected a letter a-h and a digit 1-8\n", strings.TrimSpace(line))
	}
	return move, nil
}

// hintedHuman draws the board with the playable cells marked before the
// person is asked for a move.
type hintedHuman struct {
	player.Player
	out    io.Writer
	colors bool
}

func (h *hintedHuman) FindMove(state *game.GameState) (game.Position, error) {
	fmt.Fprintln(h.out)
	if err := display.RenderWithHints(h.out, state.Board(), state.LegalMoves(), h.colors); err != nil {
		return game.NoPosition, err
	}
	return h.Player.FindMove(state)
}
