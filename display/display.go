// Package display draws boards for a terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"othello/game"

	"github.com/logrusorgru/aurora"
	"golang.org/x/exp/slices"
)

// Render writes board with column letters, row digits and the tile counts.
// Colours are ANSI escapes and only emitted when colors is set.
func Render(w io.Writer, board game.Board, colors bool) error {
	return RenderWithHints(w, board, nil, colors)
}

// RenderWithHints is Render with the cells in hints marked as playable.
func RenderWithHints(w io.Writer, board game.Board, hints []game.Position, colors bool) error {
	au := aurora.NewAurora(colors)

	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for r := 0; r < game.Size; r++ {
		fmt.Fprintf(&sb, "%d", r+1)
		for c := 0; c < game.Size; c++ {
			p := game.Position{Row: r, Col: c}
			sb.WriteByte(' ')
			owner, ok := board.At(p).Owner()
			switch {
			case ok && owner == game.Black:
				sb.WriteString(au.Cyan("B").String())
			case ok && owner == game.White:
				sb.WriteString(au.Yellow("W").String())
			case slices.Contains(hints, p):
				sb.WriteString(au.Green("*").String())
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "black %d  white %d\n", board.Count(game.Black), board.Count(game.White))

	_, err := io.WriteString(w, sb.String())
	return err
}
