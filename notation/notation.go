// Package notation converts between board positions and the "d3" style
// coordinates people type: a column letter a-h and a row digit 1-8, in either
// order.
package notation

import (
	"strings"

	"othello/game"
)

// Parse reads "d3" or "3d". Anything else yields game.NoPosition and false.
func Parse(s string) (game.Position, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return game.NoPosition, false
	}
	letter, digit := s[0], s[1]
	if isDigit(letter) && isLetter(digit) {
		letter, digit = digit, letter
	}
	if !isLetter(letter) || !isDigit(digit) {
		return game.NoPosition, false
	}
	return game.Position{Row: int(digit - '1'), Col: int(letter - 'a')}, true
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) game.Position {
	p, ok := Parse(s)
	if !ok {
		panic("invalid coordinate " + s)
	}
	return p
}

// Format renders an on-board position as "d3", anything else as "--".
func Format(p game.Position) string {
	if !game.OnBoard(p) {
		return "--"
	}
	return string([]byte{byte('a' + p.Col), byte('1' + p.Row)})
}

func FormatAll(ps []game.Position) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = Format(p)
	}
	return out
}

func isLetter(c byte) bool {
	return c >= 'a' && c < 'a'+game.Size
}

func isDigit(c byte) bool {
	return c >= '1' && c < '1'+game.Size
}
