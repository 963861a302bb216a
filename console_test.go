package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"othello/game"
	"othello/notation"
	"othello/player"

	"github.com/stretchr/testify/require"
)

func TestConsoleSource(t *testing.T) {
	var out bytes.Buffer
	src := newConsoleSource(strings.NewReader("d3\n 6E \nz9\n"), &out)
	legal := game.StandardGame().LegalMoves()

	move, err := src.NextMove(game.Black, legal)
	require.NoError(t, err)
	require.Equal(t, notation.MustParse("d3"), move)
	require.Contains(t, out.String(), "black to move [d3 c4 f5 e6]: ")

	move, err = src.NextMove(game.Black, legal)
	require.NoError(t, err)
	require.Equal(t, notation.MustParse("e6"), move)

	move, err = src.NextMove(game.Black, legal)
	require.NoError(t, err)
	require.Equal(t, game.NoPosition, move)
	require.Contains(t, out.String(), `cannot read "z9"`)

	_, err = src.NextMove(game.Black, legal)
	require.ErrorIs(t, err, io.EOF)
}

func TestHintedHuman(t *testing.T) {
	var out bytes.Buffer
	src := player.NewScriptedSource(notation.MustParse("c4"))
	h := &hintedHuman{Player: player.NewHuman(game.Black, src), out: &out}

	move, err := h.FindMove(game.StandardGame())

	require.NoError(t, err)
	require.Equal(t, notation.MustParse("c4"), move)
	require.Equal(t, game.Black, h.Color())
	require.Contains(t, out.String(), "3 . . . * . . . .\n")
	require.Contains(t, out.String(), "4 . . * W B . . .\n")
	require.Contains(t, out.String(), "6 . . . . * . . .\n")
}
