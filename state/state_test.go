package state_test

import (
	"bytes"
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/ratel-online/uno/database"
	"github.com/ratel-online/uno/session"
	"github.com/ratel-online/uno/state"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, lines ...string) (*session.Session, string) {
	color.SetEnabled(false)
	t.Cleanup(func() { color.SetEnabled(true) })
	out := &bytes.Buffer{}
	input := strings.Join(lines, "\n")
	if input != "" {
		input += "\n"
	}
	terminal := ui.NewTerminal(strings.NewReader(input), out)
	s := session.New(terminal, database.NewMemory(), session.Options{Rand: rand.New(rand.NewSource(3))})
	require.NoError(t, state.Run(context.Background(), s))
	return s, out.String()
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	s, out := run(t)
	require.Contains(t, out, "What's your name?")
	require.Empty(t, s.Players())
}

func TestRunMenus(t *testing.T) {
	s, out := run(t,
		"Hal", "Ann",
		"abc",
		"4", "1", "4",
		"6",
		"7",
		"5", "q",
		"7", "1", "q",
		"2",
		"3", "3",
		"8",
	)
	require.Contains(t, out, "WELCOME TO UNO")
	require.Contains(t, out, "Invalid number input")
	require.Contains(t, out, "1. Zero swap: on")
	require.Contains(t, out, "This session:")
	require.Contains(t, out, "No quit matches to resume")
	require.Contains(t, out, "The match was quit, it can be resumed from the menu.")
	require.Contains(t, out, "SkyNet joined")
	require.True(t, strings.HasSuffix(out, "Bye!\n"))

	require.True(t, s.Settings().Rules.ZeroSwap)
	players := s.Players()
	require.Len(t, players, 2)
	require.Equal(t, "Ann", players[0].Name())
	require.Equal(t, "Watson", players[1].Name())
}
