package session_test

import (
	"bytes"
	"context"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/database"
	"github.com/ratel-online/uno/session"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, input string, store database.Store) (*session.Session, *bytes.Buffer) {
	color.SetEnabled(false)
	t.Cleanup(func() { color.SetEnabled(true) })
	out := &bytes.Buffer{}
	terminal := ui.NewTerminal(strings.NewReader(input), out)
	s := session.New(terminal, store, session.Options{
		Rand:     rand.New(rand.NewSource(7)),
		Settings: session.Settings{Rules: game.HouseRules{ReshuffleDiscard: true}, HideComputerHands: true},
	})
	return s, out
}

func TestRoster(t *testing.T) {
	s, _ := newSession(t, "", database.NewMemory())
	require.False(t, s.CanBegin())

	scenarios := []struct {
		description string
		name        string
		err         error
	}{
		{description: "valid", name: "Ann"},
		{description: "empty", name: "   ", err: consts.ErrorsNameInvalid},
		{description: "too_long", name: "Bartholomew J", err: consts.ErrorsNameInvalid},
		{description: "taken_ignoring_case", name: "ann", err: consts.ErrorsNameTaken},
		{description: "computer_name", name: "hal", err: consts.ErrorsNameReserved},
		{description: "longest_name", name: "Bartholomew"},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			err := s.AddHuman(scenario.name)
			if scenario.err != nil {
				require.ErrorIs(t, err, scenario.err)
				return
			}
			require.NoError(t, err)
		})
	}
	require.True(t, s.CanBegin())

	name, err := s.AddComputer()
	require.NoError(t, err)
	require.Equal(t, "Watson", name)
	name, err = s.AddComputer()
	require.NoError(t, err)
	require.Equal(t, "SkyNet", name)
	require.False(t, s.CanAdd())

	_, err = s.AddComputer()
	require.ErrorIs(t, err, consts.ErrorsRosterFull)
	require.ErrorIs(t, s.AddHuman("Zoe"), consts.ErrorsRosterFull)

	require.ErrorIs(t, s.Remove(4), consts.ErrorsSeatInvalid)
	require.NoError(t, s.Remove(1))
	players := s.Players()
	require.Len(t, players, 3)
	require.Equal(t, "Ann", players[0].Name())
	require.Equal(t, "Watson", players[1].Name())
	require.Equal(t, game.Computer, players[2].Kind())
}

func TestPlayMatch(t *testing.T) {
	store := database.NewMemory()
	s, out := newSession(t, "", store)
	_, err := s.PlayMatch(context.Background())
	require.ErrorIs(t, err, consts.ErrorsRosterTooSmall)

	for i := 0; i < 2; i++ {
		_, err := s.AddComputer()
		require.NoError(t, err)
	}
	total := 0
	for i := 0; i < 3; i++ {
		result, err := s.PlayMatch(context.Background())
		require.NoError(t, err)
		require.False(t, result.Aborted)
		require.Contains(t, []string{"Watson", "SkyNet"}, result.Winner)
		total += result.Points
	}
	require.Contains(t, out.String(), "wins with")

	sessionTotal := 0
	for _, score := range s.Scores() {
		sessionTotal += score.Points
	}
	require.Equal(t, total, sessionTotal)

	stored, err := store.Scores(context.Background())
	require.NoError(t, err)
	require.Equal(t, s.Scores(), stored)
}

func TestQuitAndResume(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemory()
	s, _ := newSession(t, "q\n", store)
	require.NoError(t, s.AddHuman("Ann"))
	_, err := s.AddComputer()
	require.NoError(t, err)

	result, err := s.PlayMatch(ctx)
	require.NoError(t, err)
	require.True(t, result.Aborted)
	require.NotNil(t, result.Snapshot)
	require.Empty(t, s.Scores())

	ids, err := s.Suspended(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{result.Snapshot.ID}, ids)

	other, _ := newSession(t, "q\n", store)
	resumed, err := other.Resume(ctx, result.Snapshot.ID)
	require.NoError(t, err)
	require.True(t, resumed.Aborted)
	require.Equal(t, result.Snapshot.ID, resumed.Snapshot.ID)

	_, err = other.Resume(ctx, "missing")
	require.ErrorIs(t, err, database.ErrNotFound)
}

func TestInterruptedMatchIsSaved(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemory()
	s, _ := newSession(t, "", store)
	require.NoError(t, s.AddHuman("Ann"))
	_, err := s.AddComputer()
	require.NoError(t, err)

	_, err = s.PlayMatch(ctx)
	require.ErrorIs(t, err, io.EOF)

	ids, err := s.Suspended(ctx)
	require.NoError(t, err)
	require.Len(t, ids, 1)
}
