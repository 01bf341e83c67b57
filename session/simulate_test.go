package session_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/session"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/stretchr/testify/require"
)

func TestSimulate(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	players := player.CreateSimulationPlayers(3, rng)
	standings, err := session.Simulate(context.Background(), 5, players, session.Options{
		Rand:     rng,
		Settings: session.Settings{Rules: game.HouseRules{ReshuffleDiscard: true}},
	})
	require.NoError(t, err)
	require.Len(t, standings, 3)

	wins, names := 0, map[string]bool{}
	for index, standing := range standings {
		wins += standing.Wins
		names[standing.Name] = true
		if standing.Wins == 0 {
			require.Zero(t, standing.Points)
		}
		if index > 0 {
			require.GreaterOrEqual(t, standings[index-1].Wins, standing.Wins)
		}
	}
	require.Equal(t, 5, wins)
	require.Equal(t, map[string]bool{"Watson": true, "SkyNet": true, player.NaiveName: true}, names)
}

func TestSimulateRejects(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	_, err := session.Simulate(context.Background(), 1, player.CreatePlayers(1, "", nil, rng, 0), session.Options{})
	require.ErrorIs(t, err, consts.ErrorsRosterTooSmall)

	withHuman := player.CreatePlayers(2, "Ann", nil, rng, 0)
	_, err = session.Simulate(context.Background(), 1, withHuman, session.Options{})
	require.ErrorIs(t, err, consts.ErrorsSimulateHuman)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = session.Simulate(ctx, 1, player.CreateSimulationPlayers(2, rng), session.Options{})
	require.ErrorIs(t, err, context.Canceled)
}
