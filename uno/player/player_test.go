package player_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/stretchr/testify/require"
)

type fakePrompter struct {
	names    []string
	decision game.Decision
}

func (p *fakePrompter) Prompt(name string, turn game.Turn) (game.Decision, error) {
	p.names = append(p.names, name)
	return p.decision, nil
}

func TestNaivePlayer(t *testing.T) {
	naive := player.NewNaivePlayer("Hal", rand.New(rand.NewSource(1)))
	require.Equal(t, game.Computer, naive.Kind())

	decision, err := naive.Decide(turnOn(redFive, []card.Card{greenOne, blueFive, redTwo}))
	require.NoError(t, err)
	require.Equal(t, game.Play(1), decision)

	decision, err = naive.Decide(turnOn(redFive, []card.Card{greenOne}, deckEmpty))
	require.NoError(t, err)
	require.Equal(t, game.Pass(), decision)

	decision, err = naive.Decide(game.Turn{Phase: game.PhaseColor})
	require.NoError(t, err)
	require.Contains(t, color.All, decision.Color)
}

func TestHumanPlayer(t *testing.T) {
	prompter := &fakePrompter{decision: game.Draw()}
	human := player.NewHumanPlayer("Ann", prompter)
	require.Equal(t, game.Human, human.Kind())
	require.Equal(t, "Ann", human.Name())
	require.NotEmpty(t, human.ID())

	decision, err := human.Decide(game.Turn{})
	require.NoError(t, err)
	require.Equal(t, game.Draw(), decision)
	require.Equal(t, []string{"Ann"}, prompter.names)
}

func TestCreatePlayers(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	players := player.CreatePlayers(3, "Ann", &fakePrompter{}, rng, 0)
	require.Len(t, players, 3)
	require.Equal(t, "Ann", players[0].Name())
	require.Equal(t, game.Human, players[0].Kind())
	require.Equal(t, "Watson", players[1].Name())
	require.Equal(t, "SkyNet", players[2].Name())
	require.Equal(t, game.Computer, players[2].Kind())
	require.NotEqual(t, players[1].ID(), players[2].ID())

	require.Len(t, player.CreatePlayers(9, "Ann", &fakePrompter{}, rng, 0), consts.MaxPlayers)

	computers := player.CreatePlayers(2, "", nil, rng, 0)
	require.Len(t, computers, 2)
	require.Equal(t, "Watson", computers[0].Name())
	require.Equal(t, game.Computer, computers[0].Kind())
}

func TestCreateSimulationPlayers(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	scenarios := []struct {
		description string
		requested   int
		names       []string
	}{
		{description: "too_few_seats_two", requested: 0, names: []string{"Watson", player.NaiveName}},
		{description: "three_seats", requested: 3, names: []string{"Watson", "SkyNet", player.NaiveName}},
		{description: "too_many_seats_four", requested: 7, names: []string{"Watson", "SkyNet", "Hal", player.NaiveName}},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			players := player.CreateSimulationPlayers(scenario.requested, rng)
			names := make([]string, 0, len(players))
			for _, p := range players {
				require.Equal(t, game.Computer, p.Kind())
				names = append(names, p.Name())
			}
			require.Equal(t, scenario.names, names)
		})
	}
}

func TestComputerNames(t *testing.T) {
	require.True(t, player.IsComputerName("hal"))
	require.True(t, player.IsComputerName(" Metal Gear "))
	require.False(t, player.IsComputerName("Ann"))

	name, ok := player.NextComputerName([]string{"Watson", "Ann"})
	require.True(t, ok)
	require.Equal(t, "SkyNet", name)

	_, ok = player.NextComputerName(player.ComputerNames)
	require.False(t, ok)
}

func TestFromSeat(t *testing.T) {
	prompter := &fakePrompter{decision: game.Pass()}
	human := player.FromSeat(game.SeatSnapshot{ID: "seat-1", Name: "Ann", Kind: game.Human}, prompter, nil, 0)
	require.Equal(t, "seat-1", human.ID())
	require.Equal(t, "Ann", human.Name())
	require.Equal(t, game.Human, human.Kind())
	decision, err := human.Decide(game.Turn{})
	require.NoError(t, err)
	require.Equal(t, game.Pass(), decision)

	computer := player.FromSeat(game.SeatSnapshot{ID: "seat-2", Name: "Hal", Kind: game.Computer}, prompter, rand.New(rand.NewSource(1)), 0)
	require.Equal(t, "seat-2", computer.ID())
	require.Equal(t, game.Computer, computer.Kind())
}
