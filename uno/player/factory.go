package player

import (
	"math/rand"
	"strings"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
)

var ComputerNames = []string{"Watson", "SkyNet", "Hal", "Metal Gear"}

// IsComputerName reports whether name is reserved for computer players.
func IsComputerName(name string) bool {
	for _, computerName := range ComputerNames {
		if strings.EqualFold(computerName, strings.TrimSpace(name)) {
			return true
		}
	}
	return false
}

// NextComputerName returns a computer name not in taken.
func NextComputerName(taken []string) (string, bool) {
	used := make(map[string]bool, len(taken))
	for _, name := range taken {
		used[name] = true
	}
	for _, name := range ComputerNames {
		if !used[name] {
			return name, true
		}
	}
	return "", false
}

// NaiveName is the seat the naive baseline takes in simulations.
const NaiveName = "Naive"

// CreatePlayers seats one human named humanName and fills the rest with computers, up to
// consts.MaxPlayers. An empty humanName seats computers only.
func CreatePlayers(numberOfPlayers int, humanName string, prompter Prompter, rng *rand.Rand, delay time.Duration) []game.Player {
	if numberOfPlayers > consts.MaxPlayers {
		numberOfPlayers = consts.MaxPlayers
	}
	players := make([]game.Player, 0, numberOfPlayers)
	var taken []string
	if humanName != "" {
		players = append(players, NewHumanPlayer(humanName, prompter))
		taken = append(taken, humanName)
	}
	for len(players) < numberOfPlayers {
		name, ok := NextComputerName(taken)
		if !ok {
			break
		}
		taken = append(taken, name)
		players = append(players, NewComputerPlayer(name, rng, delay))
	}
	return players
}

// CreateSimulationPlayers seats heuristic computers against one naive player.
func CreateSimulationPlayers(numberOfPlayers int, rng *rand.Rand) []game.Player {
	if numberOfPlayers < consts.MinPlayers {
		numberOfPlayers = consts.MinPlayers
	}
	if numberOfPlayers > consts.MaxPlayers {
		numberOfPlayers = consts.MaxPlayers
	}
	players := CreatePlayers(numberOfPlayers-1, "", nil, rng, 0)
	return append(players, NewNaivePlayer(NaiveName, rng))
}

// FromSeat rebuilds the player of a suspended seat, keeping its ID so the match can be
// restored. Human seats are prompted through prompter.
func FromSeat(seat game.SeatSnapshot, prompter Prompter, rng *rand.Rand, delay time.Duration) game.Player {
	basic := basicPlayer{id: seat.ID, name: seat.Name, kind: seat.Kind}
	if seat.Kind == game.Human {
		return humanPlayer{basicPlayer: basic, prompter: prompter}
	}
	return &computerPlayer{basicPlayer: basic, rng: rng, delay: delay}
}
