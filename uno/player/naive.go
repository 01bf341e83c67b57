package player

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

type naivePlayer struct {
	basicPlayer
	rng *rand.Rand
}

// NewNaivePlayer plays the first playable card and picks colors at random.
func NewNaivePlayer(name string, rng *rand.Rand) game.Player {
	return naivePlayer{basicPlayer: newBasicPlayer(name, game.Computer), rng: rng}
}

func (p naivePlayer) Decide(turn game.Turn) (game.Decision, error) {
	switch turn.Phase {
	case game.PhaseColor:
		return game.ChooseColor(color.All[p.rng.Intn(len(color.All))]), nil
	case game.PhasePaused:
		return game.Resume(), nil
	}
	if playable := turn.Legality.Playable(); len(playable) > 0 {
		return game.Play(turn.IndexOf(playable[0])), nil
	}
	if turn.DeckEmpty {
		return game.Pass(), nil
	}
	return game.Draw(), nil
}
