package player

import (
	"math/rand"
	"time"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

type computerPlayer struct {
	basicPlayer
	rng   *rand.Rand
	delay time.Duration
}

// NewComputerPlayer returns the heuristic computer opponent. delay is waited before every
// decision so humans can follow the match.
func NewComputerPlayer(name string, rng *rand.Rand, delay time.Duration) game.Player {
	return &computerPlayer{
		basicPlayer: newBasicPlayer(name, game.Computer),
		rng:         rng,
		delay:       delay,
	}
}

func (p *computerPlayer) Decide(turn game.Turn) (game.Decision, error) {
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	switch turn.Phase {
	case game.PhaseColor:
		return game.ChooseColor(p.pickColor(turn.Hand)), nil
	case game.PhasePaused:
		return game.Resume(), nil
	}
	if selected, ok := p.think(turn); ok {
		return game.Play(turn.IndexOf(selected)), nil
	}
	if turn.DeckEmpty {
		return game.Pass(), nil
	}
	return game.Draw(), nil
}

// think picks the card to play, or reports false when the player should draw.
func (p *computerPlayer) think(turn game.Turn) (card.Card, bool) {
	legality := turn.Legality
	tally := tallyColors(turn.Hand)
	active := turn.State.ActiveColor

	if len(legality.Legal) == 0 {
		switch {
		case legality.CanZeroSwap():
			return bestColor(legality.Zero, tally), true
		case legality.CanDrawFour():
			return legality.ForcedWild[0], true
		case len(legality.Wild) > 0:
			return legality.Wild[p.rng.Intn(len(legality.Wild))], true
		}
		return card.Card{}, false
	}

	if turn.TwoPlayers && (legality.CanSkip() || legality.CanReverse()) {
		if selected, ok := firstOf(legality.Legal, func(c card.Card) bool {
			return c.Value == card.Skip || c.Value == card.Reverse
		}); ok {
			return selected, true
		}
	}

	if turn.PreviousDrew && legality.CanReverse() {
		if selected, ok := firstOf(legality.Legal, func(c card.Card) bool {
			return c.Value == card.Reverse && c.Color == active
		}); ok {
			return selected, true
		}
	}

	if legality.CanValueChange() {
		best := bestColor(legality.ValueChange, tally)
		if tally[best.Color] > tally[active] || len(legality.ValueChange) == len(legality.Legal) {
			return best, true
		}
	}

	var sameColor []card.Card
	for _, c := range legality.Legal {
		if c.Color == active {
			sameColor = append(sameColor, c)
		}
	}
	if len(sameColor) == 0 {
		return legality.Legal[p.rng.Intn(len(legality.Legal))], true
	}
	return sameColor[p.rng.Intn(len(sameColor))], true
}

// pickColor chooses the most represented color of the hand, ties going to the color
// listed first in color.Priority. A hand dominated by wild cards picks at random.
func (p *computerPlayer) pickColor(hand []card.Card) color.Color {
	tally := tallyColors(hand)
	picked := color.Priority[0]
	for _, candidate := range color.Priority[1:] {
		if tally[candidate] > tally[picked] {
			picked = candidate
		}
	}
	if tally[color.Wild] > tally[picked] {
		return color.All[p.rng.Intn(len(color.All))]
	}
	return picked
}

func tallyColors(hand []card.Card) map[color.Color]int {
	tally := make(map[color.Color]int, len(color.All)+1)
	for _, c := range hand {
		tally[c.Color]++
	}
	return tally
}

// bestColor returns the first card whose color is strictly better represented than every
// card before it.
func bestColor(cards []card.Card, tally map[color.Color]int) card.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if tally[c.Color] > tally[best.Color] {
			best = c
		}
	}
	return best
}

func firstOf(cards []card.Card, match func(card.Card) bool) (card.Card, bool) {
	for _, c := range cards {
		if match(c) {
			return c, true
		}
	}
	return card.Card{}, false
}
