package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Playable reports whether a non-wild candidate may be placed directly on the active color
// and value. Wild cards are always playable and handled by Classify.
func Playable(candidate card.Card, activeColor color.Color, activeValue card.Value) bool {
	if candidate.IsWild() {
		return true
	}
	return candidate.Color == activeColor || candidate.Value == activeValue
}

// Legality sorts a hand by how each card may be played. It is derived from the hand and the
// active card every time it is needed.
type Legality struct {
	Legal       []card.Card
	ValueChange []card.Card
	Wild        []card.Card
	ForcedWild  []card.Card
	Zero        []card.Card
}

func Classify(hand []card.Card, activeColor color.Color, activeValue card.Value, zeroSwap bool) Legality {
	var legality Legality
	for _, c := range hand {
		switch {
		case c.Value == card.Wild:
			legality.Wild = append(legality.Wild, c)
		case c.Value == card.WildDrawFour:
			legality.ForcedWild = append(legality.ForcedWild, c)
		case zeroSwap && c.IsZero():
			legality.Zero = append(legality.Zero, c)
		case Playable(c, activeColor, activeValue):
			legality.Legal = append(legality.Legal, c)
			if c.Color != activeColor {
				legality.ValueChange = append(legality.ValueChange, c)
			}
		}
	}
	return legality
}

func (l Legality) hasLegal(value card.Value) bool {
	for _, c := range l.Legal {
		if c.Value == value {
			return true
		}
	}
	return false
}

func (l Legality) CanSkip() bool {
	return l.hasLegal(card.Skip)
}

func (l Legality) CanReverse() bool {
	return l.hasLegal(card.Reverse)
}

func (l Legality) CanDrawTwo() bool {
	return l.hasLegal(card.DrawTwo)
}

// CanDrawFour is true only when no card is directly legal.
func (l Legality) CanDrawFour() bool {
	return len(l.ForcedWild) > 0 && len(l.Legal) == 0
}

func (l Legality) CanValueChange() bool {
	return len(l.ValueChange) > 0
}

func (l Legality) CanZeroSwap() bool {
	return len(l.Zero) > 0
}

// Playable lists every card the player may place this turn.
func (l Legality) Playable() []card.Card {
	playable := make([]card.Card, 0, len(l.Legal)+len(l.Wild)+len(l.Zero)+len(l.ForcedWild))
	playable = append(playable, l.Legal...)
	playable = append(playable, l.Wild...)
	playable = append(playable, l.Zero...)
	if l.CanDrawFour() {
		playable = append(playable, l.ForcedWild...)
	}
	return playable
}

func (l Legality) Contains(searched card.Card) bool {
	for _, c := range l.Playable() {
		if c.Equal(searched) {
			return true
		}
	}
	return false
}

func (l Legality) Stuck() bool {
	return len(l.Playable()) == 0
}
