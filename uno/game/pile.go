package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Pile is the discard pile; the last card is face up.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) ReplaceTop(card card.Card) {
	if len(p.cards) == 0 {
		return
	}
	p.cards[len(p.cards)-1] = card
}

func (p *Pile) Top() (card.Card, bool) {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, false
	}
	return p.cards[pileSize-1], true
}

func (p *Pile) Size() int {
	return len(p.cards)
}

// TakeUnder removes and returns every card except the top one.
func (p *Pile) TakeUnder() []card.Card {
	if len(p.cards) < 2 {
		return nil
	}
	under := make([]card.Card, len(p.cards)-1)
	copy(under, p.cards[:len(p.cards)-1])
	p.cards = append(p.cards[:0], p.cards[len(p.cards)-1])
	return under
}
