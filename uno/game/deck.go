package game

import (
	"math/rand"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Deck is the draw pile. The top of the deck is the last element of cards.
type Deck struct {
	cards []card.Card
}

func NewDeck() *Deck {
	deck := &Deck{}
	deck.Populate()
	return deck
}

// NewStackedDeck builds a deck holding exactly cards, the last one on top.
func NewStackedDeck(cards []card.Card) *Deck {
	deck := &Deck{cards: make([]card.Card, len(cards))}
	copy(deck.cards, cards)
	return deck
}

// Populate resets the deck to the 108 standard cards in a fixed order with ids 0..107.
func (d *Deck) Populate() {
	cards := make([]card.Card, 0, consts.DeckSize)
	for _, cardColor := range color.All {
		cards = appendColorCards(cards, cardColor)
	}
	cards = appendBlackCards(cards)
	d.cards = cards
}

func appendColorCards(cards []card.Card, cardColor color.Color) []card.Card {
	cards = append(cards, card.New(len(cards), cardColor, card.Zero))
	for value := card.One; value <= card.DrawTwo; value++ {
		cards = append(cards, card.New(len(cards), cardColor, value))
		cards = append(cards, card.New(len(cards), cardColor, value))
	}
	return cards
}

func appendBlackCards(cards []card.Card) []card.Card {
	for _, value := range []card.Value{card.Wild, card.WildDrawFour} {
		for i := 0; i < 4; i++ {
			cards = append(cards, card.New(len(cards), color.Wild, value))
		}
	}
	return cards
}

func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

func (d *Deck) Draw() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, ErrEmptyDeck
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, nil
}

func (d *Deck) InsertTop(c card.Card) {
	d.cards = append(d.cards, c)
}

// Refill puts cards back into the deck with their wild colors cleared and shuffles it.
func (d *Deck) Refill(cards []card.Card, rng *rand.Rand) {
	for _, c := range cards {
		d.cards = append(d.cards, c.Unbound())
	}
	d.Shuffle(rng)
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}
