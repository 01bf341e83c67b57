package game

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, consts.HandSize)}
}

func (h *Hand) AddCards(cards ...card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Card(index int) (card.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, consts.ErrorsCardNotInHand
	}
	return h.cards[index], nil
}

// Remove takes the card at index out of the hand keeping the order of the others.
func (h *Hand) Remove(index int) (card.Card, error) {
	removed, err := h.Card(index)
	if err != nil {
		return removed, err
	}
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed, nil
}

// Clear empties the hand and returns what it held.
func (h *Hand) Clear() []card.Card {
	cards := h.cards
	h.cards = make([]card.Card, 0, consts.HandSize)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) Points() int {
	points := 0
	for _, c := range h.cards {
		points += c.Points()
	}
	return points
}
