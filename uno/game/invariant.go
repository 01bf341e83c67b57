package game

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
)

// check verifies that every card of the deck is in exactly one place.
func (m *Match) check() error {
	seen := make(map[int]bool, consts.DeckSize)
	total := 0
	duplicate := -1
	visit := func(cards []card.Card) {
		for _, c := range cards {
			total++
			if seen[c.ID] && duplicate < 0 {
				duplicate = c.ID
			}
			seen[c.ID] = true
		}
	}
	visit(m.deck.Cards())
	visit(m.pile.Cards())
	for _, s := range m.seats {
		visit(s.hand.Cards())
	}
	if duplicate >= 0 {
		return m.violation("card %d is in play twice", duplicate)
	}
	if total != consts.DeckSize {
		return m.violation("%d cards in play, expected %d", total, consts.DeckSize)
	}
	return nil
}

func (m *Match) violation(format string, args ...interface{}) error {
	v := &InvariantViolation{
		Reason:   fmt.Sprintf(format, args...),
		Snapshot: m.Snapshot(),
	}
	m.log.WithField("reason", v.Reason).Error("invariant violated")
	return v
}
