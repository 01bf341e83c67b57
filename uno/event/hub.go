package event

// Hub holds the emitters of one match. Every match owns its own hub so concurrent matches
// never share listeners.
type Hub struct {
	FirstCardPlayed   *firstCardPlayedEmitter
	CardPlayed        *cardPlayedEmitter
	ColorPicked       *colorPickedEmitter
	PlayerPassed      *playerPassedEmitter
	CardsDrawn        *cardsDrawnEmitter
	TurnSkipped       *turnSkippedEmitter
	TurnOrderReversed *turnOrderReversedEmitter
	HandsSwapped      *handsSwappedEmitter
	DeckReshuffled    *deckReshuffledEmitter
	DeckExhausted     *deckExhaustedEmitter
	HandLiquidated    *handLiquidatedEmitter
	MatchEnded        *matchEndedEmitter
}

func NewHub() *Hub {
	return &Hub{
		FirstCardPlayed:   &firstCardPlayedEmitter{},
		CardPlayed:        &cardPlayedEmitter{},
		ColorPicked:       &colorPickedEmitter{},
		PlayerPassed:      &playerPassedEmitter{},
		CardsDrawn:        &cardsDrawnEmitter{},
		TurnSkipped:       &turnSkippedEmitter{},
		TurnOrderReversed: &turnOrderReversedEmitter{},
		HandsSwapped:      &handsSwappedEmitter{},
		DeckReshuffled:    &deckReshuffledEmitter{},
		DeckExhausted:     &deckExhaustedEmitter{},
		HandLiquidated:    &handLiquidatedEmitter{},
		MatchEnded:        &matchEndedEmitter{},
	}
}

// Subscribe adds listener to every emitter whose listener interface it implements.
func (h *Hub) Subscribe(listener interface{}) {
	if l, ok := listener.(FirstCardPlayedListener); ok {
		h.FirstCardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardPlayedListener); ok {
		h.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(ColorPickedListener); ok {
		h.ColorPicked.AddListener(l)
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		h.PlayerPassed.AddListener(l)
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		h.CardsDrawn.AddListener(l)
	}
	if l, ok := listener.(TurnSkippedListener); ok {
		h.TurnSkipped.AddListener(l)
	}
	if l, ok := listener.(TurnOrderReversedListener); ok {
		h.TurnOrderReversed.AddListener(l)
	}
	if l, ok := listener.(HandsSwappedListener); ok {
		h.HandsSwapped.AddListener(l)
	}
	if l, ok := listener.(DeckReshuffledListener); ok {
		h.DeckReshuffled.AddListener(l)
	}
	if l, ok := listener.(DeckExhaustedListener); ok {
		h.DeckExhausted.AddListener(l)
	}
	if l, ok := listener.(HandLiquidatedListener); ok {
		h.HandLiquidated.AddListener(l)
	}
	if l, ok := listener.(MatchEndedListener); ok {
		h.MatchEnded.AddListener(l)
	}
}
