package event

import "github.com/ratel-online/uno/uno/card"

// CardsDrawnPayload carries the drawn cards so the drawing player can be shown them;
// listeners rendering for other players should only use the count.
type CardsDrawnPayload struct {
	PlayerID   string
	PlayerName string
	Cards      []card.Card
	Forced     bool
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type cardsDrawnEmitter struct {
	listeners []CardsDrawnListener
}

func (e *cardsDrawnEmitter) AddListener(listener CardsDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnCardsDrawn(payload)
	}
}
