package event

type DeckReshuffledPayload struct {
	Cards int
}

type DeckReshuffledListener interface {
	OnDeckReshuffled(DeckReshuffledPayload)
}

type deckReshuffledEmitter struct {
	listeners []DeckReshuffledListener
}

func (e *deckReshuffledEmitter) AddListener(listener DeckReshuffledListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *deckReshuffledEmitter) Emit(payload DeckReshuffledPayload) {
	for _, listener := range e.listeners {
		listener.OnDeckReshuffled(payload)
	}
}

// DeckExhaustedPayload reports forced draws that could not be honoured.
type DeckExhaustedPayload struct {
	PlayerName string
	Cancelled  int
}

type DeckExhaustedListener interface {
	OnDeckExhausted(DeckExhaustedPayload)
}

type deckExhaustedEmitter struct {
	listeners []DeckExhaustedListener
}

func (e *deckExhaustedEmitter) AddListener(listener DeckExhaustedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *deckExhaustedEmitter) Emit(payload DeckExhaustedPayload) {
	for _, listener := range e.listeners {
		listener.OnDeckExhausted(payload)
	}
}
