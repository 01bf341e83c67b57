package event

type TurnSkippedPayload struct {
	PlayerName string
}

type TurnSkippedListener interface {
	OnTurnSkipped(TurnSkippedPayload)
}

type turnSkippedEmitter struct {
	listeners []TurnSkippedListener
}

func (e *turnSkippedEmitter) AddListener(listener TurnSkippedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *turnSkippedEmitter) Emit(payload TurnSkippedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnSkipped(payload)
	}
}

type TurnOrderReversedPayload struct {
	PlayerName string
	Forward    bool
}

type TurnOrderReversedListener interface {
	OnTurnOrderReversed(TurnOrderReversedPayload)
}

type turnOrderReversedEmitter struct {
	listeners []TurnOrderReversedListener
}

func (e *turnOrderReversedEmitter) AddListener(listener TurnOrderReversedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *turnOrderReversedEmitter) Emit(payload TurnOrderReversedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnOrderReversed(payload)
	}
}

type HandsSwappedPayload struct {
	PlayerName string
	Forward    bool
}

type HandsSwappedListener interface {
	OnHandsSwapped(HandsSwappedPayload)
}

type handsSwappedEmitter struct {
	listeners []HandsSwappedListener
}

func (e *handsSwappedEmitter) AddListener(listener HandsSwappedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *handsSwappedEmitter) Emit(payload HandsSwappedPayload) {
	for _, listener := range e.listeners {
		listener.OnHandsSwapped(payload)
	}
}
