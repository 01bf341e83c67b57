package event

type HandLiquidatedPayload struct {
	PlayerName string
	WinnerName string
	Points     int
}

type HandLiquidatedListener interface {
	OnHandLiquidated(HandLiquidatedPayload)
}

type handLiquidatedEmitter struct {
	listeners []HandLiquidatedListener
}

func (e *handLiquidatedEmitter) AddListener(listener HandLiquidatedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *handLiquidatedEmitter) Emit(payload HandLiquidatedPayload) {
	for _, listener := range e.listeners {
		listener.OnHandLiquidated(payload)
	}
}

type MatchEndedPayload struct {
	MatchID    string
	WinnerName string
	Points     int
	Aborted    bool
}

type MatchEndedListener interface {
	OnMatchEnded(MatchEndedPayload)
}

type matchEndedEmitter struct {
	listeners []MatchEndedListener
}

func (e *matchEndedEmitter) AddListener(listener MatchEndedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *matchEndedEmitter) Emit(payload MatchEndedPayload) {
	for _, listener := range e.listeners {
		listener.OnMatchEnded(payload)
	}
}
