package event

// DummyListener records every payload it receives. Used in tests.
type DummyListener struct {
	FirstCardPlayed   []FirstCardPlayedPayload
	CardPlayed        []CardPlayedPayload
	ColorPicked       []ColorPickedPayload
	PlayerPassed      []PlayerPassedPayload
	CardsDrawn        []CardsDrawnPayload
	TurnSkipped       []TurnSkippedPayload
	TurnOrderReversed []TurnOrderReversedPayload
	HandsSwapped      []HandsSwappedPayload
	DeckReshuffled    []DeckReshuffledPayload
	DeckExhausted     []DeckExhaustedPayload
	HandLiquidated    []HandLiquidatedPayload
	MatchEnded        []MatchEndedPayload
}

func NewDummyListener() *DummyListener {
	return &DummyListener{}
}

func (l *DummyListener) OnFirstCardPlayed(payload FirstCardPlayedPayload) {
	l.FirstCardPlayed = append(l.FirstCardPlayed, payload)
}

func (l *DummyListener) OnCardPlayed(payload CardPlayedPayload) {
	l.CardPlayed = append(l.CardPlayed, payload)
}

func (l *DummyListener) OnColorPicked(payload ColorPickedPayload) {
	l.ColorPicked = append(l.ColorPicked, payload)
}

func (l *DummyListener) OnPlayerPassed(payload PlayerPassedPayload) {
	l.PlayerPassed = append(l.PlayerPassed, payload)
}

func (l *DummyListener) OnCardsDrawn(payload CardsDrawnPayload) {
	l.CardsDrawn = append(l.CardsDrawn, payload)
}

func (l *DummyListener) OnTurnSkipped(payload TurnSkippedPayload) {
	l.TurnSkipped = append(l.TurnSkipped, payload)
}

func (l *DummyListener) OnTurnOrderReversed(payload TurnOrderReversedPayload) {
	l.TurnOrderReversed = append(l.TurnOrderReversed, payload)
}

func (l *DummyListener) OnHandsSwapped(payload HandsSwappedPayload) {
	l.HandsSwapped = append(l.HandsSwapped, payload)
}

func (l *DummyListener) OnDeckReshuffled(payload DeckReshuffledPayload) {
	l.DeckReshuffled = append(l.DeckReshuffled, payload)
}

func (l *DummyListener) OnDeckExhausted(payload DeckExhaustedPayload) {
	l.DeckExhausted = append(l.DeckExhausted, payload)
}

func (l *DummyListener) OnHandLiquidated(payload HandLiquidatedPayload) {
	l.HandLiquidated = append(l.HandLiquidated, payload)
}

func (l *DummyListener) OnMatchEnded(payload MatchEndedPayload) {
	l.MatchEnded = append(l.MatchEnded, payload)
}
