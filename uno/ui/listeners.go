package ui

import (
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
)

func (t *Terminal) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	t.Print(msg.Message.FirstCardPlayed(payload.Card))
}

func (t *Terminal) OnCardPlayed(payload event.CardPlayedPayload) {
	t.Print(msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (t *Terminal) OnColorPicked(payload event.ColorPickedPayload) {
	if payload.Forced {
		t.Print(msg.Message.ColorReassigned(payload.Color))
		return
	}
	t.Print(msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (t *Terminal) OnPlayerPassed(payload event.PlayerPassedPayload) {
	t.Print(msg.Message.PlayerPassed(payload.PlayerName))
}

func (t *Terminal) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if t.viewers[payload.PlayerID] {
		t.Print(msg.Message.HumanPlayerDrewCards(payload.PlayerName, payload.Cards))
		return
	}
	t.Print(msg.Message.PlayerDrewCards(payload.PlayerName, len(payload.Cards)))
}

func (t *Terminal) OnTurnSkipped(payload event.TurnSkippedPayload) {
	t.Print(msg.Message.PlayerTurnSkipped(payload.PlayerName))
}

func (t *Terminal) OnTurnOrderReversed(payload event.TurnOrderReversedPayload) {
	t.Print(msg.Message.TurnOrderReversed(payload.PlayerName))
}

func (t *Terminal) OnHandsSwapped(payload event.HandsSwappedPayload) {
	t.Print(msg.Message.HandsSwapped(payload.PlayerName))
}

func (t *Terminal) OnDeckReshuffled(payload event.DeckReshuffledPayload) {
	t.Print(msg.Message.DeckReshuffled(payload.Cards))
}

func (t *Terminal) OnDeckExhausted(payload event.DeckExhaustedPayload) {
	t.Print(msg.Message.DeckExhausted(payload.PlayerName, payload.Cancelled))
}

func (t *Terminal) OnHandLiquidated(payload event.HandLiquidatedPayload) {
	t.Print(msg.Message.HandLiquidated(payload.PlayerName, payload.WinnerName, payload.Points))
}

func (t *Terminal) OnMatchEnded(payload event.MatchEndedPayload) {
	if payload.Aborted {
		t.Print(msg.Message.MatchAborted())
		return
	}
	t.Print(msg.Message.WinnerFound(payload.WinnerName, payload.Points))
}
