package event_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/stretchr/testify/require"
)

type passedOnly struct {
	names []string
}

func (p *passedOnly) OnPlayerPassed(payload event.PlayerPassedPayload) {
	p.names = append(p.names, payload.PlayerName)
}

func TestSubscribe(t *testing.T) {
	hub := event.NewHub()
	listener := event.NewDummyListener()
	hub.Subscribe(listener)

	played := card.New(12, color.Green, card.Skip)
	hub.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: played})
	hub.CardPlayed.Emit(event.CardPlayedPayload{PlayerName: "Alice", Card: played})
	hub.ColorPicked.Emit(event.ColorPickedPayload{PlayerName: "Alice", Color: color.Red})
	hub.MatchEnded.Emit(event.MatchEndedPayload{WinnerName: "Alice", Points: 42})

	require.Equal(t, []event.FirstCardPlayedPayload{{Card: played}}, listener.FirstCardPlayed)
	require.Equal(t, []event.CardPlayedPayload{{PlayerName: "Alice", Card: played}}, listener.CardPlayed)
	require.Equal(t, []event.ColorPickedPayload{{PlayerName: "Alice", Color: color.Red}}, listener.ColorPicked)
	require.Equal(t, []event.MatchEndedPayload{{WinnerName: "Alice", Points: 42}}, listener.MatchEnded)
	require.Empty(t, listener.PlayerPassed)
}

func TestSubscribePartialListener(t *testing.T) {
	hub := event.NewHub()
	listener := &passedOnly{}
	hub.Subscribe(listener)

	hub.CardPlayed.Emit(event.CardPlayedPayload{PlayerName: "Bob"})
	hub.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: "Bob"})
	hub.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: "Hal"})

	require.Equal(t, []string{"Bob", "Hal"}, listener.names)
}

func TestHubsAreIndependent(t *testing.T) {
	first, second := event.NewHub(), event.NewHub()
	listener := event.NewDummyListener()
	first.Subscribe(listener)

	second.TurnSkipped.Emit(event.TurnSkippedPayload{PlayerName: "Watson"})
	require.Empty(t, listener.TurnSkipped)

	first.TurnSkipped.Emit(event.TurnSkippedPayload{PlayerName: "Watson"})
	require.Len(t, listener.TurnSkipped, 1)
}
