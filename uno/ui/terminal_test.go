package ui_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/stretchr/testify/require"
)

func plainTerminal(t *testing.T, input string) (*ui.Terminal, *bytes.Buffer) {
	color.SetEnabled(false)
	t.Cleanup(func() { color.SetEnabled(true) })
	out := &bytes.Buffer{}
	return ui.NewTerminal(strings.NewReader(input), out), out
}

func TestPrompt(t *testing.T) {
	hand := []card.Card{card.New(1, color.Red, card.Two), card.New(2, color.Green, card.Nine)}
	turn := game.Turn{
		Phase:    game.PhasePlay,
		Hand:     hand,
		Legality: game.Classify(hand, color.Red, card.Five, false),
	}

	terminal, out := plainTerminal(t, "2\nd\n")
	decision, err := terminal.Prompt("Ann", turn)
	require.NoError(t, err)
	require.Equal(t, game.Play(1), decision)
	require.Contains(t, out.String(), "It's your turn, Ann!")
	require.Contains(t, out.String(), "*  1. [2]")
	require.Contains(t, out.String(), "   2. [9]")
	require.Contains(t, out.String(), "d to draw")

	decision, err = terminal.Prompt("Ann", turn)
	require.NoError(t, err)
	require.Equal(t, game.Draw(), decision)

	_, err = terminal.Prompt("Ann", turn)
	require.ErrorIs(t, err, io.EOF)
}

func TestPromptColor(t *testing.T) {
	terminal, out := plainTerminal(t, "purple\n")
	_, err := terminal.Prompt("Ann", game.Turn{Phase: game.PhaseColor})
	require.ErrorIs(t, err, consts.ErrorsColorExpected)
	require.Contains(t, out.String(), "Ann, select a color: 'red', 'yellow', 'green' or 'blue'?")
}

func TestPromptIntegerInRange(t *testing.T) {
	terminal, out := plainTerminal(t, "abc\n9\n2\n")
	selected, err := terminal.PromptIntegerInRange(1, 3, "Pick one")
	require.NoError(t, err)
	require.Equal(t, 2, selected)
	require.Contains(t, out.String(), "Invalid number input")
	require.Contains(t, out.String(), "Input out of range (minimum: 1, maximum: 3)")
}

func TestPromptString(t *testing.T) {
	terminal, _ := plainTerminal(t, "\n  Ann \n")
	name, err := terminal.PromptString("Name?")
	require.NoError(t, err)
	require.Equal(t, "Ann", name)
}

func TestListeners(t *testing.T) {
	terminal, out := plainTerminal(t, "")
	terminal.Watch("ann")
	hub := event.NewHub()
	hub.Subscribe(terminal)

	drawn := []card.Card{card.New(1, color.Red, card.Two)}
	hub.CardsDrawn.Emit(event.CardsDrawnPayload{PlayerID: "ann", PlayerName: "Ann", Cards: drawn})
	hub.CardsDrawn.Emit(event.CardsDrawnPayload{PlayerID: "hal", PlayerName: "Hal", Cards: drawn, Forced: true})
	hub.ColorPicked.Emit(event.ColorPickedPayload{Color: color.Green, Forced: true})
	hub.MatchEnded.Emit(event.MatchEndedPayload{WinnerName: "Ann", Points: 12})

	require.Equal(t, "Ann drew [2]!\n"+
		"Hal drew a card!\n"+
		"Nobody could play, the color is now green!\n"+
		"Ann wins with 12 point(s)!\n", out.String())
}

func TestRender(t *testing.T) {
	terminal, out := plainTerminal(t, "")
	terminal.HideComputerHands(false)
	state := game.RenderState{
		State:       game.StateAwaitingPlay,
		Forward:     true,
		ActiveColor: color.Red,
		Top:         card.New(1, color.Red, card.Two),
		Players: []game.SeatView{
			{Name: "Ann", Kind: game.Human, Cards: 1, Hand: []card.Card{card.New(3, color.Blue, card.One)}},
			{Name: "Hal", Kind: game.Computer, Cards: 1, Hand: []card.Card{card.New(4, color.Green, card.Six)}},
		},
	}
	terminal.Render(state)
	require.Contains(t, out.String(), state.String())
	require.Contains(t, out.String(), "Hal holds [6]")
	require.NotContains(t, out.String(), "Ann holds")
}
