package card_test

import (
	"encoding/json"
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestPoints(t *testing.T) {
	scenarios := []struct {
		description string
		value       card.Value
		points      int
	}{
		{description: "zero_is_worth_nothing", value: card.Zero, points: 0},
		{description: "numbers_are_face_value", value: card.Seven, points: 7},
		{description: "skip_is_twenty", value: card.Skip, points: 20},
		{description: "reverse_is_twenty", value: card.Reverse, points: 20},
		{description: "draw_two_is_twenty", value: card.DrawTwo, points: 20},
		{description: "wild_is_fifty", value: card.Wild, points: 50},
		{description: "wild_draw_four_is_fifty", value: card.WildDrawFour, points: 50},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.points, card.New(0, color.Red, scenario.value).Points())
		})
	}
}

func TestActions(t *testing.T) {
	require.Empty(t, card.New(0, color.Blue, card.Five).Actions())
	require.Equal(t, []action.Action{action.NewSkipTurnAction()}, card.New(0, color.Blue, card.Skip).Actions())
	require.Equal(t, []action.Action{action.NewDrawCardsAction(2)}, card.New(0, color.Blue, card.DrawTwo).Actions())
	require.Equal(t, []action.Action{
		action.NewPickColorAction(),
		action.NewDrawCardsAction(4),
	}, card.New(0, color.Wild, card.WildDrawFour).Actions())
}

func TestWithColor(t *testing.T) {
	wild := card.New(100, color.Wild, card.Wild)
	bound := wild.WithColor(color.Green)
	require.Equal(t, color.Green, bound.Color)
	require.True(t, bound.Equal(wild))
	require.Equal(t, wild, bound.Unbound())

	number := card.New(3, color.Red, card.Three)
	require.Equal(t, number, number.WithColor(color.Blue))
}

func TestJSON(t *testing.T) {
	original := card.New(104, color.Yellow, card.WildDrawFour)
	data, err := json.Marshal(original)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":104,"color":"yellow","value":"+4"}`, string(data))

	var decoded card.Card
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, original, decoded)
}
