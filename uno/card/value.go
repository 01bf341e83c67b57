package card

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card/action"
)

type Value int

const (
	Zero Value = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

type valueInfo struct {
	name    string
	label   string
	points  int
	actions []action.Action
}

// effects is the single dispatch table for card behaviour, keyed by value.
var effects = map[Value]valueInfo{
	Zero:  {name: "0", label: "[0]", actions: []action.Action{action.NewSwapHandsAction()}},
	One:   {name: "1", label: "[1]", points: 1},
	Two:   {name: "2", label: "[2]", points: 2},
	Three: {name: "3", label: "[3]", points: 3},
	Four:  {name: "4", label: "[4]", points: 4},
	Five:  {name: "5", label: "[5]", points: 5},
	Six:   {name: "6", label: "[6]", points: 6},
	Seven: {name: "7", label: "[7]", points: 7},
	Eight: {name: "8", label: "[8]", points: 8},
	Nine:  {name: "9", label: "[9]", points: 9},
	Skip: {name: "skip", label: "(/)", points: 20, actions: []action.Action{
		action.NewSkipTurnAction(),
	}},
	Reverse: {name: "reverse", label: "<=>", points: 20, actions: []action.Action{
		action.NewReverseTurnsAction(),
	}},
	DrawTwo: {name: "+2", label: "+2!", points: 20, actions: []action.Action{
		action.NewDrawCardsAction(2),
	}},
	Wild: {name: "wild", label: "(*)", points: 50, actions: []action.Action{
		action.NewPickColorAction(),
	}},
	WildDrawFour: {name: "+4", label: "+4!", points: 50, actions: []action.Action{
		action.NewPickColorAction(),
		action.NewDrawCardsAction(4),
	}},
}

func (v Value) Valid() bool {
	_, ok := effects[v]
	return ok
}

func (v Value) Name() string {
	if info, ok := effects[v]; ok {
		return info.name
	}
	return fmt.Sprintf("value(%d)", int(v))
}

func (v Value) Label() string {
	return effects[v].label
}

func (v Value) Points() int {
	return effects[v].points
}

func (v Value) Actions() []action.Action {
	return effects[v].actions
}

func (v Value) IsWild() bool {
	return v == Wild || v == WildDrawFour
}

func (v Value) String() string {
	return v.Name()
}

func (v Value) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("invalid card value %d", int(v))
	}
	return []byte(v.Name()), nil
}

func (v *Value) UnmarshalText(text []byte) error {
	for value, info := range effects {
		if info.name == string(text) {
			*v = value
			return nil
		}
	}
	return fmt.Errorf("invalid card value '%s'", text)
}
