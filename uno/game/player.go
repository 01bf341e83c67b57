package game

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type Kind int

const (
	Human Kind = iota
	Computer
)

var kindNames = map[Kind]string{
	Human:    "human",
	Computer: "computer",
}

func (k Kind) String() string {
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("invalid player kind %d", int(k))
	}
	return []byte(name), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("invalid player kind '%s'", text)
}

// Phase tells a player which kind of decision is expected.
type Phase int

const (
	PhasePlay Phase = iota
	PhaseColor
	PhasePaused
)

type DecisionKind int

const (
	DecisionPlay DecisionKind = iota
	DecisionDraw
	DecisionPass
	DecisionColor
	DecisionPause
	DecisionResume
	DecisionQuit
)

// Decision is what a player wants to do. Index refers to Turn.Hand for DecisionPlay and
// Color is only read for DecisionColor.
type Decision struct {
	Kind  DecisionKind
	Index int
	Color color.Color
}

func Play(index int) Decision {
	return Decision{Kind: DecisionPlay, Index: index}
}

func Draw() Decision {
	return Decision{Kind: DecisionDraw}
}

func Pass() Decision {
	return Decision{Kind: DecisionPass}
}

func ChooseColor(c color.Color) Decision {
	return Decision{Kind: DecisionColor, Color: c}
}

func Pause() Decision {
	return Decision{Kind: DecisionPause}
}

func Resume() Decision {
	return Decision{Kind: DecisionResume}
}

func Quit() Decision {
	return Decision{Kind: DecisionQuit}
}

// Turn is everything a player may look at to decide.
type Turn struct {
	State        RenderState
	Phase        Phase
	Hand         []card.Card
	Legality     Legality
	PreviousDrew bool
	NextDrew     bool
	TwoPlayers   bool
	DeckEmpty    bool
	Rules        HouseRules
	Error        string
}

// IndexOf returns the position of c in the hand, or -1.
func (t Turn) IndexOf(c card.Card) int {
	for index, inHand := range t.Hand {
		if inHand.Equal(c) {
			return index
		}
	}
	return -1
}

type Player interface {
	ID() string
	Name() string
	Kind() Kind
	Decide(turn Turn) (Decision, error)
}

// Renderer shows the public match state. A match without one runs headless.
type Renderer interface {
	Render(state RenderState)
}
