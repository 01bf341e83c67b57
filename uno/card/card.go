package card

import (
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

// Card is one physical card. ID is unique within a deck; a wild card keeps color.Wild until
// a color is bound to it when it is played.
type Card struct {
	ID    int         `json:"id"`
	Color color.Color `json:"color"`
	Value Value       `json:"value"`
}

func New(id int, c color.Color, v Value) Card {
	return Card{ID: id, Color: c, Value: v}
}

func (c Card) Actions() []action.Action {
	return c.Value.Actions()
}

func (c Card) Points() int {
	return c.Value.Points()
}

func (c Card) IsWild() bool {
	return c.Value.IsWild()
}

func (c Card) IsZero() bool {
	return c.Value == Zero
}

// Equal reports whether both refer to the same physical card.
func (c Card) Equal(other Card) bool {
	return c.ID == other.ID
}

func (c Card) WithColor(bound color.Color) Card {
	if !c.IsWild() {
		return c
	}
	c.Color = bound
	return c
}

func (c Card) Unbound() Card {
	if c.IsWild() {
		c.Color = color.Wild
	}
	return c
}

func (c Card) String() string {
	if c.IsWild() && c.Color != color.Wild {
		return c.Color.Paint(c.Value.Label()) + "(" + c.Color.Name() + ")"
	}
	return c.Color.Paint(c.Value.Label())
}
