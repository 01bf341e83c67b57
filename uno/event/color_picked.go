package event

import "github.com/ratel-online/uno/uno/card/color"

// ColorPickedPayload is emitted on every wild color rebind. Forced is set when the color was
// reassigned to break a pass deadlock; PlayerName is empty then.
type ColorPickedPayload struct {
	PlayerName string
	Color      color.Color
	Forced     bool
}

type ColorPickedListener interface {
	OnColorPicked(ColorPickedPayload)
}

type colorPickedEmitter struct {
	listeners []ColorPickedListener
}

func (e *colorPickedEmitter) AddListener(listener ColorPickedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *colorPickedEmitter) Emit(payload ColorPickedPayload) {
	for _, listener := range e.listeners {
		listener.OnColorPicked(payload)
	}
}
