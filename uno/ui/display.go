package ui

import (
	"fmt"

	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
)

// Render prints the board. Computer hands are listed unless hidden.
func (t *Terminal) Render(state game.RenderState) {
	if state.State == game.StateComplete {
		return
	}
	t.Println(state.String())
	if t.hideComputerHands {
		return
	}
	for _, player := range state.Players {
		if player.Kind == game.Computer {
			t.Println(fmt.Sprintf("%s holds %s", player.Name, msg.Cards(player.Hand)))
		}
	}
}
