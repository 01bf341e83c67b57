package player

import (
	"github.com/ratel-online/uno/uno/game"
)

// Prompter turns a human's input into decisions.
type Prompter interface {
	Prompt(name string, turn game.Turn) (game.Decision, error)
}

type humanPlayer struct {
	basicPlayer
	prompter Prompter
}

func NewHumanPlayer(name string, prompter Prompter) game.Player {
	return humanPlayer{basicPlayer: newBasicPlayer(name, game.Human), prompter: prompter}
}

func (p humanPlayer) Decide(turn game.Turn) (game.Decision, error) {
	return p.prompter.Prompt(p.name, turn)
}
