package ui

import (
	"strconv"
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

var commands = map[string]game.DecisionKind{
	"d":      game.DecisionDraw,
	"draw":   game.DecisionDraw,
	"s":      game.DecisionPass,
	"pass":   game.DecisionPass,
	"p":      game.DecisionPause,
	"pause":  game.DecisionPause,
	"r":      game.DecisionResume,
	"resume": game.DecisionResume,
	"q":      game.DecisionQuit,
	"quit":   game.DecisionQuit,
}

// ParseDecision turns a typed line into a decision. Cards are numbered from 1 in hand
// order. In the color phase a color name or initial is expected, so "r" means red there.
func ParseDecision(line string, phase game.Phase, handSize int) (game.Decision, error) {
	input := strings.ToLower(strings.TrimSpace(line))
	if input == "" {
		return game.Decision{}, consts.ErrorsInputInvalid
	}

	if phase == game.PhaseColor {
		if c, err := color.ByName(input); err == nil {
			return game.ChooseColor(c), nil
		}
		switch commands[input] {
		case game.DecisionPause, game.DecisionQuit:
			return game.Decision{Kind: commands[input]}, nil
		}
		return game.Decision{}, consts.ErrorsColorExpected
	}

	if number, err := strconv.Atoi(input); err == nil {
		if number < 1 || number > handSize {
			return game.Decision{}, consts.ErrorsCardNotInHand
		}
		return game.Play(number - 1), nil
	}
	if kind, ok := commands[input]; ok {
		return game.Decision{Kind: kind}, nil
	}
	return game.Decision{}, consts.ErrorsInputInvalid
}
