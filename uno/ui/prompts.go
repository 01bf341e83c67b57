package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
)

// Prompt asks the human called name for a decision. Unparseable lines come back as input
// errors so the match asks again.
func (t *Terminal) Prompt(name string, turn game.Turn) (game.Decision, error) {
	switch turn.Phase {
	case game.PhaseColor:
		t.Printfln(
			"%s, select a color: '%s', '%s', '%s' or '%s'?",
			name,
			color.Red,
			color.Yellow,
			color.Green,
			color.Blue,
		)
	case game.PhasePaused:
		t.Print(msg.Message.Paused())
	default:
		t.Print(msg.Message.HumanPlayerTurnStarted(name))
		t.Printlns(handLines(turn))
	}
	line, err := t.ReadLine()
	if err != nil {
		return game.Decision{}, err
	}
	return ParseDecision(line, turn.Phase, len(turn.Hand))
}

func handLines(turn game.Turn) []string {
	lines := []string{"Your hand:"}
	for index, c := range turn.Hand {
		marker := " "
		if turn.Legality.Contains(c) {
			marker = "*"
		}
		lines = append(lines, fmt.Sprintf("%s %2d. %s", marker, index+1, c))
	}

	options := []string{"number to play a card marked with *"}
	if !turn.DeckEmpty {
		options = append(options, "d to draw")
	} else if turn.Legality.Stuck() {
		options = append(options, "s to pass")
	}
	options = append(options, "p to pause", "q to quit")
	lines = append(lines, "Enter "+strings.Join(options, ", "))
	return lines
}

// PromptString asks until a non-empty line is typed.
func (t *Terminal) PromptString(message string) (string, error) {
	for {
		t.Println(message)
		line, err := t.ReadLine()
		if err != nil {
			return "", err
		}
		if input := strings.TrimSpace(line); input != "" {
			return input, nil
		}
		t.Println("Invalid text input")
	}
}

// PromptIntegerInRange asks until a number between minimum and maximum is typed.
func (t *Terminal) PromptIntegerInRange(minimum int, maximum int, message string) (int, error) {
	for {
		t.Println(message)
		line, err := t.ReadLine()
		if err != nil {
			return 0, err
		}
		input, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			t.Println("Invalid number input")
			continue
		}
		if input < minimum || input > maximum {
			t.Printfln("Input out of range (minimum: %d, maximum: %d)", minimum, maximum)
			continue
		}
		return input, nil
	}
}

// WriteError prints a recoverable error and returns nil, or returns err when it is fatal.
func (t *Terminal) WriteError(err error) error {
	if consts.IsInputError(err) {
		t.Println(err.Error())
		return nil
	}
	return err
}
