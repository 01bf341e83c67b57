package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return Sprintfln("First card is %s", card)
}

func (m MessageWriter) HumanPlayerDrewCards(playerName string, cards []card.Card) string {
	return Sprintfln("%s drew %s!", playerName, Cards(cards))
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerDrewCards(playerName string, amount int) string {
	if amount == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, amount)
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, color)
}

func (m MessageWriter) ColorReassigned(color color.Color) string {
	return Sprintfln("Nobody could play, the color is now %s!", color)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) string {
	return Sprintfln("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) TurnOrderReversed(playerName string) string {
	return Sprintfln("%s reversed the turn order!", playerName)
}

func (m MessageWriter) HandsSwapped(playerName string) string {
	return Sprintfln("%s played a zero, every hand moves on!", playerName)
}

func (m MessageWriter) DeckReshuffled(amount int) string {
	return Sprintfln("The pile was shuffled back into the deck (%d cards).", amount)
}

func (m MessageWriter) DeckExhausted(playerName string, cancelled int) string {
	return Sprintfln("The deck is empty, %s is spared %d card(s).", playerName, cancelled)
}

func (m MessageWriter) HandLiquidated(playerName string, winnerName string, points int) string {
	return Sprintfln("%s gives %d point(s) to %s.", playerName, points, winnerName)
}

func (m MessageWriter) WinnerFound(playerName string, points int) string {
	return Sprintfln("%s wins with %d point(s)!", playerName, points)
}

func (m MessageWriter) MatchAborted() string {
	return Sprintln("The match was quit, it can be resumed from the menu.")
}

func (m MessageWriter) Paused() string {
	return Sprintln("Game paused. Enter r to resume or q to quit.")
}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

// Cards joins painted card labels.
func Cards(cards []card.Card) string {
	labels := make([]string, 0, len(cards))
	for _, c := range cards {
		labels = append(labels, c.String())
	}
	return strings.Join(labels, " ")
}

func Sprintfln(format string, args ...interface{}) string {
	return Sprintln(fmt.Sprintf(format, args...))
}

func Sprintlns(lines []string) string {
	return Sprintln(strings.Join(lines, "\n"))
}

func Sprintln(args ...interface{}) string {
	return fmt.Sprintln(args...)
}
