package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type MatchState int

const (
	StateNotStarted MatchState = iota
	StateDealing
	StateAwaitingPlay
	StatePaused
	StateResolving
	StateComplete
)

var matchStateNames = map[MatchState]string{
	StateNotStarted:   "not_started",
	StateDealing:      "dealing",
	StateAwaitingPlay: "awaiting_play",
	StatePaused:       "paused",
	StateResolving:    "resolving",
	StateComplete:     "complete",
}

func (s MatchState) String() string {
	return matchStateNames[s]
}

func (s MatchState) MarshalText() ([]byte, error) {
	name, ok := matchStateNames[s]
	if !ok {
		return nil, fmt.Errorf("invalid match state %d", int(s))
	}
	return []byte(name), nil
}

func (s *MatchState) UnmarshalText(text []byte) error {
	for state, name := range matchStateNames {
		if name == string(text) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("invalid match state '%s'", text)
}

type SeatView struct {
	ID          string
	Name        string
	Kind        Kind
	Cards       int
	Hand        []card.Card
	Score       int
	ForcedDraws int
}

// RenderState is the public view of a match handed to renderers and players.
type RenderState struct {
	MatchID      string
	State        MatchState
	Current      string
	CurrentID    string
	Forward      bool
	ActiveColor  color.Color
	ActiveValue  card.Value
	Top          card.Card
	DeckSize     int
	PileSize     int
	Players      []SeatView
	PendingDraws int
	Message      string
	Error        string
	Winner       string
	Aborted      bool
}

func (s RenderState) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.Top))
	lines = append(lines, fmt.Sprintf("Active color: %s", s.ActiveColor))

	direction := "clockwise"
	if !s.Forward {
		direction = "counterclockwise"
	}
	var playerStatuses []string
	for _, player := range s.Players {
		playerStatus := fmt.Sprintf("%s (%d card(s))", player.Name, player.Cards)
		if player.ID == s.CurrentID {
			playerStatus = "*" + playerStatus
		}
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", direction, strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Deck: %d card(s), pile: %d card(s)", s.DeckSize, s.PileSize))

	if s.PendingDraws > 0 {
		lines = append(lines, fmt.Sprintf("Pending draws: %d", s.PendingDraws))
	}
	if s.Message != "" {
		lines = append(lines, s.Message)
	}
	if s.Error != "" {
		lines = append(lines, fmt.Sprintf("Error: %s", s.Error))
	}
	if s.Winner != "" {
		lines = append(lines, fmt.Sprintf("Winner: %s", s.Winner))
	}
	if s.Aborted {
		lines = append(lines, "Match aborted")
	}
	return strings.Join(lines, "\n")
}
