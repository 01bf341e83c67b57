package state

import (
	"context"
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/session"
)

type settings struct{}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}

func (*settings) Next(_ context.Context, s *session.Session) (consts.StateID, error) {
	terminal := s.Terminal()
	current := s.Settings()
	selected, err := terminal.PromptIntegerInRange(1, 4, fmt.Sprintf(
		"1. Zero swap: %s\n2. Reshuffle discard pile: %s\n3. Hide computer hands: %s\n4. Back",
		onOff(current.Rules.ZeroSwap),
		onOff(current.Rules.ReshuffleDiscard),
		onOff(current.HideComputerHands),
	))
	if err != nil {
		return 0, err
	}
	switch selected {
	case 1:
		current.Rules.ZeroSwap = !current.Rules.ZeroSwap
	case 2:
		current.Rules.ReshuffleDiscard = !current.Rules.ReshuffleDiscard
	case 3:
		current.HideComputerHands = !current.HideComputerHands
	case 4:
		return consts.StateHome, nil
	}
	s.SetSettings(current)
	return 0, nil
}
