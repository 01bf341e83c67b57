package state

import (
	"context"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/session"
	"github.com/ratel-online/uno/uno/msg"
)

type welcome struct{}

// Next greets the player and, on a fresh session, seats them against one computer.
func (*welcome) Next(ctx context.Context, s *session.Session) (consts.StateID, error) {
	terminal := s.Terminal()
	if len(s.Players()) > 0 {
		return consts.StateHome, nil
	}
	terminal.Print(msg.Message.Welcome())
	name, err := terminal.PromptString("What's your name?")
	if err != nil {
		return 0, err
	}
	if err := s.AddHuman(name); err != nil {
		return 0, terminal.WriteError(err)
	}
	if _, err := s.AddComputer(); err != nil {
		return 0, terminal.WriteError(err)
	}
	return consts.StateHome, nil
}
