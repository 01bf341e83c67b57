package state

import (
	"context"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/session"
	"github.com/ratel-online/uno/uno/game"
)

type play struct{}

func (*play) Next(ctx context.Context, s *session.Session) (consts.StateID, error) {
	result, err := s.PlayMatch(ctx)
	if err := report(s, result, err); err != nil {
		return 0, err
	}
	return consts.StateHome, nil
}

func report(s *session.Session, result game.Result, err error) error {
	terminal := s.Terminal()
	if err != nil {
		return terminal.WriteError(err)
	}
	if result.Aborted {
		return nil
	}
	for _, score := range s.Scores() {
		terminal.Printfln("%s: %d", score.Name, score.Points)
	}
	return nil
}
