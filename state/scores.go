package state

import (
	"context"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/session"
)

type scores struct{}

func (*scores) Next(ctx context.Context, s *session.Session) (consts.StateID, error) {
	terminal := s.Terminal()
	terminal.Println("This session:")
	for _, score := range s.Scores() {
		terminal.Printfln("  %s: %d", score.Name, score.Points)
	}
	all, err := s.AllTimeScores(ctx)
	if err != nil {
		return 0, err
	}
	terminal.Println("All time:")
	for _, score := range all {
		terminal.Printfln("  %s: %d", score.Name, score.Points)
	}
	return consts.StateHome, nil
}
