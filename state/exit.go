package state

import (
	"context"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/session"
)

type exit struct{}

func (*exit) Next(_ context.Context, s *session.Session) (consts.StateID, error) {
	s.Terminal().Println("Bye!")
	return 0, nil
}
