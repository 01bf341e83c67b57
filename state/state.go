package state

import (
	"context"
	"errors"
	"io"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/session"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateHome, &home{})
	register(consts.StateSettings, &settings{})
	register(consts.StateGame, &play{})
	register(consts.StateScores, &scores{})
	register(consts.StateExit, &exit{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

// State is one menu screen. Next returns the state to move to, or 0 to stay.
type State interface {
	Next(ctx context.Context, s *session.Session) (consts.StateID, error)
}

// Run drives s through the menus until it exits, its input ends or a fatal error occurs.
func Run(ctx context.Context, s *session.Session) error {
	current := consts.StateWelcome
	for current != consts.StateExit {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := states[current].Next(ctx, s)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if next > 0 {
			current = next
		}
	}
	_, err := states[consts.StateExit].Next(ctx, s)
	return err
}
