package player

import (
	"github.com/google/uuid"
	"github.com/ratel-online/uno/uno/game"
)

type basicPlayer struct {
	id   string
	name string
	kind game.Kind
}

func newBasicPlayer(name string, kind game.Kind) basicPlayer {
	return basicPlayer{id: uuid.NewString(), name: name, kind: kind}
}

func (p basicPlayer) ID() string {
	return p.id
}

func (p basicPlayer) Name() string {
	return p.name
}

func (p basicPlayer) Kind() game.Kind {
	return p.kind
}
