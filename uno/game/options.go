package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/uno/uno/event"
	"github.com/sirupsen/logrus"
)

// HouseRules are the optional rule variations of a match.
type HouseRules struct {
	// ZeroSwap makes zeros always playable; playing one passes every hand along the
	// direction of play.
	ZeroSwap bool `json:"zero_swap"`
	// ReshuffleDiscard shuffles the discard pile back into an empty deck instead of
	// blocking draws.
	ReshuffleDiscard bool `json:"reshuffle_discard"`
}

type Options struct {
	ID       string
	Rules    HouseRules
	Rand     *rand.Rand
	Logger   *logrus.Logger
	Renderer Renderer
	Events   *event.Hub

	// Deck replaces the shuffled standard deck, used as is.
	Deck *Deck
	// FirstSeat picks the seat that plays first given the number of seats. Defaults to a
	// random seat.
	FirstSeat func(seats int) int
}

func (o Options) withDefaults() Options {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.Logger == nil {
		o.Logger = logrus.New()
		o.Logger.SetOutput(io.Discard)
	}
	if o.Events == nil {
		o.Events = event.NewHub()
	}
	if o.FirstSeat == nil {
		rng := o.Rand
		o.FirstSeat = func(seats int) int {
			return rng.Intn(seats)
		}
	}
	return o
}
