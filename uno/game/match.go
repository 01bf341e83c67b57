package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/sirupsen/logrus"
)

// Result is the outcome of a finished match. Snapshot is set when the match was quit and
// can be resumed.
type Result struct {
	Winner   string
	WinnerID string
	Points   int
	Aborted  bool
	Snapshot *Snapshot
}

// Match runs one game of Uno from the deal to the last card. It is not safe for concurrent
// use; every decision is taken on the goroutine calling Play.
type Match struct {
	id        string
	rules     HouseRules
	rng       *rand.Rand
	log       *logrus.Entry
	renderer  Renderer
	events    *event.Hub
	firstSeat func(int) int
	stacked   bool

	state       MatchState
	deck        *Deck
	pile        *Pile
	seats       []*seat
	order       *Cycler
	activeColor color.Color
	activeValue card.Value

	passes        int
	pendingSkip   bool
	pendingColor  bool
	colorEndsTurn bool
	// midTurn is set by Restore: the current seat may already have drawn this turn.
	midTurn       bool
	winner        int
	aborted       bool
	suspended     *Snapshot

	message   string
	lastError string
	rejected  int
}

func New(players []Player, opts Options) (*Match, error) {
	if len(players) < consts.MinPlayers || len(players) > consts.MaxPlayers {
		return nil, consts.ErrorsPlayersInvalid
	}
	seen := make(map[string]bool, len(players))
	for _, player := range players {
		if seen[player.ID()] {
			return nil, fmt.Errorf("duplicate player id %s: %w", player.ID(), consts.ErrorsPlayersInvalid)
		}
		seen[player.ID()] = true
	}
	m := newMatch(opts)
	for _, player := range players {
		m.seats = append(m.seats, newSeat(player))
	}
	m.order = NewCycler(len(m.seats))
	return m, nil
}

func newMatch(opts Options) *Match {
	opts = opts.withDefaults()
	m := &Match{
		id:        opts.ID,
		rules:     opts.Rules,
		rng:       opts.Rand,
		log:       opts.Logger.WithField("match", opts.ID),
		renderer:  opts.Renderer,
		events:    opts.Events,
		firstSeat: opts.FirstSeat,
		deck:      opts.Deck,
		pile:      NewPile(),
		winner:    -1,
	}
	if m.deck == nil {
		m.deck = NewDeck()
	} else {
		m.stacked = true
	}
	return m
}

func (m *Match) ID() string {
	return m.id
}

func (m *Match) State() MatchState {
	return m.state
}

func (m *Match) Events() *event.Hub {
	return m.events
}

// Play runs the match until it is won or quit. ctx is checked between turns.
func (m *Match) Play(ctx context.Context) (Result, error) {
	if m.state == StateNotStarted {
		if err := m.deal(); err != nil {
			return Result{}, err
		}
	}
	for m.state != StateComplete {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if err := m.takeTurn(); err != nil {
			return Result{}, err
		}
	}
	return m.result(), nil
}

func (m *Match) result() Result {
	if m.aborted || m.winner < 0 {
		return Result{Aborted: true, Snapshot: m.suspended}
	}
	winner := m.seats[m.winner]
	return Result{
		Winner:   winner.Name(),
		WinnerID: winner.player.ID(),
		Points:   winner.score,
	}
}

func (m *Match) deal() error {
	m.state = StateDealing
	if !m.stacked {
		m.deck.Populate()
		m.deck.Shuffle(m.rng)
	}
	for _, s := range m.seats {
		for i := 0; i < consts.HandSize; i++ {
			c, err := m.deck.Draw()
			if err != nil {
				return fmt.Errorf("deal to %s: %w", s.Name(), err)
			}
			s.hand.AddCards(c)
		}
	}
	m.order.Set(m.firstSeat(len(m.seats)))

	first, err := m.deck.Draw()
	if err != nil {
		return fmt.Errorf("flip first card: %w", err)
	}
	m.pile.Add(first)
	m.activeColor = first.Color
	m.activeValue = first.Value
	m.log.WithFields(logrus.Fields{
		"card":   first.Value.Name(),
		"player": m.current().Name(),
	}).Debug("dealt")
	m.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: first})
	if err := m.check(); err != nil {
		return err
	}

	m.applyFirstCard(first)
	m.state = StateAwaitingPlay
	return nil
}

// applyFirstCard makes the flipped card act on the first player.
func (m *Match) applyFirstCard(first card.Card) {
	s := m.current()
	for _, a := range first.Actions() {
		switch a := a.(type) {
		case action.DrawCardsAction:
			s.forcedDraws += a.Amount()
		case action.PickColorAction:
			m.pendingColor = true
		case action.SkipTurnAction:
			m.skip()
		case action.ReverseTurnsAction:
			m.reverse(s)
			if len(m.seats) == 2 {
				m.skip()
			}
		}
	}
}

func (m *Match) current() *seat {
	return m.seats[m.order.Current()]
}

// skip moves the turn past the current player without letting them act.
func (m *Match) skip() {
	skipped := m.current()
	m.order.Next()
	m.events.TurnSkipped.Emit(event.TurnSkippedPayload{PlayerName: skipped.Name()})
}

func (m *Match) render() {
	if m.renderer != nil {
		m.renderer.Render(m.RenderState())
	}
}

// RenderState returns the public view of the match.
func (m *Match) RenderState() RenderState {
	state := RenderState{
		MatchID:     m.id,
		State:       m.state,
		Forward:     m.order.Forward(),
		ActiveColor: m.activeColor,
		ActiveValue: m.activeValue,
		DeckSize:    m.deck.Size(),
		PileSize:    m.pile.Size(),
		Message:     m.message,
		Error:       m.lastError,
		Aborted:     m.aborted,
	}
	if top, ok := m.pile.Top(); ok {
		state.Top = top
	}
	if m.state != StateNotStarted {
		current := m.current()
		state.Current = current.Name()
		state.CurrentID = current.player.ID()
	}
	for _, s := range m.seats {
		state.Players = append(state.Players, s.view())
		state.PendingDraws += s.forcedDraws
	}
	if m.winner >= 0 {
		state.Winner = m.seats[m.winner].Name()
	}
	return state
}
