package game

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type SeatSnapshot struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Kind        Kind        `json:"kind"`
	Hand        []card.Card `json:"hand"`
	Score       int         `json:"score"`
	ForcedDraws int         `json:"forced_draws"`
	Drew        bool        `json:"drew"`
}

// Snapshot is the serialisable state of a match between two decisions.
type Snapshot struct {
	ID            string         `json:"id"`
	State         MatchState     `json:"state"`
	Phase         Phase          `json:"phase"`
	Deck          []card.Card    `json:"deck"`
	Pile          []card.Card    `json:"pile"`
	Seats         []SeatSnapshot `json:"seats"`
	Current       int            `json:"current"`
	Forward       bool           `json:"forward"`
	ActiveColor   color.Color    `json:"active_color"`
	ActiveValue   card.Value     `json:"active_value"`
	Passes        int            `json:"passes"`
	PendingSkip   bool           `json:"pending_skip"`
	PendingColor  bool           `json:"pending_color"`
	ColorEndsTurn bool           `json:"color_ends_turn"`
	Winner        string         `json:"winner,omitempty"`
	Aborted       bool           `json:"aborted"`
	Rules         HouseRules     `json:"rules"`
}

func (m *Match) Snapshot() *Snapshot {
	snapshot := &Snapshot{
		ID:            m.id,
		State:         m.state,
		Phase:         PhasePlay,
		Deck:          m.deck.Cards(),
		Pile:          m.pile.Cards(),
		Current:       m.order.Current(),
		Forward:       m.order.Forward(),
		ActiveColor:   m.activeColor,
		ActiveValue:   m.activeValue,
		Passes:        m.passes,
		PendingSkip:   m.pendingSkip,
		PendingColor:  m.pendingColor,
		ColorEndsTurn: m.colorEndsTurn,
		Aborted:       m.aborted,
		Rules:         m.rules,
	}
	switch {
	case m.state == StatePaused:
		snapshot.Phase = PhasePaused
	case m.pendingColor:
		snapshot.Phase = PhaseColor
	}
	for _, s := range m.seats {
		snapshot.Seats = append(snapshot.Seats, SeatSnapshot{
			ID:          s.player.ID(),
			Name:        s.player.Name(),
			Kind:        s.player.Kind(),
			Hand:        s.hand.Cards(),
			Score:       s.score,
			ForcedDraws: s.forcedDraws,
			Drew:        s.drew,
		})
	}
	if m.winner >= 0 {
		snapshot.Winner = m.seats[m.winner].player.ID()
	}
	return snapshot
}

// Restore rebuilds a match waiting for a decision. players are matched to the snapshot seats
// by ID; opts.Rules and opts.Deck are ignored in favour of the snapshot.
func Restore(snapshot *Snapshot, players []Player, opts Options) (*Match, error) {
	if snapshot.State != StateAwaitingPlay && snapshot.State != StatePaused {
		return nil, fmt.Errorf("restore %s in state %s: %w", snapshot.ID, snapshot.State, consts.ErrorsSnapshotState)
	}
	if len(snapshot.Seats) < consts.MinPlayers || len(snapshot.Seats) > consts.MaxPlayers {
		return nil, fmt.Errorf("restore %s with %d seats: %w", snapshot.ID, len(snapshot.Seats), consts.ErrorsSnapshotPlayer)
	}
	if len(players) != len(snapshot.Seats) {
		return nil, consts.ErrorsSnapshotPlayer
	}
	byID := make(map[string]Player, len(players))
	for _, player := range players {
		byID[player.ID()] = player
	}

	opts.ID = snapshot.ID
	opts.Deck = NewStackedDeck(snapshot.Deck)
	m := newMatch(opts)
	m.rules = snapshot.Rules
	m.state = snapshot.State
	for _, c := range snapshot.Pile {
		m.pile.Add(c)
	}
	for _, seatSnapshot := range snapshot.Seats {
		player, ok := byID[seatSnapshot.ID]
		if !ok {
			return nil, fmt.Errorf("restore player %s: %w", seatSnapshot.ID, consts.ErrorsSnapshotPlayer)
		}
		s := newSeat(player)
		s.hand.AddCards(seatSnapshot.Hand...)
		s.score = seatSnapshot.Score
		s.forcedDraws = seatSnapshot.ForcedDraws
		s.drew = seatSnapshot.Drew
		m.seats = append(m.seats, s)
	}
	m.order = NewCycler(len(m.seats))
	m.order.Set(snapshot.Current)
	if !snapshot.Forward {
		m.order.Reverse()
	}
	m.activeColor = snapshot.ActiveColor
	m.activeValue = snapshot.ActiveValue
	m.passes = snapshot.Passes
	m.pendingSkip = snapshot.PendingSkip
	m.pendingColor = snapshot.PendingColor
	m.colorEndsTurn = snapshot.ColorEndsTurn
	m.midTurn = true
	if err := m.check(); err != nil {
		return nil, err
	}
	return m, nil
}
