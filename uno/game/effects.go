package game

import (
	"errors"
	"fmt"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/sirupsen/logrus"
)

func (m *Match) canDraw() bool {
	return !m.deck.Empty() || (m.rules.ReshuffleDiscard && m.pile.Size() > 1)
}

// drawCard takes the top card of the deck, reshuffling the discard pile into it first when
// the house rules allow.
func (m *Match) drawCard() (card.Card, error) {
	if m.deck.Empty() && m.rules.ReshuffleDiscard && m.pile.Size() > 1 {
		under := m.pile.TakeUnder()
		m.deck.Refill(under, m.rng)
		m.log.WithField("cards", len(under)).Debug("deck reshuffled")
		m.events.DeckReshuffled.Emit(event.DeckReshuffledPayload{Cards: len(under)})
	}
	return m.deck.Draw()
}

func (m *Match) draw(s *seat) error {
	drawn, err := m.drawCard()
	if err != nil {
		return fmt.Errorf("%s draws: %w", s.Name(), err)
	}
	s.hand.AddCards(drawn)
	s.drew = true
	m.message = fmt.Sprintf("%s drew a card", s.Name())
	m.log.WithField("player", s.Name()).Debug("drew")
	m.events.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerID:   s.player.ID(),
		PlayerName: s.Name(),
		Cards:      []card.Card{drawn},
	})
	return m.check()
}

// forceDraw hands s the cards a draw card put on them. Draws the deck cannot cover are
// cancelled.
func (m *Match) forceDraw(s *seat) error {
	drawn := make([]card.Card, 0, s.forcedDraws)
	for s.forcedDraws > 0 {
		c, err := m.drawCard()
		if errors.Is(err, ErrEmptyDeck) {
			m.log.WithFields(logrus.Fields{
				"player":    s.Name(),
				"cancelled": s.forcedDraws,
			}).Warn("deck exhausted, forced draws cancelled")
			m.events.DeckExhausted.Emit(event.DeckExhaustedPayload{PlayerName: s.Name(), Cancelled: s.forcedDraws})
			s.forcedDraws = 0
			break
		}
		if err != nil {
			return err
		}
		s.hand.AddCards(c)
		s.forcedDraws--
		drawn = append(drawn, c)
	}
	if len(drawn) > 0 {
		m.message = fmt.Sprintf("%s had to draw %d card(s)", s.Name(), len(drawn))
		m.log.WithFields(logrus.Fields{
			"player": s.Name(),
			"cards":  len(drawn),
		}).Debug("forced draw")
		m.events.CardsDrawn.Emit(event.CardsDrawnPayload{
			PlayerID:   s.player.ID(),
			PlayerName: s.Name(),
			Cards:      drawn,
			Forced:     true,
		})
	}
	return m.check()
}

func (m *Match) pass(s *seat) {
	m.passes++
	m.message = fmt.Sprintf("%s passed", s.Name())
	m.log.WithField("player", s.Name()).Debug("passed")
	m.events.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: s.Name()})
	if m.passes >= len(m.seats) {
		forced := color.All[m.rng.Intn(len(color.All))]
		m.passes = 0
		m.activeColor = forced
		m.activeValue = card.Wild
		if top, ok := m.pile.Top(); ok && top.IsWild() {
			m.pile.ReplaceTop(top.WithColor(forced))
		}
		m.resetDrew()
		m.message = fmt.Sprintf("Nobody could play, the color is now %s", forced.Name())
		m.log.WithField("color", forced.Name()).Debug("color reassigned")
		m.events.ColorPicked.Emit(event.ColorPickedPayload{Color: forced, Forced: true})
	}
	m.advance()
}

func (m *Match) play(s *seat, index int) error {
	played, err := s.hand.Remove(index)
	if err != nil {
		return err
	}
	m.passes = 0
	if !played.IsWild() && played.Color != m.activeColor {
		m.resetDrew()
	}
	m.pile.Add(played)
	if !played.IsWild() {
		m.activeColor = played.Color
	}
	m.activeValue = played.Value
	m.message = fmt.Sprintf("%s played %s", s.Name(), played)
	m.log.WithFields(logrus.Fields{
		"player": s.Name(),
		"card":   played.Value.Name(),
		"color":  played.Color.Name(),
	}).Debug("played")
	m.events.CardPlayed.Emit(event.CardPlayedPayload{PlayerName: s.Name(), Card: played})
	if err := m.check(); err != nil {
		return err
	}

	if s.hand.Empty() {
		return m.complete(s)
	}
	m.resolve(s, played)
	if m.pendingColor {
		m.colorEndsTurn = true
		return nil
	}
	m.advance()
	return nil
}

// resolve applies the effects of a played card. A color choice is left pending and taken by
// the same player before the turn moves on.
func (m *Match) resolve(s *seat, played card.Card) {
	m.state = StateResolving
	for _, a := range played.Actions() {
		switch a := a.(type) {
		case action.SkipTurnAction:
			m.pendingSkip = true
		case action.ReverseTurnsAction:
			m.reverse(s)
			if len(m.seats) == 2 {
				m.pendingSkip = true
			}
		case action.DrawCardsAction:
			m.seats[m.order.Peek(true)].forcedDraws += a.Amount()
		case action.PickColorAction:
			m.pendingColor = true
		case action.SwapHandsAction:
			if m.rules.ZeroSwap {
				m.swapHands(s)
			}
		}
	}
	m.state = StateAwaitingPlay
}

func (m *Match) reverse(s *seat) {
	m.order.Reverse()
	m.log.WithField("player", s.Name()).Debug("turn order reversed")
	m.events.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{PlayerName: s.Name(), Forward: m.order.Forward()})
}

// swapHands passes every hand to the next player in the direction of play.
func (m *Match) swapHands(s *seat) {
	step := 1
	if !m.order.Forward() {
		step = -1
	}
	size := len(m.seats)
	hands := make([]*Hand, size)
	for index, current := range m.seats {
		hands[(index+step+size)%size] = current.hand
	}
	for index, current := range m.seats {
		current.hand = hands[index]
	}
	m.log.WithField("player", s.Name()).Debug("hands swapped")
	m.events.HandsSwapped.Emit(event.HandsSwappedPayload{PlayerName: s.Name(), Forward: step > 0})
}

func (m *Match) chooseColor(s *seat) error {
	decision, err := m.decide(s, PhaseColor)
	if err != nil {
		return err
	}
	if decision.Kind == DecisionQuit {
		m.abort(s)
		return nil
	}
	if top, ok := m.pile.Top(); ok {
		m.pile.ReplaceTop(top.WithColor(decision.Color))
	}
	if decision.Color != m.activeColor {
		m.resetDrew()
	}
	m.activeColor = decision.Color
	m.pendingColor = false
	m.message = fmt.Sprintf("%s picked %s", s.Name(), decision.Color.Name())
	m.log.WithFields(logrus.Fields{
		"player": s.Name(),
		"color":  decision.Color.Name(),
	}).Debug("color picked")
	m.events.ColorPicked.Emit(event.ColorPickedPayload{PlayerName: s.Name(), Color: decision.Color})
	return nil
}

func (m *Match) resetDrew() {
	for _, s := range m.seats {
		s.drew = false
	}
}

// complete ends the match with s as winner. Every other hand is scored and laid on the pile.
func (m *Match) complete(s *seat) error {
	winnerIndex := 0
	points := 0
	for index, other := range m.seats {
		if other == s {
			winnerIndex = index
			continue
		}
		handPoints := other.hand.Points()
		for _, c := range other.hand.Clear() {
			m.pile.Add(c.Unbound())
		}
		points += handPoints
		m.events.HandLiquidated.Emit(event.HandLiquidatedPayload{
			PlayerName: other.Name(),
			WinnerName: s.Name(),
			Points:     handPoints,
		})
	}
	s.score += points
	m.winner = winnerIndex
	m.state = StateComplete
	m.pendingColor = false
	m.pendingSkip = false
	m.message = fmt.Sprintf("%s won with %d point(s)", s.Name(), points)
	m.log.WithFields(logrus.Fields{
		"player": s.Name(),
		"points": points,
	}).Info("match won")
	if err := m.check(); err != nil {
		return err
	}
	m.events.MatchEnded.Emit(event.MatchEndedPayload{MatchID: m.id, WinnerName: s.Name(), Points: points})
	m.render()
	return nil
}
