package game

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/sirupsen/logrus"
)

// takeTurn lets the current player act once. Forced draws are taken first, then a pending
// color choice, then the player's own play.
func (m *Match) takeTurn() error {
	s := m.current()
	switch {
	case m.midTurn:
		m.midTurn = false
	case !m.pendingColor || !m.colorEndsTurn:
		s.drew = false
	}
	if s.forcedDraws > 0 {
		if err := m.forceDraw(s); err != nil {
			return err
		}
	}

	if m.pendingColor {
		if err := m.chooseColor(s); err != nil || m.state == StateComplete {
			return err
		}
		if m.colorEndsTurn {
			m.colorEndsTurn = false
			m.advance()
			return nil
		}
	}

	for {
		decision, err := m.decide(s, PhasePlay)
		if err != nil {
			return err
		}
		switch decision.Kind {
		case DecisionQuit:
			m.abort(s)
			return nil
		case DecisionDraw:
			if err := m.draw(s); err != nil {
				return err
			}
		case DecisionPass:
			m.pass(s)
			return nil
		case DecisionPlay:
			return m.play(s, decision.Index)
		}
	}
}

// decide asks s until it returns a decision acceptable in phase. Pause and resume are
// consumed here.
func (m *Match) decide(s *seat, phase Phase) (Decision, error) {
	for {
		current := phase
		if m.state == StatePaused {
			current = PhasePaused
		}
		m.render()
		decision, err := s.player.Decide(m.turn(s, current))
		if err == nil {
			err = m.screen(s, decision, current)
		}
		if err != nil {
			if !consts.IsInputError(err) {
				return Decision{}, fmt.Errorf("%s decision: %w", s.Name(), err)
			}
			if err := m.reject(s, err); err != nil {
				return Decision{}, err
			}
			continue
		}

		m.lastError = ""
		m.rejected = 0
		switch decision.Kind {
		case DecisionPause:
			m.state = StatePaused
			m.message = fmt.Sprintf("%s paused the game", s.Name())
			m.log.WithField("player", s.Name()).Debug("paused")
			continue
		case DecisionResume:
			m.state = StateAwaitingPlay
			m.message = fmt.Sprintf("%s resumed the game", s.Name())
			m.log.WithField("player", s.Name()).Debug("resumed")
			continue
		}
		return decision, nil
	}
}

// screen validates a decision without touching the match.
func (m *Match) screen(s *seat, decision Decision, phase Phase) error {
	switch phase {
	case PhasePaused:
		switch decision.Kind {
		case DecisionResume, DecisionQuit:
			return nil
		}
		return consts.ErrorsPaused
	case PhaseColor:
		switch decision.Kind {
		case DecisionColor:
			if !decision.Color.Valid() || decision.Color == color.Wild {
				return consts.ErrorsColorExpected
			}
			return nil
		case DecisionPause, DecisionQuit:
			return nil
		case DecisionResume:
			return consts.ErrorsNotPaused
		}
		return consts.ErrorsColorExpected
	}

	switch decision.Kind {
	case DecisionPlay:
		c, err := s.hand.Card(decision.Index)
		if err != nil {
			return err
		}
		if !m.legality(s).Contains(c) {
			return consts.ErrorsCardNotPlayable
		}
		return nil
	case DecisionDraw:
		if !m.canDraw() {
			return consts.ErrorsDeckEmpty
		}
		return nil
	case DecisionPass:
		if m.canDraw() || !m.legality(s).Stuck() {
			return consts.ErrorsCannotPass
		}
		return nil
	case DecisionPause, DecisionQuit:
		return nil
	case DecisionResume:
		return consts.ErrorsNotPaused
	}
	return consts.ErrorsInputInvalid
}

func (m *Match) reject(s *seat, err error) error {
	m.lastError = err.Error()
	m.log.WithFields(logrus.Fields{
		"player": s.Name(),
		"error":  m.lastError,
	}).Debug("decision rejected")
	if s.player.Kind() != Computer {
		return nil
	}
	m.rejected++
	if m.rejected > consts.MaxRejectedDecisions {
		return m.violation("%s kept making rejected decisions, last: %s", s.Name(), m.lastError)
	}
	return nil
}

func (m *Match) legality(s *seat) Legality {
	return Classify(s.hand.Cards(), m.activeColor, m.activeValue, m.rules.ZeroSwap)
}

func (m *Match) turn(s *seat, phase Phase) Turn {
	return Turn{
		State:        m.RenderState(),
		Phase:        phase,
		Hand:         s.hand.Cards(),
		Legality:     m.legality(s),
		PreviousDrew: m.seats[m.order.Peek(false)].drew,
		NextDrew:     m.seats[m.order.Peek(true)].drew,
		TwoPlayers:   len(m.seats) == 2,
		DeckEmpty:    !m.canDraw(),
		Rules:        m.rules,
		Error:        m.lastError,
	}
}

// advance hands the turn to the next player, honouring a pending skip.
func (m *Match) advance() {
	m.order.Next()
	if m.pendingSkip {
		m.pendingSkip = false
		m.skip()
	}
	m.state = StateAwaitingPlay
}

func (m *Match) abort(s *seat) {
	m.message = fmt.Sprintf("%s quit the game", s.Name())
	if m.state == StatePaused {
		m.state = StateAwaitingPlay
	}
	m.suspended = m.Snapshot()
	m.aborted = true
	m.state = StateComplete
	m.log.WithField("player", s.Name()).Info("match quit")
	m.events.MatchEnded.Emit(event.MatchEndedPayload{MatchID: m.id, Aborted: true})
	m.render()
}
