package game_test

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
)

var errScriptExhausted = errors.New("script exhausted")

// scriptedPlayer replays fixed decisions and records every turn it is shown.
type scriptedPlayer struct {
	id        string
	name      string
	kind      game.Kind
	decisions []game.Decision
	turns     []game.Turn
}

func newScripted(name string, decisions ...game.Decision) *scriptedPlayer {
	return &scriptedPlayer{id: "id-" + name, name: name, kind: game.Human, decisions: decisions}
}

func (p *scriptedPlayer) ID() string      { return p.id }
func (p *scriptedPlayer) Name() string    { return p.name }
func (p *scriptedPlayer) Kind() game.Kind { return p.kind }

func (p *scriptedPlayer) Decide(turn game.Turn) (game.Decision, error) {
	p.turns = append(p.turns, turn)
	if len(p.decisions) == 0 {
		return game.Decision{}, errScriptExhausted
	}
	decision := p.decisions[0]
	p.decisions = p.decisions[1:]
	return decision, nil
}

// autoPlayer plays the first playable card, drawing or passing otherwise.
type autoPlayer struct {
	name string
}

func (p autoPlayer) ID() string      { return "auto-" + p.name }
func (p autoPlayer) Name() string    { return p.name }
func (p autoPlayer) Kind() game.Kind { return game.Computer }

func (p autoPlayer) Decide(turn game.Turn) (game.Decision, error) {
	switch turn.Phase {
	case game.PhaseColor:
		return game.ChooseColor(color.Green), nil
	case game.PhasePaused:
		return game.Resume(), nil
	}
	if playable := turn.Legality.Playable(); len(playable) > 0 {
		return game.Play(turn.IndexOf(playable[0])), nil
	}
	if !turn.DeckEmpty {
		return game.Draw(), nil
	}
	return game.Pass(), nil
}

func autoPlayers(n int) []game.Player {
	players := make([]game.Player, 0, n)
	for i := 0; i < n; i++ {
		players = append(players, autoPlayer{name: fmt.Sprintf("P%d", i)})
	}
	return players
}

type recorder struct {
	states []game.RenderState
}

func (r *recorder) Render(state game.RenderState) {
	r.states = append(r.states, state)
}

func (r *recorder) last() game.RenderState {
	return r.states[len(r.states)-1]
}

// deckBuilder arranges a full 108 card deck so tests know every hand.
type deckBuilder struct {
	pool []card.Card
}

func newDeckBuilder() *deckBuilder {
	return &deckBuilder{pool: game.NewDeck().Cards()}
}

func (b *deckBuilder) take(c color.Color, v card.Value) card.Card {
	for index, candidate := range b.pool {
		if candidate.Color == c && candidate.Value == v {
			b.pool = append(b.pool[:index], b.pool[index+1:]...)
			return candidate
		}
	}
	panic(fmt.Sprintf("no %s %s left", c.Name(), v.Name()))
}

// rest hands out every card not taken yet.
func (b *deckBuilder) rest() []card.Card {
	rest := b.pool
	b.pool = nil
	return rest
}

// stack returns a deck that deals hands in seat order, then flips first, then draws next.
func (b *deckBuilder) stack(hands [][]card.Card, first card.Card, next ...card.Card) *game.Deck {
	var order []card.Card
	for _, hand := range hands {
		order = append(order, hand...)
	}
	order = append(order, first)
	order = append(order, next...)
	order = append(order, b.rest()...)
	cards := make([]card.Card, len(order))
	for index, c := range order {
		cards[len(order)-1-index] = c
	}
	return game.NewStackedDeck(cards)
}

func stackedOptions(deck *game.Deck, hub *event.Hub, renderer game.Renderer) game.Options {
	return game.Options{
		ID:        "match-test",
		Rand:      rand.New(rand.NewSource(1)),
		Deck:      deck,
		Events:    hub,
		Renderer:  renderer,
		FirstSeat: func(int) int { return 0 },
	}
}

func totalCards(state game.RenderState) int {
	total := state.DeckSize + state.PileSize
	for _, player := range state.Players {
		total += player.Cards
	}
	return total
}
