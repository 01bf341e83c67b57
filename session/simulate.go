package session

import (
	"context"
	"fmt"
	"sort"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"github.com/sirupsen/logrus"
)

// Standing is how one player fared over a run of simulated matches.
type Standing struct {
	Name   string
	Wins   int
	Points int
}

// Simulate plays the given number of matches between computer players without a terminal
// and returns their standings, most wins first. Nothing is written to a store.
func Simulate(ctx context.Context, matches int, players []game.Player, opts Options) ([]Standing, error) {
	if len(players) < consts.MinPlayers {
		return nil, consts.ErrorsRosterTooSmall
	}
	opts = opts.withDefaults()
	standings := make([]Standing, len(players))
	seats := make(map[string]int, len(players))
	for index, p := range players {
		if p.Kind() == game.Human {
			return nil, fmt.Errorf("simulate %s: %w", p.Name(), consts.ErrorsSimulateHuman)
		}
		standings[index].Name = p.Name()
		seats[p.ID()] = index
	}

	log := opts.Logger.WithField("session", opts.ID)
	for round := 1; round <= matches; round++ {
		m, err := game.New(players, game.Options{
			Rules:  opts.Settings.Rules,
			Rand:   opts.Rand,
			Logger: opts.Logger,
		})
		if err != nil {
			return nil, err
		}
		result, err := m.Play(ctx)
		if err != nil {
			return nil, fmt.Errorf("simulate match %d: %w", round, err)
		}
		if result.Aborted {
			continue
		}
		standing := &standings[seats[result.WinnerID]]
		standing.Wins++
		standing.Points += result.Points
		log.WithFields(logrus.Fields{
			"match":  round,
			"winner": result.Winner,
			"points": result.Points,
		}).Debug("simulated match won")
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Wins != standings[j].Wins {
			return standings[i].Wins > standings[j].Wins
		}
		return standings[i].Name < standings[j].Name
	})
	return standings, nil
}
