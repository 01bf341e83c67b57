package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/database"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/sirupsen/logrus"
)

// Settings apply to every match the session starts.
type Settings struct {
	Rules             game.HouseRules
	HideComputerHands bool
	ComputerDelay     time.Duration
}

type Options struct {
	ID       string
	Logger   *logrus.Logger
	Rand     *rand.Rand
	Settings Settings
}

// Session is one person at one terminal: a roster, the settings and the scores of every
// match played from it.
type Session struct {
	id       string
	terminal *ui.Terminal
	store    database.Store
	logger   *logrus.Logger
	log      *logrus.Entry
	rng      *rand.Rand
	settings Settings
	roster   []game.Player
	scores   map[string]int
}

func (opts Options) withDefaults() Options {
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
		opts.Logger.SetOutput(io.Discard)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return opts
}

func New(terminal *ui.Terminal, store database.Store, opts Options) *Session {
	opts = opts.withDefaults()
	return &Session{
		id:       opts.ID,
		terminal: terminal,
		store:    store,
		logger:   opts.Logger,
		log:      opts.Logger.WithField("session", opts.ID),
		rng:      opts.Rand,
		settings: opts.Settings,
		scores:   map[string]int{},
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Terminal() *ui.Terminal {
	return s.terminal
}

func (s *Session) Settings() Settings {
	return s.settings
}

func (s *Session) SetSettings(settings Settings) {
	s.settings = settings
}

// Players returns the roster in seating order.
func (s *Session) Players() []game.Player {
	return append([]game.Player(nil), s.roster...)
}

func (s *Session) CanAdd() bool {
	return len(s.roster) < consts.MaxPlayers
}

func (s *Session) CanBegin() bool {
	return len(s.roster) >= consts.MinPlayers
}

// AddHuman seats a human. The name must be 1 to consts.MaxNameSize characters, unused in
// the roster and not a computer name.
func (s *Session) AddHuman(name string) error {
	name = strings.TrimSpace(name)
	if !s.CanAdd() {
		return consts.ErrorsRosterFull
	}
	if size := utf8.RuneCountInString(name); size == 0 || size > consts.MaxNameSize {
		return consts.ErrorsNameInvalid
	}
	if player.IsComputerName(name) {
		return consts.ErrorsNameReserved
	}
	for _, p := range s.roster {
		if strings.EqualFold(p.Name(), name) {
			return consts.ErrorsNameTaken
		}
	}
	s.roster = append(s.roster, player.NewHumanPlayer(name, s.terminal))
	s.log.WithField("player", name).Debug("human added")
	return nil
}

// AddComputer seats the next free computer and returns its name.
func (s *Session) AddComputer() (string, error) {
	if !s.CanAdd() {
		return "", consts.ErrorsRosterFull
	}
	name, ok := player.NextComputerName(s.names())
	if !ok {
		return "", consts.ErrorsRosterFull
	}
	s.roster = append(s.roster, player.NewComputerPlayer(name, s.rng, s.settings.ComputerDelay))
	s.log.WithField("player", name).Debug("computer added")
	return name, nil
}

// Remove unseats the player at index.
func (s *Session) Remove(index int) error {
	if index < 0 || index >= len(s.roster) {
		return consts.ErrorsSeatInvalid
	}
	s.log.WithField("player", s.roster[index].Name()).Debug("player removed")
	s.roster = append(s.roster[:index], s.roster[index+1:]...)
	return nil
}

func (s *Session) names() []string {
	names := make([]string, 0, len(s.roster))
	for _, p := range s.roster {
		names = append(names, p.Name())
	}
	return names
}

// Scores lists what each player won during this session, best first.
func (s *Session) Scores() []database.Score {
	scores := make([]database.Score, 0, len(s.scores))
	for name, points := range s.scores {
		scores = append(scores, database.Score{Name: name, Points: points})
	}
	database.SortScores(scores)
	return scores
}

// AllTimeScores is the scoreboard kept in the store.
func (s *Session) AllTimeScores(ctx context.Context) ([]database.Score, error) {
	return s.store.Scores(ctx)
}

// Suspended lists the ids of matches that can be resumed.
func (s *Session) Suspended(ctx context.Context) ([]string, error) {
	return s.store.Snapshots(ctx)
}

// PlayMatch plays one match with the roster.
func (s *Session) PlayMatch(ctx context.Context) (game.Result, error) {
	if !s.CanBegin() {
		return game.Result{}, consts.ErrorsRosterTooSmall
	}
	opts := s.matchOptions()
	m, err := game.New(s.roster, opts)
	if err != nil {
		return game.Result{}, err
	}
	s.watch(s.roster)
	s.log.WithField("match", m.ID()).Info("match started")
	return s.play(ctx, m, false)
}

// Resume continues the suspended match id. Its seats are rebuilt from the snapshot; human
// seats are prompted at this session's terminal.
func (s *Session) Resume(ctx context.Context, id string) (game.Result, error) {
	snapshot, err := s.store.LoadSnapshot(ctx, id)
	if err != nil {
		return game.Result{}, fmt.Errorf("resume %s: %w", id, err)
	}
	players := make([]game.Player, 0, len(snapshot.Seats))
	for _, seat := range snapshot.Seats {
		players = append(players, player.FromSeat(seat, s.terminal, s.rng, s.settings.ComputerDelay))
	}
	m, err := game.Restore(snapshot, players, s.matchOptions())
	if err != nil {
		return game.Result{}, err
	}
	s.watch(players)
	s.log.WithField("match", m.ID()).Info("match resumed")
	return s.play(ctx, m, true)
}

func (s *Session) matchOptions() game.Options {
	events := event.NewHub()
	events.Subscribe(s.terminal)
	s.terminal.HideComputerHands(s.settings.HideComputerHands)
	return game.Options{
		Rules:    s.settings.Rules,
		Rand:     s.rng,
		Logger:   s.logger,
		Renderer: s.terminal,
		Events:   events,
	}
}

func (s *Session) watch(players []game.Player) {
	for _, p := range players {
		if p.Kind() == game.Human {
			s.terminal.Watch(p.ID())
		}
	}
}

func (s *Session) play(ctx context.Context, m *game.Match, resumed bool) (game.Result, error) {
	log := s.log.WithField("match", m.ID())
	result, err := m.Play(ctx)
	if err != nil {
		var violation *game.InvariantViolation
		if !errors.As(err, &violation) && resumable(m.State()) {
			if saveErr := s.store.SaveSnapshot(context.Background(), m.Snapshot()); saveErr != nil {
				log.WithError(saveErr).Error("save interrupted match")
			} else {
				log.WithError(err).Info("match interrupted, saved for resuming")
			}
		}
		return result, err
	}

	if result.Aborted {
		if result.Snapshot == nil {
			return result, nil
		}
		if err := s.store.SaveSnapshot(ctx, result.Snapshot); err != nil {
			return result, fmt.Errorf("save match %s: %w", m.ID(), err)
		}
		log.Info("match suspended")
		return result, nil
	}

	s.scores[result.Winner] += result.Points
	if err := s.store.AddScore(ctx, result.Winner, result.Points); err != nil {
		return result, fmt.Errorf("record score: %w", err)
	}
	if resumed {
		if err := s.store.DeleteSnapshot(ctx, m.ID()); err != nil && !errors.Is(err, database.ErrNotFound) {
			return result, err
		}
	}
	log.WithFields(logrus.Fields{"winner": result.Winner, "points": result.Points}).Info("match won")
	return result, nil
}

func resumable(state game.MatchState) bool {
	return state == game.StateAwaitingPlay || state == game.StatePaused
}
