package network

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/uno/database"
	"github.com/ratel-online/uno/session"
	"github.com/ratel-online/uno/state"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/sirupsen/logrus"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

// Handler runs a menu session for every connection. Sessions share the store and nothing
// else.
type Handler struct {
	store    database.Store
	logger   *logrus.Logger
	settings session.Settings
	seed     int64
	sessions *hashmap.HashMap
}

func NewHandler(store database.Store, logger *logrus.Logger, settings session.Settings, seed int64) *Handler {
	return &Handler{
		store:    store,
		logger:   logger,
		settings: settings,
		seed:     seed,
		sessions: hashmap.New(),
	}
}

// Sessions returns the ids of the connected sessions.
func (h *Handler) Sessions() []string {
	ids := make([]string, 0)
	h.sessions.Foreach(func(e *hashmap.Entry) {
		ids = append(ids, e.Value().(*session.Session).ID())
	})
	return ids
}

func (h *Handler) handle(rwc io.ReadWriteCloser, remote string) error {
	s := session.New(ui.NewTerminal(rwc, rwc), h.store, session.Options{
		Logger:   h.logger,
		Rand:     h.rand(),
		Settings: h.settings,
	})
	log := h.logger.WithFields(logrus.Fields{"session": s.ID(), "remote": remote})
	h.sessions.Set(s.ID(), s)
	log.Info("new player connected!")
	defer func() {
		h.sessions.Del(s.ID())
		if err := rwc.Close(); err != nil {
			log.WithError(err).Debug("close connection")
		}
		log.Info("player disconnected")
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	return state.Run(ctx, s)
}

func (h *Handler) rand() *rand.Rand {
	if h.seed != 0 {
		return rand.New(rand.NewSource(h.seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
