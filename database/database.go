package database

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/uno/game"
)

// ErrNotFound is returned when no snapshot is stored under an id.
var ErrNotFound = errors.New("not found")

// Score is the points a player has won across every recorded match.
type Score struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// Store keeps suspended matches and the scoreboard.
type Store interface {
	SaveSnapshot(ctx context.Context, snapshot *game.Snapshot) error
	LoadSnapshot(ctx context.Context, id string) (*game.Snapshot, error)
	DeleteSnapshot(ctx context.Context, id string) error
	Snapshots(ctx context.Context) ([]string, error)
	AddScore(ctx context.Context, name string, points int) error
	Scores(ctx context.Context) ([]Score, error)
	Close() error
}

// Open connects the backend named by cfg.Store.
func Open(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return NewMemory(), nil
	case config.StoreSqlite:
		return OpenSqlite(ctx, cfg.SqlitePath)
	case config.StoreRedis:
		return OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
	}
	return nil, fmt.Errorf("unknown store '%s'", cfg.Store)
}

// SortScores orders scores best first, then by name.
func SortScores(scores []Score) {
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Points != scores[j].Points {
			return scores[i].Points > scores[j].Points
		}
		return scores[i].Name < scores[j].Name
	})
}
