package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/ratel-online/uno/uno/game"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id         TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS scores (
	name   TEXT PRIMARY KEY,
	points INTEGER NOT NULL DEFAULT 0
);`

type Sqlite struct {
	db *sql.DB
}

// OpenSqlite opens, creating if missing, the database file at path and applies the schema.
func OpenSqlite(ctx context.Context, path string) (*Sqlite, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Sqlite{db: db}, nil
}

func (s *Sqlite) SaveSnapshot(ctx context.Context, snapshot *game.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		snapshot.ID, string(data), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", snapshot.ID, err)
	}
	return nil
}

func (s *Sqlite) LoadSnapshot(ctx context.Context, id string) (*game.Snapshot, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", id, err)
	}
	snapshot := &game.Snapshot{}
	if err := json.Unmarshal([]byte(data), snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (s *Sqlite) DeleteSnapshot(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete snapshot %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Sqlite) Snapshots(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM snapshots ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Sqlite) AddScore(ctx context.Context, name string, points int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scores (name, points) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET points = points + excluded.points`,
		name, points,
	)
	if err != nil {
		return fmt.Errorf("add score %s: %w", name, err)
	}
	return nil
}

func (s *Sqlite) Scores(ctx context.Context) ([]Score, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, points FROM scores ORDER BY points DESC, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	scores := make([]Score, 0)
	for rows.Next() {
		var score Score
		if err := rows.Scan(&score.Name, &score.Points); err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}
	return scores, rows.Err()
}

func (s *Sqlite) Close() error {
	return s.db.Close()
}
