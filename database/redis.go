package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ratel-online/uno/uno/game"
	"github.com/redis/go-redis/v9"
)

const (
	snapshotPrefix = "uno:snapshot:"
	scoresKey      = "uno:scores"
)

type Redis struct {
	rdb *redis.Client
}

func OpenRedis(ctx context.Context, addr string, db int) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return &Redis{rdb: rdb}, nil
}

func (r *Redis) SaveSnapshot(ctx context.Context, snapshot *game.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, snapshotPrefix+snapshot.ID, data, 0).Err()
}

func (r *Redis) LoadSnapshot(ctx context.Context, id string) (*game.Snapshot, error) {
	data, err := r.rdb.Get(ctx, snapshotPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	snapshot := &game.Snapshot{}
	if err := json.Unmarshal(data, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (r *Redis) DeleteSnapshot(ctx context.Context, id string) error {
	n, err := r.rdb.Del(ctx, snapshotPrefix+id).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Redis) Snapshots(ctx context.Context) ([]string, error) {
	ids := make([]string, 0)
	iter := r.rdb.Scan(ctx, 0, snapshotPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), snapshotPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *Redis) AddScore(ctx context.Context, name string, points int) error {
	return r.rdb.ZIncrBy(ctx, scoresKey, float64(points), name).Err()
}

func (r *Redis) Scores(ctx context.Context) ([]Score, error) {
	entries, err := r.rdb.ZRevRangeWithScores(ctx, scoresKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	scores := make([]Score, 0, len(entries))
	for _, entry := range entries {
		scores = append(scores, Score{Name: fmt.Sprint(entry.Member), Points: int(entry.Score)})
	}
	SortScores(scores)
	return scores, nil
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}
