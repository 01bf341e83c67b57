package database

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/uno/uno/game"
)

// Memory keeps everything in process. Snapshots are stored encoded so callers never share
// state with the store.
type Memory struct {
	snapshots *hashmap.HashMap
	scores    *hashmap.HashMap
	lock      sync.Mutex
}

type storedSnapshot struct {
	id   string
	data []byte
}

func NewMemory() *Memory {
	return &Memory{
		snapshots: hashmap.New(),
		scores:    hashmap.New(),
	}
}

func (m *Memory) SaveSnapshot(_ context.Context, snapshot *game.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	m.snapshots.Set(snapshot.ID, storedSnapshot{id: snapshot.ID, data: data})
	return nil
}

func (m *Memory) LoadSnapshot(_ context.Context, id string) (*game.Snapshot, error) {
	v, ok := m.snapshots.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	snapshot := &game.Snapshot{}
	if err := json.Unmarshal(v.(storedSnapshot).data, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (m *Memory) DeleteSnapshot(_ context.Context, id string) error {
	if _, ok := m.snapshots.Get(id); !ok {
		return ErrNotFound
	}
	m.snapshots.Del(id)
	return nil
}

func (m *Memory) Snapshots(_ context.Context) ([]string, error) {
	ids := make([]string, 0)
	m.snapshots.Foreach(func(e *hashmap.Entry) {
		ids = append(ids, e.Value().(storedSnapshot).id)
	})
	sort.Strings(ids)
	return ids, nil
}

func (m *Memory) AddScore(_ context.Context, name string, points int) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	score := Score{Name: name, Points: points}
	if v, ok := m.scores.Get(name); ok {
		score.Points += v.(Score).Points
	}
	m.scores.Set(name, score)
	return nil
}

func (m *Memory) Scores(_ context.Context) ([]Score, error) {
	scores := make([]Score, 0)
	m.scores.Foreach(func(e *hashmap.Entry) {
		scores = append(scores, e.Value().(Score))
	})
	SortScores(scores)
	return scores, nil
}

func (m *Memory) Close() error {
	return nil
}
