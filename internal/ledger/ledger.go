// Package ledger persists pending picks and settles them against
// finished matches.
package ledger

import (
	"context"
	"sync"
	"time"
)

// Entry is one pending pick, keyed by the (home, away) team pair. At
// most one entry exists per key; recording a rematch overwrites the
// prior unresolved pick.
type Entry struct {
	Key          string    `bson:"_id" json:"key"`
	HomeTeam     string    `bson:"home_team" json:"home_team"`
	AwayTeam     string    `bson:"away_team" json:"away_team"`
	RecordedDate time.Time `bson:"recorded_date" json:"recorded_date"`
	Pick         string    `bson:"pick" json:"pick"`
}

// Repository is per-key storage for pending picks. Mutations are
// per-key upserts and deletes rather than whole-document rewrites, so
// overlapping runs cannot clobber each other's writes.
type Repository interface {
	All(ctx context.Context) ([]Entry, error)
	Get(ctx context.Context, key string) (*Entry, error)
	Upsert(ctx context.Context, entry Entry) error
	Delete(ctx context.Context, key string) error
}

// MemoryRepository is an in-memory Repository. It backs tests and the
// fail-open path when the database is unreachable: the run proceeds
// with an empty ledger instead of crashing.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string]Entry)}
}

func (r *MemoryRepository) All(ctx context.Context) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *MemoryRepository) Get(ctx context.Context, key string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.entries[key]; ok {
		return &e, nil
	}
	return nil, nil
}

func (r *MemoryRepository) Upsert(ctx context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[entry.Key] = entry
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, key)
	return nil
}
