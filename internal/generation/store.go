package generation

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Store is the key-value abstraction the request handlers work against.
// Records are passed by value; mutate-then-Put replaces the stored copy.
type Store interface {
	Put(rec Record)
	Get(id string) (Record, bool)
}

// MemoryStore keeps records in process memory with a retention window.
// Swappable for a durable implementation without touching composition
// logic.
type MemoryStore struct {
	cache *cache.Cache
}

// NewMemoryStore builds a store whose records expire after retention.
func NewMemoryStore(retention time.Duration) *MemoryStore {
	if retention <= 0 {
		retention = 24 * time.Hour
	}
	return &MemoryStore{cache: cache.New(retention, 10*time.Minute)}
}

func (s *MemoryStore) Put(rec Record) {
	s.cache.SetDefault(rec.ID, rec)
}

func (s *MemoryStore) Get(id string) (Record, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return Record{}, false
	}
	rec, ok := v.(Record)
	return rec, ok
}

var _ Store = (*MemoryStore)(nil)
