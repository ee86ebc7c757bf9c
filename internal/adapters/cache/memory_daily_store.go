package cache

import (
	"context"
	"sync"

	"github.com/comitanigiacomo/kanso-coach/internal/core/domain"
)

var _ domain.DailyStore = (*MemoryDailyStore)(nil)

// MemoryDailyStore keeps daily records for the lifetime of the process.
type MemoryDailyStore struct {
	store map[string]domain.DailyRecord

	mu sync.RWMutex
}

func NewMemoryDailyStore() *MemoryDailyStore {
	return &MemoryDailyStore{
		store: make(map[string]domain.DailyRecord),
	}
}

func (s *MemoryDailyStore) Load(ctx context.Context, source string) (domain.DailyRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.store[source]
	if !ok {
		return domain.DailyRecord{}, false, nil
	}
	return cloneRecord(rec), true, nil
}

func (s *MemoryDailyStore) Save(ctx context.Context, source string, record domain.DailyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store[source] = cloneRecord(record)
	return nil
}

func cloneRecord(rec domain.DailyRecord) domain.DailyRecord {
	payload := make([]byte, len(rec.Payload))
	copy(payload, rec.Payload)
	return domain.DailyRecord{Date: rec.Date, Payload: payload}
}
