package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-coach/internal/core/domain"
)

// Clock returns the current time in the location that defines "today".
type Clock func() time.Time

const (
	SourceInspiration = "inspiration"
	SourceDailyBook   = "daily_book"
)

// DailyCache memoizes once-per-day sources. A source is fetched at most once per
// calendar date; absent results are cached too and only retried the next day.
type DailyCache struct {
	store domain.DailyStore
	now   Clock
	log   *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
	// last is the record of each source as written by this process, used when the
	// store cannot be read.
	last map[string]domain.DailyRecord
}

func NewDailyCache(store domain.DailyStore, now Clock, log *zap.Logger) *DailyCache {
	return &DailyCache{
		store: store,
		now:   now,
		log:   log,
		locks: make(map[string]*sync.Mutex),
		last:  make(map[string]domain.DailyRecord),
	}
}

func (c *DailyCache) sourceLock(sourceID string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.locks[sourceID]
	if !ok {
		l = &sync.Mutex{}
		c.locks[sourceID] = l
	}
	return l
}

func (c *DailyCache) lastRecord(sourceID string) (domain.DailyRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.last[sourceID]
	return rec, ok
}

func (c *DailyCache) remember(sourceID string, rec domain.DailyRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.last[sourceID] = rec
}

// GetOrFetch returns today's payload of a source, calling fetch only when the stored
// record belongs to another date. When the store cannot be read, the record last
// written by this process decides.
func (c *DailyCache) GetOrFetch(ctx context.Context, sourceID string, fetch func(ctx context.Context) json.RawMessage) json.RawMessage {
	l := c.sourceLock(sourceID)
	l.Lock()
	defer l.Unlock()

	today := domain.DateKey(c.now())

	rec, ok, err := c.store.Load(ctx, sourceID)
	if err != nil {
		c.log.Warn("daily cache read failed", zap.String("source", sourceID), zap.Error(err))
		rec, ok = c.lastRecord(sourceID)
	}
	if ok && rec.Date == today {
		return rec.Payload
	}

	payload := fetch(ctx)
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}

	// A fetch cut short by the caller says nothing about the source.
	if ctx.Err() != nil {
		c.log.Debug("daily source fetch aborted", zap.String("source", sourceID), zap.Error(ctx.Err()))
		return payload
	}

	rec = domain.DailyRecord{Date: today, Payload: payload}
	c.remember(sourceID, rec)
	if err := c.store.Save(ctx, sourceID, rec); err != nil {
		c.log.Warn("daily cache write failed", zap.String("source", sourceID), zap.Error(err))
	}

	c.log.Debug("daily source refreshed", zap.String("source", sourceID), zap.String("date", today))
	return payload
}

// Cached is the typed form of GetOrFetch for pointer snapshots. A nil snapshot is a
// valid cached value.
func Cached[T any](ctx context.Context, c *DailyCache, sourceID string, fetch func(ctx context.Context) *T) *T {
	raw := c.GetOrFetch(ctx, sourceID, func(ctx context.Context) json.RawMessage {
		v := fetch(ctx)
		if v == nil {
			return json.RawMessage("null")
		}
		data, err := json.Marshal(v)
		if err != nil {
			c.log.Warn("daily cache encode failed", zap.String("source", sourceID), zap.Error(err))
			return json.RawMessage("null")
		}
		return data
	})

	var out *T
	if err := json.Unmarshal(raw, &out); err != nil {
		c.log.Warn("daily cache decode failed", zap.String("source", sourceID), zap.Error(err))
		return nil
	}
	return out
}
