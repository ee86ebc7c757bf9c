package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-coach/internal/core/domain"
)

var _ domain.DailyStore = (*RedisDailyStore)(nil)

// dailyRecordTTL must exceed one day: freshness is decided by the record date, not by expiry.
const dailyRecordTTL = 48 * time.Hour

type RedisDailyStore struct {
	cache *redis.Client
	log   *zap.Logger
}

func NewRedisDailyStore(cache *redis.Client, log *zap.Logger) *RedisDailyStore {
	return &RedisDailyStore{
		cache: cache,
		log:   log,
	}
}

func (s *RedisDailyStore) cacheKey(source string) string {
	return fmt.Sprintf("daily:%s", source)
}

func (s *RedisDailyStore) Load(ctx context.Context, source string) (domain.DailyRecord, bool, error) {
	key := s.cacheKey(source)

	val, err := s.cache.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return domain.DailyRecord{}, false, nil
	}
	if err != nil {
		return domain.DailyRecord{}, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var rec domain.DailyRecord
	if err := json.Unmarshal([]byte(val), &rec); err != nil || rec.Date == "" {
		s.log.Warn("corrupted daily record, cleaning up key", zap.String("key", key))
		s.cache.Del(ctx, key)
		return domain.DailyRecord{}, false, nil
	}

	return rec, true, nil
}

func (s *RedisDailyStore) Save(ctx context.Context, source string, record domain.DailyRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode daily record: %w", err)
	}

	key := s.cacheKey(source)
	if err := s.cache.Set(ctx, key, data, dailyRecordTTL).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
