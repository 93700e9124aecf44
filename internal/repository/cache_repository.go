package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/aidt-dashboard-api/pkg/errors"
)

// cacheSchemaVersion is bumped whenever the cached view-model shape changes.
const (
	cacheSchemaVersion = 1
	scanBatchSize      = 100
)

type cacheEntry struct {
	Version  int             `json:"v"`
	StoredAt time.Time       `json:"stored_at"`
	Data     json.RawMessage `json:"data"`
}

var errStaleEntry = errors.New("cache entry schema mismatch")

// CacheRepository stores versioned JSON view-models in Redis.
type CacheRepository struct {
	client *redis.Client
	logger *zap.Logger
	now    func() time.Time
}

// NewCacheRepository constructs a cache repository. A nil client behaves as an always-miss cache.
func NewCacheRepository(client *redis.Client, logger *zap.Logger) *CacheRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheRepository{client: client, logger: logger, now: time.Now}
}

// Get decodes the cached value into dest or returns ErrCacheMiss. Entries written
// under another schema version, or that fail to decode, are evicted and reported as a miss.
func (r *CacheRepository) Get(ctx context.Context, key string, dest interface{}) error {
	if r.client == nil {
		return appErrors.ErrCacheMiss
	}

	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return appErrors.ErrCacheMiss
		}
		return fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := decodeEntry(raw, dest); err != nil {
		r.logger.Warn("evicting unusable cache entry", zap.String("key", key), zap.Error(err))
		if delErr := r.client.Del(ctx, key).Err(); delErr != nil {
			r.logger.Warn("cache eviction failed", zap.String("key", key), zap.Error(delErr))
		}
		return appErrors.ErrCacheMiss
	}
	return nil
}

// Set encodes value with the current schema version and stores it with ttl.
func (r *CacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}

	payload, err := encodeEntry(value, r.now())
	if err != nil {
		return fmt.Errorf("encode cache value for %s: %w", key, err)
	}
	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes the given keys verbatim. Glob metacharacters are not expanded.
func (r *CacheRepository) Delete(ctx context.Context, keys ...string) error {
	if r.client == nil || len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis delete %s: %w", strings.Join(keys, ","), err)
	}
	return nil
}

// DeleteByPattern removes a single key, or every key matching a glob pattern.
func (r *CacheRepository) DeleteByPattern(ctx context.Context, pattern string) error {
	if r.client == nil {
		return nil
	}
	if !strings.ContainsAny(pattern, "*?[") {
		return r.Delete(ctx, pattern)
	}

	batch := make([]string, 0, scanBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := r.client.Unlink(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("redis unlink %d keys: %w", len(batch), err)
		}
		batch = batch[:0]
		return nil
	}

	iter := r.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan pattern %s: %w", pattern, err)
	}
	return flush()
}

func encodeEntry(value interface{}, storedAt time.Time) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(cacheEntry{Version: cacheSchemaVersion, StoredAt: storedAt.UTC(), Data: data})
}

func decodeEntry(raw []byte, dest interface{}) error {
	var entry cacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return err
	}
	if entry.Version != cacheSchemaVersion {
		return fmt.Errorf("%w: got v%d", errStaleEntry, entry.Version)
	}
	return json.Unmarshal(entry.Data, dest)
}
