package contact

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Deduper suppresses repeated submissions of the same message.
type Deduper interface {
	// AcquireOnce returns true the first time key is seen within the TTL.
	AcquireOnce(ctx context.Context, key string) bool
	// Release forgets key so a submission that failed to send can be retried.
	Release(ctx context.Context, key string)
}

// Fingerprint identifies a submission by sender address and message text.
func Fingerprint(email, message string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(email)) + "\x00" + strings.TrimSpace(message)))
	return hex.EncodeToString(sum[:])
}

type RedisDeduper struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisDeduper(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisDeduper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisDeduper{rdb: rdb, ttl: ttl, logger: logger}
}

// AcquireOnce fails open: when Redis is unavailable the submission goes through.
func (d *RedisDeduper) AcquireOnce(ctx context.Context, key string) bool {
	ok, err := d.rdb.SetNX(ctx, redisDedupKey(key), 1, d.ttl).Result()
	if err != nil {
		d.logger.Warn("Dedup check failed, allowing submission", zap.Error(err))
		return true
	}
	return ok
}

func (d *RedisDeduper) Release(ctx context.Context, key string) {
	if err := d.rdb.Del(ctx, redisDedupKey(key)).Err(); err != nil {
		d.logger.Warn("Failed to release dedup key", zap.Error(err))
	}
}

func redisDedupKey(key string) string {
	return "contact:dedup:" + key
}

// MemoryDeduper is used when no Redis address is configured.
type MemoryDeduper struct {
	ttl time.Duration
	now func() time.Time

	mu   sync.Mutex
	seen map[string]time.Time
}

func NewMemoryDeduper(ttl time.Duration) *MemoryDeduper {
	return &MemoryDeduper{ttl: ttl, now: time.Now, seen: make(map[string]time.Time)}
}

func (d *MemoryDeduper) AcquireOnce(_ context.Context, key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	for k, expires := range d.seen {
		if !now.Before(expires) {
			delete(d.seen, k)
		}
	}
	if _, dup := d.seen[key]; dup {
		return false
	}
	d.seen[key] = now.Add(d.ttl)
	return true
}

func (d *MemoryDeduper) Release(_ context.Context, key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.seen, key)
}
