package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed requests per window.
	defaultMaxAttempts = 120
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute

	redisKeyPrefix = "planner:ratelimit:"
)

// RateLimitStore counts requests per key in fixed windows.
type RateLimitStore interface {
	// Hit records a request for key and returns the number of requests in the
	// current window including this one.
	Hit(ctx context.Context, key string, window time.Duration) (int, error)
}

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int
	resetTime time.Time
}

// MemoryStore keeps counters in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*rateLimitEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*rateLimitEntry),
		now:     time.Now,
	}
}

// Hit implements RateLimitStore.
func (s *MemoryStore) Hit(_ context.Context, key string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, exists := s.entries[key]
	if !exists || now.After(entry.resetTime) {
		s.entries[key] = &rateLimitEntry{attempts: 1, resetTime: now.Add(window)}
		return 1, nil
	}
	entry.attempts++
	return entry.attempts, nil
}

// Cleanup removes expired entries.
func (s *MemoryStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, entry := range s.entries {
		if now.After(entry.resetTime) {
			delete(s.entries, key)
		}
	}
}

// RedisStore shares counters between API instances.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a store on top of client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Hit implements RateLimitStore. The window starts with the first request
// of a key; later requests do not extend it.
func (s *RedisStore) Hit(ctx context.Context, key string, window time.Duration) (int, error) {
	redisKey := redisKeyPrefix + key
	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return int(incr.Val()), nil
}

// RateLimiter provides per-client rate limiting. When the primary store
// fails, requests are counted by the in-memory fallback instead.
type RateLimiter struct {
	store          RateLimitStore
	fallback       *MemoryStore
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiter creates a new in-memory rate limiter with default settings.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(nil, defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a rate limiter over store. A nil store
// counts in memory.
func NewRateLimiterWithConfig(store RateLimitStore, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	fallback := NewMemoryStore()
	if store == nil {
		store = fallback
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if windowDuration <= 0 {
		windowDuration = defaultWindowDuration
	}
	return &RateLimiter{
		store:          store,
		fallback:       fallback,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		count, allowed := rl.allow(c.Request.Context(), clientIP)
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.maxAttempts))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(max(0, rl.maxAttempts-count)))
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}

// allow checks if a request from the given key should be allowed.
func (rl *RateLimiter) allow(ctx context.Context, key string) (int, bool) {
	count, err := rl.store.Hit(ctx, key, rl.windowDuration)
	if err != nil {
		slog.WarnContext(ctx, "Rate limit store unavailable, using in-memory counters", "error", err)
		count, _ = rl.fallback.Hit(ctx, key, rl.windowDuration)
	}
	return count, count <= rl.maxAttempts
}
