package middleware

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/vacinabr/vaccination-api/internal/errs"
	"github.com/vacinabr/vaccination-api/internal/server"
)

// rateLimitWindow is the fixed window the read limit is counted over.
const rateLimitWindow = time.Minute

// RateLimitStore counts requests per key within a fixed window. Allow
// reports whether the request under key may proceed; when denied it
// also reports how long the client should wait.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, retryAfter time.Duration, err error)
}

// RateLimitMiddleware throttles the read endpoints per client IP and
// route. The counters live in Redis when available so the limit holds
// across replicas; otherwise an in-process store is used.
type RateLimitMiddleware struct {
	server *server.Server
	store  RateLimitStore
}

// NewRateLimitMiddleware picks the backing store from the server's
// Redis client.
func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	var store RateLimitStore
	if s.Redis != nil {
		store = NewRedisRateLimitStore(s.Redis)
	} else {
		store = NewMemoryRateLimitStore()
	}

	return &RateLimitMiddleware{
		server: s,
		store:  store,
	}
}

// LimitReads returns the middleware enforcing the configured
// requests-per-minute limit. A failing store lets requests through:
// reference data reads are not worth a hard dependency on Redis.
func (r *RateLimitMiddleware) LimitReads() echo.MiddlewareFunc {
	limit := r.server.Config.RateLimit.ReadRequestsPerMinute

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := fmt.Sprintf("ratelimit:%s:%s", c.RealIP(), c.Path())

			allowed, retryAfter, err := r.store.Allow(c.Request().Context(), key, limit, rateLimitWindow)
			if err != nil {
				GetLogger(c).Warn().Err(err).Msg("rate limit store unavailable, allowing request")
				return next(c)
			}

			if !allowed {
				r.recordRateLimitHit(c)
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Round(time.Second).Seconds())))
				return errs.NewTooManyRequestsError(retryAfter)
			}

			return next(c)
		}
	}
}

func (r *RateLimitMiddleware) recordRateLimitHit(c echo.Context) {
	GetLogger(c).Warn().
		Str("endpoint", c.Path()).
		Str("ip", c.RealIP()).
		Msg("rate limit hit")
}

// RedisRateLimitStore counts with INCR and a TTL on the first hit of
// each window.
type RedisRateLimitStore struct {
	client *redis.Client
}

// NewRedisRateLimitStore wraps a connected Redis client.
func NewRedisRateLimitStore(client *redis.Client) *RedisRateLimitStore {
	return &RedisRateLimitStore{client: client}
}

func (s *RedisRateLimitStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, err
	}

	if count == 1 {
		if err := s.client.Expire(ctx, key, window).Err(); err != nil {
			return false, 0, err
		}
	}

	if count > int64(limit) {
		ttl, err := s.client.TTL(ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = window
		}
		return false, ttl, nil
	}

	return true, 0, nil
}

// MemoryRateLimitStore is the in-process fallback used when Redis is
// not configured. Counters reset when their window expires.
type MemoryRateLimitStore struct {
	mu      sync.Mutex
	windows map[string]*fixedWindow

	// now is replaceable in tests.
	now func() time.Time
}

type fixedWindow struct {
	count   int
	resetAt time.Time
}

// NewMemoryRateLimitStore creates an empty in-process store.
func NewMemoryRateLimitStore() *MemoryRateLimitStore {
	return &MemoryRateLimitStore{
		windows: make(map[string]*fixedWindow),
		now:     time.Now,
	}
}

func (s *MemoryRateLimitStore) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	w, ok := s.windows[key]
	if !ok || now.After(w.resetAt) {
		s.windows[key] = &fixedWindow{count: 1, resetAt: now.Add(window)}
		return true, 0, nil
	}

	w.count++
	if w.count > limit {
		return false, w.resetAt.Sub(now), nil
	}

	return true, 0, nil
}
