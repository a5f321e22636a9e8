package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, попробуйте позже"

// Limiter решает, пропустить ли очередной запрос с ключом key
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit ограничивает частоту запросов по клиенту (X-User-ID или IP).
// При ошибке хранилища счетчиков запрос пропускается.
func RateLimit(limiter Limiter, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)

			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Warn("RateLimit - limiter error, letting request through: key=%s, error=%v", key, err)
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				logger.Warn("RateLimit - limit exceeded: key=%s", key)
				w.Header().Set("Retry-After", "60")
				handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RedisLimiter фиксированное окно в Redis, общее для всех экземпляров сервиса
type RedisLimiter struct {
	rdb    redis.Scripter
	limit  int
	window time.Duration
	prefix string
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

func NewRedisLimiter(rdb redis.Scripter, limit int, window time.Duration, prefix string) *RedisLimiter {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	if prefix == "" {
		prefix = "rl"
	}
	return &RedisLimiter{rdb: rdb, limit: limit, window: window, prefix: prefix}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	res, err := fixedWindowScript.Run(ctx, l.rdb, []string{l.prefix + ":" + key}, l.window.Milliseconds()).Result()
	if err != nil {
		return false, err
	}

	var count int64
	switch v := res.(type) {
	case int64:
		count = v
	case string:
		count, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return false, err
		}
	default:
		return false, fmt.Errorf("unexpected redis script result type %T", res)
	}

	return count <= int64(l.limit), nil
}

// defaultLocalMaxKeys предел числа клиентов, которых LocalLimiter держит в памяти
const defaultLocalMaxKeys = 10000

type localBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalLimiter token bucket на клиента в памяти процесса.
// Корзина, простоявшая дольше времени полного восполнения, удаляется:
// новая корзина для того же клиента ведет себя так же.
type LocalLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*localBucket
	every     time.Duration
	burst     int
	idleTTL   time.Duration
	maxKeys   int
	lastSweep time.Time
	now       func() time.Time
}

func NewLocalLimiter(requestsPerMinute, burst int) *LocalLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	if burst <= 0 {
		burst = 1
	}
	every := time.Minute / time.Duration(requestsPerMinute)
	return &LocalLimiter{
		buckets: make(map[string]*localBucket),
		every:   every,
		burst:   burst,
		idleTTL: every * time.Duration(burst),
		maxKeys: defaultLocalMaxKeys,
		now:     time.Now,
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.idleTTL {
		l.sweep(now)
	}

	bucket, ok := l.buckets[key]
	if !ok {
		if len(l.buckets) >= l.maxKeys {
			l.sweep(now)
			if len(l.buckets) >= l.maxKeys {
				l.evictOldest()
			}
		}
		bucket = &localBucket{limiter: rate.NewLimiter(rate.Every(l.every), l.burst)}
		l.buckets[key] = bucket
	}
	bucket.lastSeen = now

	return bucket.limiter.AllowN(now, 1), nil
}

// sweep удаляет корзины, простаивающие дольше idleTTL. Вызывается под mu.
func (l *LocalLimiter) sweep(now time.Time) {
	for key, bucket := range l.buckets {
		if now.Sub(bucket.lastSeen) >= l.idleTTL {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

// evictOldest удаляет давно не активного клиента, когда достигнут maxKeys. Вызывается под mu.
func (l *LocalLimiter) evictOldest() {
	var (
		oldestKey  string
		oldestSeen time.Time
	)
	for key, bucket := range l.buckets {
		if oldestKey == "" || bucket.lastSeen.Before(oldestSeen) {
			oldestKey, oldestSeen = key, bucket.lastSeen
		}
	}
	delete(l.buckets, oldestKey)
}

func clientKey(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(UserIDHeader)); id != "" {
		return "user:" + id
	}

	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if ip := strings.TrimSpace(strings.Split(fwd, ",")[0]); ip != "" {
			return "ip:" + ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "ip:" + r.RemoteAddr
	}
	return "ip:" + host
}
