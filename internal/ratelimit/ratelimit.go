package ratelimit

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"media-search-service/internal/logging"
)

// Limiter is a fixed-window per-IP rate limiter with its counters in Redis,
// so it stays correct across concurrent requests and multiple replicas.
type Limiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	log    logging.Logger
}

func New(rdb *redis.Client, limit int, window time.Duration, log logging.Logger) *Limiter {
	return &Limiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		log:    log,
	}
}

func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		key := "ratelimit:" + clientIP(r)

		count, err := l.rdb.Incr(ctx, key).Result()
		if err != nil {
			// fail open: losing rate limiting beats losing the service
			l.log.Warnw("rate limiter unavailable, allowing request", "error", err.Error())
			next.ServeHTTP(w, r)
			return
		}
		if count == 1 {
			if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
				l.log.Warnw("rate limiter could not arm window", "error", err.Error())
			}
		}

		if count > int64(l.limit) {
			ttl, err := l.rdb.TTL(ctx, key).Result()
			if err == nil && ttl < 0 {
				// counter survived without a TTL (the arming EXPIRE was
				// lost); re-arm it so the block lifts with the window
				l.rdb.Expire(ctx, key, l.window)
				ttl = l.window
			}
			if ttl > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(int(ttl.Seconds())))
			}
			writeError(w, http.StatusTooManyRequests, "too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": msg,
	})
}
