package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"beauty-booking-backend/pkg/response"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RateLimitMiddleware is a fixed-window, per-client-IP rate limiter backed by
// Redis so the limit holds across multiple instances. When Redis is down the
// middleware fails open; throttling is not worth refusing bookings over.
type RateLimitMiddleware struct {
	redis  *redis.Client
	log    *logrus.Logger
	limit  int
	window time.Duration
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

func NewRateLimitMiddleware(redisClient *redis.Client, log *logrus.Logger, limit int, window time.Duration) *RateLimitMiddleware {
	if limit <= 0 {
		limit = 120
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimitMiddleware{
		redis:  redisClient,
		log:    log,
		limit:  limit,
		window: window,
	}
}

func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := "ratelimit:" + clientKey(r)
		count, err := m.incr(r, key)
		if err != nil {
			m.log.Warnf("Rate limiter unavailable, allowing request: %+v", err)
			next.ServeHTTP(w, r)
			return
		}

		if count > int64(m.limit) {
			response.Error(w, http.StatusTooManyRequests, "Too many requests, slow down", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *RateLimitMiddleware) incr(r *http.Request, key string) (int64, error) {
	res, err := fixedWindowScript.Run(r.Context(), m.redis, []string{key}, m.window.Milliseconds()).Result()
	if err != nil {
		return 0, err
	}
	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}

func clientKey(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}
