package middlewares

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/review-catalog/internal/logger"
)

// RateLimitMiddleware returns a middleware that throttles requests per
// client address with a fixed Redis window (INCR + EXPIRE). It fails open:
// when Redis is unreachable the request proceeds.
func RateLimitMiddleware(rdb *redis.Client, limit int64, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}
			key := fmt.Sprintf("ratelimit:%s:%s", r.URL.Path, host)

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				logger.Log.Errorw("rate limiter unavailable", "err", err)
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				rdb.Expire(ctx, key, window)
			}

			if count > limit {
				logger.Log.Infow("rate limit exceeded", "key", key, "count", count)
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
