package middleware

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/signal-au/signal-api/internal/auth"
	"github.com/signal-au/signal-api/pkg/problem"
)

// RateLimit enforces a fixed-window request limit per caller, keyed by the
// authenticated user when present and the client IP otherwise. A nil Redis
// client disables limiting; Redis failures fail open.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rdb == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := fmt.Sprintf("ratelimit:%s:%s", callerKey(r), r.URL.Path)

			count, err := rdb.Incr(r.Context(), key).Result()
			if err != nil {
				log.Printf("[ratelimit] redis incr failed: %v", err)
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				rdb.Expire(r.Context(), key, window)
			}

			if count > int64(limit) {
				problem.TooManyRequests("Rate limit exceeded, try again later").Write(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func callerKey(r *http.Request) string {
	if userID, ok := auth.UserIDFrom(r.Context()); ok {
		return userID.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
