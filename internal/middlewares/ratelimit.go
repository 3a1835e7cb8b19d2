package middlewares

import (
	"net/http"
	"strconv"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/sbilibin2017/iati-rates/internal/logger"
)

// NewIPLimiter creates a per client IP limiter from a formatted rate such as
// "5-M". A nil store keeps the counters in process memory.
func NewIPLimiter(formatted string, store limiter.Store) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}
	if store == nil {
		store = memory.NewStore()
	}
	return limiter.New(store, rate), nil
}

// RateLimitMiddleware rejects requests once the client IP exhausted its quota.
func RateLimitMiddleware(l *limiter.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ip := l.GetIPKey(r)

			lctx, err := l.Get(ctx, ip)
			if err != nil {
				logger.Log.Errorw("failed to get rate limit context", "request_id", RequestIDFromContext(ctx), "ip", ip, "error", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

			if lctx.Reached {
				logger.Log.Warnw("rate limit exceeded", "request_id", RequestIDFromContext(ctx), "ip", ip, "limit", lctx.Limit)
				writeError(w, http.StatusTooManyRequests, "too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
