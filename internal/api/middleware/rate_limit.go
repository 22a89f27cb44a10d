package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/utils/response"
)

type RateLimiter interface {
	CheckRateLimit(ctx context.Context, key string) (bool, int, int, error)
}

type RateLimitMiddleware struct {
	limiter RateLimiter
}

func NewRateLimitMiddleware(limiter RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit throttles requests per authenticated user. It must run after
// Authenticate. A limiter outage lets the request through.
func (m *RateLimitMiddleware) Limit(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		allowed, remaining, retryAfter, err := m.limiter.CheckRateLimit(r.Context(), fmt.Sprintf("user:%d", claims.UserID))
		if err != nil {
			logger.Error("Rate limit check failed", slog.String("error", err.Error()))
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			logger.Warn("Rate limit exceeded", slog.Int("retryAfter", retryAfter))
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			response.Error(w, errors.TooManyRequestsError("Too many requests. Please try again later."))
			return
		}

		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

		next.ServeHTTP(w, r)
	}
}
