package middleware

import (
	"net/http"

	"github.com/RoyceAzure/lab/santoral/internal/api/response"
	"github.com/RoyceAzure/lab/santoral/internal/infra/ratelimit"
	"github.com/rs/zerolog"
)

// RateLimitMiddleware limits each client fingerprint and answers 429 with
// the usual error body.
func RateLimitMiddleware(limiter ratelimit.Limiter) func(next http.Handler) http.Handler {
	return ratelimit.NewMiddleware(limiter, FingerprintKey, ratelimit.WithRejectHandler(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			zerolog.Ctx(r.Context()).Warn().Str("key", FingerprintKey(r)).Msg("rate limit exceeded")
			response.TooManyRequests(w)
		}),
	))
}
