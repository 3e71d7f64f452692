package ratelimit

import (
	"net/http"
)

// KeyFunc picks the bucket a request counts against.
type KeyFunc func(r *http.Request) string

type middlewareOptions struct {
	reject http.Handler
}

type MiddlewareOption func(*middlewareOptions)

// WithRejectHandler replaces the default plain-text 429 response.
func WithRejectHandler(h http.Handler) MiddlewareOption {
	return func(o *middlewareOptions) {
		o.reject = h
	}
}

// NewMiddleware rejects requests whose key has run out of budget.
func NewMiddleware(limiter Limiter, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	o := &middlewareOptions{
		reject: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
		}),
	}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(r.Context(), keyFunc(r)) {
				o.reject.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
