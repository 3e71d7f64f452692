package middleware

import (
	"context"
	"net/http"

	"github.com/RoyceAzure/lab/santoral/internal/api/response"
	"github.com/RoyceAzure/lab/santoral/internal/apperr"
	"github.com/RoyceAzure/lab/santoral/internal/constants"
	"github.com/RoyceAzure/lab/santoral/internal/service"
	"github.com/rs/zerolog"
)

// StorefrontRegistry is the part of service.Registry the session middleware uses.
type StorefrontRegistry interface {
	GetOrCreate(id string) (*service.Storefront, bool, error)
}

type SessionCookieOptions struct {
	Secure bool
	MaxAge int
}

// SessionMiddleware resolves the sf_session cookie to a storefront and puts
// it in the request context. Unknown or missing cookies get a new session.
func SessionMiddleware(registry StorefrontRegistry, opts SessionCookieOptions) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(constants.SessionCookieName); err == nil {
				id = c.Value
			}

			sf, created, err := registry.GetOrCreate(id)
			if err != nil {
				zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to create storefront session")
				response.Error(w, apperr.Server(apperr.OpCart, http.StatusInternalServerError, err))
				return
			}
			if created {
				http.SetCookie(w, &http.Cookie{
					Name:     constants.SessionCookieName,
					Value:    sf.ID,
					Path:     "/",
					MaxAge:   opts.MaxAge,
					HttpOnly: true,
					Secure:   opts.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			zerolog.Ctx(r.Context()).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("session_id", sf.ID)
			})

			ctx := context.WithValue(r.Context(), constants.SessionIDKey, sf.ID)
			ctx = context.WithValue(ctx, constants.StorefrontKey, sf)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// StorefrontFrom returns the storefront SessionMiddleware attached, or nil.
func StorefrontFrom(ctx context.Context) *service.Storefront {
	sf, _ := ctx.Value(constants.StorefrontKey).(*service.Storefront)
	return sf
}
