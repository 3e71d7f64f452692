package middleware

import (
	"net/http"

	"github.com/RoyceAzure/lab/santoral/internal/api/response"
	"github.com/RoyceAzure/lab/santoral/internal/apperr"
)

// AuthMiddleware 驗證session是否已登入
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sf := StorefrontFrom(r.Context())
		if sf == nil || sf.Session.Current() == nil {
			response.Error(w, apperr.ErrUnauthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AdminMiddleware only lets administrators through. The backend checks
// the role again.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sf := StorefrontFrom(r.Context())
		if sf == nil {
			response.Error(w, apperr.ErrUnauthenticated)
			return
		}
		user := sf.Session.Current()
		if user == nil {
			response.Error(w, apperr.ErrUnauthenticated)
			return
		}
		if !user.IsAdmin() {
			response.Error(w, apperr.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
