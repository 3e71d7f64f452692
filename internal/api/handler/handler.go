package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/santoral/internal/api/response"
	"github.com/RoyceAzure/lab/santoral/internal/apperr"
	"github.com/RoyceAzure/lab/santoral/internal/service"
	"github.com/go-chi/chi/v5"
)

// StorefrontResolver finds the storefront of the calling browser session.
type StorefrontResolver func(ctx context.Context) *service.Storefront

type base struct {
	resolve StorefrontResolver
}

func newBase(resolve StorefrontResolver) base {
	if resolve == nil {
		panic("storefront resolver cannot be nil")
	}
	return base{resolve: resolve}
}

func (b base) storefront(w http.ResponseWriter, r *http.Request) (*service.Storefront, bool) {
	sf := b.resolve(r.Context())
	if sf == nil {
		response.Error(w, apperr.ErrUnauthenticated)
		return nil, false
	}
	return sf, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		response.BadRequest(w, "Datos inválidos")
		return false
	}
	return true
}

func int64Param(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	v, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		response.BadRequest(w, "Parámetro inválido: "+name)
		return 0, false
	}
	return v, true
}

// queryInt returns 0 for a missing or malformed value so services apply
// their defaults.
func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}
