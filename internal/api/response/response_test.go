package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RoyceAzure/lab/santoral/internal/apperr"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		name string
		err  *apperr.DomainError
		want int
	}{
		{"validation", apperr.ErrInvalidQuantity, http.StatusBadRequest},
		{"unauthenticated", apperr.ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden", apperr.FromResponse(apperr.OpListUsers, http.StatusForbidden, ""), http.StatusForbidden},
		{"not found", apperr.FromResponse(apperr.OpGetProduct, http.StatusNotFound, "Producto no encontrado"), http.StatusNotFound},
		{"missing address", apperr.ErrMissingAddress, http.StatusPreconditionFailed},
		{"business rule", apperr.FromResponse(apperr.OpCheckout, http.StatusConflict, "Stock agotado"), http.StatusConflict},
		{"network", apperr.Network(apperr.OpCheckout, errors.New("dial tcp")), http.StatusBadGateway},
		{"server", apperr.FromResponse(apperr.OpCheckout, http.StatusInternalServerError, ""), http.StatusBadGateway},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, StatusFor(tc.err))
		})
	}
}

func TestErrorBody(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, fmt.Errorf("confirm: %w", apperr.FromResponse(apperr.OpCheckout, http.StatusConflict, "Stock agotado")))

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"message":"Stock agotado","code":"BUSINESS_RULE"}`, rec.Body.String())
}

func TestErrorNonDomain(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, errors.New("unexpected"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body ResponseError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, string(apperr.CodeServer), body.Code)
	require.NotEmpty(t, body.Message)
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, map[string]int{"id": 4}, "Dirección registrada")

	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"data":{"id":4},"message":"Dirección registrada"}`, rec.Body.String())
}

func TestTooManyRequests(t *testing.T) {
	rec := httptest.NewRecorder()
	TooManyRequests(rec)

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	var body ResponseError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, CodeRateLimited, body.Code)
}
