package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/RoyceAzure/lab/santoral/internal/apperr"
	"github.com/RoyceAzure/lab/santoral/internal/constants"
	"github.com/RoyceAzure/lab/santoral/internal/model"
	"github.com/RoyceAzure/lab/santoral/internal/util"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testFingerprint = "27b5b15264621e6aeaad49fb948e645c5b5a1c7d81b8780f1f10b8de0e54f3c8"

type recordedRequest struct {
	Method      string
	Path        string
	Query       string
	Body        string
	Fingerprint string
	RequestID   string
}

type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	client   *Client
	mu       sync.Mutex
	requests []recordedRequest
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (suite *ClientTestSuite) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		suite.mu.Lock()
		suite.requests = append(suite.requests, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			Query:       r.URL.RawQuery,
			Body:        string(b),
			Fingerprint: r.Header.Get(constants.FingerprintHeader),
			RequestID:   r.Header.Get(constants.RequestIDHeader),
		})
		suite.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (suite *ClientTestSuite) lastRequest() recordedRequest {
	suite.mu.Lock()
	defer suite.mu.Unlock()
	require.NotEmpty(suite.T(), suite.requests)
	return suite.requests[len(suite.requests)-1]
}

func (suite *ClientTestSuite) SetupTest() {
	suite.requests = nil
	r := chi.NewRouter()
	r.Use(suite.record)

	r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "abc", Path: "/"})
		writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	})
	r.Get("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("token"); err != nil || c.Value != "abc" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "No autenticado"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"user": map[string]any{"id": 7, "name": "Ana", "email": "ana@test.co", "role": "user", "cart_id": "C7"}})
	})
	r.Get("/cart/summary", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":null,"total":"0","totalUniqueItems":0,"totalQuantity":0}`))
	})
	r.Post("/cart/add", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]string{"message": "Stock insuficiente"})
	})
	r.Delete("/cart/remove", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "eliminado"})
	})
	r.Put("/cart/update/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	r.Post("/orders/checkout", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"message": "Orden creada", "order": map[string]any{"id": 99, "userId": 7, "total": 30000, "status": "pendiente"}})
	})
	r.Get("/contact-us", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"data": []map[string]any{{"id": "1", "name": "Ana"}}, "total": 41})
	})
	r.Get("/dashboard/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total_users":3,"top_cart_products":[{"name":"Vela","count":"5"}],"users_per_day":[{"day":"2025-01-01","count":2}]}`))
	})
	r.Get("/broken", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	suite.server = httptest.NewServer(r)
	client, err := NewClient(suite.server.URL, WithFingerprint(testFingerprint))
	require.NoError(suite.T(), err)
	suite.client = client
}

func (suite *ClientTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *ClientTestSuite) TestLoginKeepsBackendSession() {
	user, err := suite.client.Login(context.Background(), model.LoginRequest{Email: "ana@test.co", Password: "secret"})
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), user)
	require.Equal(suite.T(), int64(7), user.ID)
	require.Equal(suite.T(), "C7", user.CartID)

	me, err := suite.client.Me(context.Background())
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "Ana", me.Name)
}

func (suite *ClientTestSuite) TestMeWithoutSessionIsAuthError() {
	_, err := suite.client.Me(context.Background())
	require.Error(suite.T(), err)
	require.ErrorIs(suite.T(), err, apperr.ErrUnauthenticated)
	require.Equal(suite.T(), "No autenticado", err.Error())
}

func (suite *ClientTestSuite) TestHeadersComeFromContext() {
	ctx := util.WithRequestID(context.Background(), "req-1")
	_, err := suite.client.GetCartSummary(ctx)
	require.NoError(suite.T(), err)
	last := suite.lastRequest()
	require.Equal(suite.T(), testFingerprint, last.Fingerprint)
	require.Equal(suite.T(), "req-1", last.RequestID)

	otherFp := "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"
	_, err = suite.client.GetCartSummary(util.WithFingerprint(context.Background(), otherFp))
	require.NoError(suite.T(), err)
	last = suite.lastRequest()
	require.Equal(suite.T(), otherFp, last.Fingerprint)
	require.NotEmpty(suite.T(), last.RequestID)
}

func (suite *ClientTestSuite) TestSummaryNullItemsBecomeEmpty() {
	summary, err := suite.client.GetCartSummary(context.Background())
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), summary.Items)
	require.Empty(suite.T(), summary.Items)
	require.True(suite.T(), summary.Total.IsZero())
}

func (suite *ClientTestSuite) TestBackendMessageIsVerbatim() {
	_, err := suite.client.AddToCart(context.Background(), model.AddToCartRequest{CartID: "C7", ProductID: "P1", VariantID: "V1", Quantity: 1})
	require.Error(suite.T(), err)
	require.Equal(suite.T(), "Stock insuficiente", err.Error())
	require.Equal(suite.T(), apperr.KindBusinessRule, apperr.KindOf(err))
}

func (suite *ClientTestSuite) TestMissingMessageUsesFallback() {
	err := suite.client.UpdateCartItem(context.Background(), 42, 3)
	require.Error(suite.T(), err)
	require.Equal(suite.T(), "Error al actualizar cantidad del producto", err.Error())
	require.Equal(suite.T(), apperr.KindServer, apperr.KindOf(err))
	require.Equal(suite.T(), "/cart/update/42", suite.lastRequest().Path)
	require.JSONEq(suite.T(), `{"quantity":3}`, suite.lastRequest().Body)
}

func (suite *ClientTestSuite) TestRemoveSendsBodyOnDelete() {
	err := suite.client.RemoveFromCart(context.Background(), model.RemoveFromCartRequest{ProductID: "P1", VariantID: "V1"})
	require.NoError(suite.T(), err)
	last := suite.lastRequest()
	require.Equal(suite.T(), http.MethodDelete, last.Method)
	require.JSONEq(suite.T(), `{"productId":"P1","variantId":"V1"}`, last.Body)
}

func (suite *ClientTestSuite) TestCheckout() {
	res, err := suite.client.Checkout(context.Background(), 5)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(99), res.Order.ID)
	require.True(suite.T(), decimal.NewFromInt(30000).Equal(res.Order.Total))
	require.Equal(suite.T(), model.OrderStatusPendiente, res.Order.Status)
	require.JSONEq(suite.T(), `{"addressId":5}`, suite.lastRequest().Body)
}

func (suite *ClientTestSuite) TestContactPageIsNormalized() {
	page, err := suite.client.ListContactRequests(context.Background(), 2, 20)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), page.Data, 1)
	require.Equal(suite.T(), 41, page.Total)
	require.Equal(suite.T(), 2, page.Page)
	require.Equal(suite.T(), 3, page.TotalPages)
	require.Equal(suite.T(), "limit=20&page=2", suite.lastRequest().Query)
}

func (suite *ClientTestSuite) TestDashboardCountsAcceptStrings() {
	stats, err := suite.client.GetDashboardStats(context.Background())
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 3, stats.TotalUsers)
	n, err := stats.TopCartProducts[0].Count.Int64()
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(5), n)
}

func (suite *ClientTestSuite) TestUndecodableBodyIsServerError() {
	var out map[string]any
	err := suite.client.do(context.Background(), apperr.OpGetProducts, http.MethodGet, "/broken", nil, nil, &out)
	require.Error(suite.T(), err)
	require.Equal(suite.T(), apperr.KindServer, apperr.KindOf(err))
	require.Equal(suite.T(), "Error al obtener productos", err.Error())
}

func (suite *ClientTestSuite) TestUnreachableBackendIsNetworkError() {
	suite.server.Close()
	_, err := suite.client.GetCartSummary(context.Background())
	require.Error(suite.T(), err)
	require.ErrorIs(suite.T(), err, apperr.ErrNetwork)
	require.Equal(suite.T(), "Error al obtener el carrito", err.Error())
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func TestTotalPages(t *testing.T) {
	require.Equal(t, 1, totalPages(0, 20))
	require.Equal(t, 1, totalPages(20, 20))
	require.Equal(t, 2, totalPages(21, 20))
	require.Equal(t, 1, totalPages(5, 0))
}

func TestNewClientRejectsBadURL(t *testing.T) {
	_, err := NewClient("::not a url")
	require.Error(t, err)
}
