package service

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/RoyceAzure/lab/santoral/internal/apperr"
	mock_backend "github.com/RoyceAzure/lab/santoral/internal/infra/backend/mock"
	"github.com/RoyceAzure/lab/santoral/internal/model"
	"github.com/RoyceAzure/lab/santoral/internal/model/event"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CartStoreTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	api       *mock_backend.MockICartAPI
	published *eventRecorder
	store     *CartStore
}

func TestCartStoreTestSuite(t *testing.T) {
	suite.Run(t, new(CartStoreTestSuite))
}

func (s *CartStoreTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.api = mock_backend.NewMockICartAPI(s.ctrl)
	s.published = &eventRecorder{}
	s.store = NewCartStore(s.api, s.published, nil, "sess-1")
}

func (s *CartStoreTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CartStoreTestSuite) TestStartsEmpty() {
	cur := s.store.Current()
	s.True(cur.IsEmpty())
	s.True(cur.Total.IsZero())
}

func (s *CartStoreTestSuite) TestAddItemReloadsSummary() {
	ctx := context.Background()
	gomock.InOrder(
		s.api.EXPECT().AddToCart(gomock.Any(), model.AddToCartRequest{
			CartID:    "c1",
			ProductID: "p1",
			VariantID: "v1",
			Quantity:  3,
		}).Return("Producto agregado", nil),
		s.api.EXPECT().GetCartSummary(gomock.Any()).Return(cartWith(10000, 3), nil),
	)

	summary, err := s.store.AddItem(ctx, "c1", "p1", "v1", 3)
	s.Require().NoError(err)
	s.Equal(3, summary.TotalQuantity)
	s.True(summary.Total.Equal(decimal.NewFromInt(30000)))
	s.True(s.store.Current().Total.Equal(decimal.NewFromInt(30000)))
	s.Equal([]event.EventType{event.CartSyncedEventName}, s.published.types())
}

func (s *CartStoreTestSuite) TestAddItemValidation() {
	testCases := []struct {
		name      string
		cartID    string
		productID string
		variantID string
		quantity  int
		code      apperr.Code
	}{
		{name: "zero quantity", cartID: "c1", productID: "p1", variantID: "v1", quantity: 0, code: apperr.CodeInvalidQuantity},
		{name: "negative quantity", cartID: "c1", productID: "p1", variantID: "v1", quantity: -2, code: apperr.CodeInvalidQuantity},
		{name: "missing cart", cartID: " ", productID: "p1", variantID: "v1", quantity: 1, code: apperr.CodeValidation},
		{name: "missing product", cartID: "c1", productID: "", variantID: "v1", quantity: 1, code: apperr.CodeMissingProduct},
		{name: "missing variant", cartID: "c1", productID: "p1", variantID: "", quantity: 1, code: apperr.CodeMissingVariant},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// no backend expectation: any call fails the test
			_, err := s.store.AddItem(context.Background(), tc.cartID, tc.productID, tc.variantID, tc.quantity)
			de, ok := apperr.As(err)
			s.Require().True(ok)
			s.Equal(tc.code, de.Code)
			s.Equal(apperr.KindValidation, de.Kind)
		})
	}
}

func (s *CartStoreTestSuite) TestAddItemRejectedKeepsBackendMessage() {
	s.api.EXPECT().AddToCart(gomock.Any(), gomock.Any()).
		Return("", apperr.FromResponse(apperr.OpAddToCart, http.StatusBadRequest, "Stock insuficiente"))

	_, err := s.store.AddItem(context.Background(), "c1", "p1", "v1", 50)
	s.Require().ErrorIs(err, apperr.ErrAddItemRejected)
	s.Equal("Stock insuficiente", err.Error())
	s.Empty(s.published.types())
}

func (s *CartStoreTestSuite) TestAddItemNetworkErrorKeepsCode() {
	s.api.EXPECT().AddToCart(gomock.Any(), gomock.Any()).
		Return("", apperr.Network(apperr.OpAddToCart, context.DeadlineExceeded))

	_, err := s.store.AddItem(context.Background(), "c1", "p1", "v1", 1)
	s.Require().ErrorIs(err, apperr.ErrNetwork)
	s.Equal("Error al agregar al carrito", err.Error())
}

func (s *CartStoreTestSuite) TestRemoveItemEmptiesCart() {
	ctx := context.Background()
	s.api.EXPECT().GetCartSummary(gomock.Any()).Return(cartWith(10000, 1), nil)
	_, err := s.store.LoadSummary(ctx)
	s.Require().NoError(err)

	gomock.InOrder(
		s.api.EXPECT().RemoveFromCart(gomock.Any(), model.RemoveFromCartRequest{ProductID: "p1", VariantID: "v1"}).Return(nil),
		s.api.EXPECT().GetCartSummary(gomock.Any()).Return(model.EmptyCartSummary(), nil),
	)

	summary, err := s.store.RemoveItem(ctx, "p1", "v1")
	s.Require().NoError(err)
	s.Len(summary.Items, 0)
	s.True(summary.Total.IsZero())
}

func (s *CartStoreTestSuite) TestRemoveItemRequiresIDs() {
	_, err := s.store.RemoveItem(context.Background(), "", "v1")
	s.ErrorIs(err, apperr.ErrMissingProduct)

	_, err = s.store.RemoveItem(context.Background(), "p1", " ")
	s.ErrorIs(err, apperr.ErrMissingVariant)
}

func (s *CartStoreTestSuite) TestUpdateItemQuantityRejectsWithoutCall() {
	for _, q := range []int{0, -1} {
		_, err := s.store.UpdateItemQuantity(context.Background(), 7, q)
		s.ErrorIs(err, apperr.ErrInvalidQuantity)
	}
	_, err := s.store.UpdateItemQuantity(context.Background(), 0, 2)
	s.ErrorIs(err, apperr.ErrInvalidCartItem)
}

func (s *CartStoreTestSuite) TestUpdateItemQuantity() {
	gomock.InOrder(
		s.api.EXPECT().UpdateCartItem(gomock.Any(), int64(7), 2).Return(nil),
		s.api.EXPECT().GetCartSummary(gomock.Any()).Return(cartWith(10000, 2), nil),
	)

	summary, err := s.store.UpdateItemQuantity(context.Background(), 7, 2)
	s.Require().NoError(err)
	s.Equal(2, summary.TotalQuantity)
}

func (s *CartStoreTestSuite) TestFailedWriteKeepsCache() {
	ctx := context.Background()
	s.api.EXPECT().GetCartSummary(gomock.Any()).Return(cartWith(10000, 1), nil)
	_, err := s.store.LoadSummary(ctx)
	s.Require().NoError(err)

	s.api.EXPECT().UpdateCartItem(gomock.Any(), int64(7), 5).
		Return(apperr.FromResponse(apperr.OpUpdateCartItem, http.StatusConflict, "Stock agotado"))

	summary, err := s.store.UpdateItemQuantity(ctx, 7, 5)
	s.Require().Error(err)
	s.Equal("Stock agotado", err.Error())
	s.Equal(1, summary.TotalQuantity)
	s.Equal(1, s.store.Current().TotalQuantity)
}

func (s *CartStoreTestSuite) TestLoadSummaryIsIdempotent() {
	s.api.EXPECT().GetCartSummary(gomock.Any()).Return(cartWith(5000, 2), nil).Times(2)

	first, err := s.store.LoadSummary(context.Background())
	s.Require().NoError(err)
	second, err := s.store.LoadSummary(context.Background())
	s.Require().NoError(err)
	s.Equal(first, second)
	s.Equal(first, s.store.Current())
}

func (s *CartStoreTestSuite) TestLoadSummaryFailureResetsCache() {
	ctx := context.Background()
	s.api.EXPECT().GetCartSummary(gomock.Any()).Return(cartWith(10000, 1), nil)
	_, err := s.store.LoadSummary(ctx)
	s.Require().NoError(err)

	s.api.EXPECT().GetCartSummary(gomock.Any()).
		Return(model.CartSummary{}, apperr.Network(apperr.OpGetCartSummary, context.DeadlineExceeded))

	summary, err := s.store.LoadSummary(ctx)
	s.Require().ErrorIs(err, apperr.ErrNetwork)
	s.True(summary.IsEmpty())
	s.True(s.store.Current().IsEmpty())
}

func (s *CartStoreTestSuite) TestStaleLoadNeverOverwritesNewer() {
	ctx := context.Background()
	stale := cartWith(10000, 1)
	fresh := cartWith(10000, 3)

	started := make(chan struct{})
	release := make(chan struct{})
	s.api.EXPECT().GetCartSummary(gomock.Any()).DoAndReturn(func(context.Context) (model.CartSummary, error) {
		close(started)
		<-release
		return stale, nil
	})
	s.api.EXPECT().GetCartSummary(gomock.Any()).Return(fresh, nil)

	staleResult := make(chan model.CartSummary, 1)
	go func() {
		summary, _ := s.store.LoadSummary(ctx)
		staleResult <- summary
	}()
	<-started

	got, err := s.store.LoadSummary(ctx)
	s.Require().NoError(err)
	s.Equal(3, got.TotalQuantity)

	close(release)
	late := <-staleResult

	s.Equal(3, late.TotalQuantity)
	s.Equal(3, s.store.Current().TotalQuantity)
	s.Equal([]event.EventType{event.CartSyncedEventName}, s.published.types())
}

func (s *CartStoreTestSuite) TestSupersededLoadFailureIsNotReported() {
	ctx := context.Background()
	started := make(chan struct{})
	release := make(chan struct{})
	s.api.EXPECT().GetCartSummary(gomock.Any()).DoAndReturn(func(context.Context) (model.CartSummary, error) {
		close(started)
		<-release
		return model.CartSummary{}, apperr.FromResponse(apperr.OpGetCartSummary, http.StatusBadGateway, "")
	})
	s.api.EXPECT().GetCartSummary(gomock.Any()).Return(cartWith(10000, 2), nil)

	type result struct {
		summary model.CartSummary
		err     error
	}
	late := make(chan result, 1)
	go func() {
		summary, err := s.store.LoadSummary(ctx)
		late <- result{summary, err}
	}()
	<-started

	_, err := s.store.LoadSummary(ctx)
	s.Require().NoError(err)
	close(release)

	got := <-late
	s.NoError(got.err)
	s.Equal(2, got.summary.TotalQuantity)
	s.Equal(2, s.store.Current().TotalQuantity)
}

func (s *CartStoreTestSuite) TestClearDiscardsInFlightLoad() {
	started := make(chan struct{})
	release := make(chan struct{})
	s.api.EXPECT().GetCartSummary(gomock.Any()).DoAndReturn(func(context.Context) (model.CartSummary, error) {
		close(started)
		<-release
		return cartWith(10000, 2), nil
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.store.LoadSummary(context.Background())
	}()
	<-started
	s.store.Clear()
	close(release)
	<-done

	s.True(s.store.Current().IsEmpty())
	s.Equal([]event.EventType{event.CartClearedEventName}, s.published.types())
}

func (s *CartStoreTestSuite) TestCurrentReturnsCopy() {
	s.api.EXPECT().GetCartSummary(gomock.Any()).Return(cartWith(10000, 1), nil)
	_, err := s.store.LoadSummary(context.Background())
	s.Require().NoError(err)

	cur := s.store.Current()
	cur.Items[0].Quantity = 99
	s.Equal(1, s.store.Current().Items[0].Quantity)
}

func (s *CartStoreTestSuite) TestIdentityChange() {
	ctx := context.Background()
	s.api.EXPECT().GetCartSummary(gomock.Any()).Return(cartWith(10000, 1), nil)
	s.store.OnIdentityChange(ctx, &model.User{ID: 42})
	s.Equal(1, s.store.Current().TotalQuantity)

	synced, ok := s.published.last().(*event.CartSyncedEvent)
	s.Require().True(ok)
	s.Equal(int64(42), synced.UserID)
	s.Equal("sess-1", synced.Key())

	s.store.OnIdentityChange(ctx, nil)
	s.True(s.store.Current().IsEmpty())
	_, ok = s.published.last().(*event.CartClearedEvent)
	s.True(ok)
}

func TestCartStoreConcurrentLoads(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_backend.NewMockICartAPI(ctrl)
	api.EXPECT().GetCartSummary(gomock.Any()).Return(cartWith(10000, 2), nil).Times(20)

	store := NewCartStore(api, nil, nil, "sess-2")
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.LoadSummary(context.Background())
			require.NoError(t, err)
		}()
	}
	wg.Wait()
	require.Equal(t, 2, store.Current().TotalQuantity)
}
