package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/RoyceAzure/lab/santoral/internal/apperr"
	mock_backend "github.com/RoyceAzure/lab/santoral/internal/infra/backend/mock"
	"github.com/RoyceAzure/lab/santoral/internal/model"
	"github.com/RoyceAzure/lab/santoral/internal/model/event"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type countingClearer struct {
	calls int
}

func (c *countingClearer) Clear() {
	c.calls++
}

type fixedIdentity struct {
	user *model.User
}

func (f fixedIdentity) Current() *model.User {
	return f.user
}

type CheckoutTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	api       *mock_backend.MockIOrderAPI
	cart      *countingClearer
	addresses *AddressSelection
	published *eventRecorder
	checkout  *Checkout
}

func TestCheckoutTestSuite(t *testing.T) {
	suite.Run(t, new(CheckoutTestSuite))
}

func (s *CheckoutTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.api = mock_backend.NewMockIOrderAPI(s.ctrl)
	s.cart = &countingClearer{}
	s.addresses = NewAddressSelection()
	s.published = &eventRecorder{}
	s.checkout = NewCheckout(s.api, s.cart, s.addresses, fixedIdentity{user: &model.User{ID: 9}}, s.published, nil, "sess-1")
}

func (s *CheckoutTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CheckoutTestSuite) TestConfirmWithoutAddress() {
	order, err := s.checkout.Confirm(context.Background())
	s.Nil(order)
	s.ErrorIs(err, apperr.ErrMissingAddress)
	s.Equal(CheckoutAddressRequired, s.checkout.State())
	s.Equal(0, s.cart.calls)
	s.Empty(s.published.types())
}

func (s *CheckoutTestSuite) TestConfirmSuccess() {
	s.addresses.Select(testAddress(5))
	s.api.EXPECT().Checkout(gomock.Any(), int64(5)).Return(&model.CheckoutResponse{
		Message: "Orden creada",
		Order: model.Order{
			ID:        100,
			UserID:    9,
			AddressID: 5,
			Total:     decimal.NewFromInt(30000),
			Status:    model.OrderStatusPendiente,
		},
	}, nil)

	order, err := s.checkout.Confirm(context.Background())
	s.Require().NoError(err)
	s.Equal(int64(100), order.ID)
	s.Equal(CheckoutSuccess, s.checkout.State())
	s.Equal(1, s.cart.calls)
	s.Nil(s.checkout.LastError())

	_, selected := s.addresses.Current()
	s.False(selected)

	succeeded, ok := s.published.last().(*event.CheckoutSucceededEvent)
	s.Require().True(ok)
	s.Equal(int64(9), succeeded.UserID)
	s.Equal(int64(100), succeeded.OrderID)
	s.Equal(int64(5), succeeded.AddressID)
	s.True(succeeded.Total.Equal(decimal.NewFromInt(30000)))
}

func (s *CheckoutTestSuite) TestConfirmFailureKeepsCartAndAddress() {
	s.addresses.Select(testAddress(5))
	s.api.EXPECT().Checkout(gomock.Any(), int64(5)).
		Return(nil, apperr.FromResponse(apperr.OpCheckout, http.StatusBadRequest, "Stock agotado"))

	order, err := s.checkout.Confirm(context.Background())
	s.Nil(order)
	s.Require().Error(err)
	s.Equal("Stock agotado", err.Error())
	s.Equal(CheckoutFailed, s.checkout.State())
	s.Equal(err, s.checkout.LastError())
	s.Equal(0, s.cart.calls)

	selected, ok := s.addresses.Current()
	s.True(ok)
	s.Equal(int64(5), selected.ID)

	failed, ok := s.published.last().(*event.CheckoutFailedEvent)
	s.Require().True(ok)
	s.Equal("Stock agotado", failed.Reason)
}

func (s *CheckoutTestSuite) TestConfirmRejectsConcurrentSubmit() {
	s.addresses.Select(testAddress(5))

	started := make(chan struct{})
	release := make(chan struct{})
	s.api.EXPECT().Checkout(gomock.Any(), int64(5)).DoAndReturn(func(context.Context, int64) (*model.CheckoutResponse, error) {
		close(started)
		<-release
		return &model.CheckoutResponse{Order: model.Order{ID: 1}}, nil
	})

	done := make(chan error, 1)
	go func() {
		_, err := s.checkout.Confirm(context.Background())
		done <- err
	}()
	<-started

	s.Equal(CheckoutSubmitting, s.checkout.State())
	_, err := s.checkout.Confirm(context.Background())
	s.ErrorIs(err, apperr.ErrCheckoutInProgress)

	// Reset is ignored while an order is in flight
	s.checkout.Reset()
	s.Equal(CheckoutSubmitting, s.checkout.State())

	close(release)
	s.NoError(<-done)
	s.Equal(1, s.cart.calls)
}

func (s *CheckoutTestSuite) TestRetryAfterFailure() {
	s.addresses.Select(testAddress(5))
	gomock.InOrder(
		s.api.EXPECT().Checkout(gomock.Any(), int64(5)).
			Return(nil, apperr.Network(apperr.OpCheckout, context.DeadlineExceeded)),
		s.api.EXPECT().Checkout(gomock.Any(), int64(5)).
			Return(&model.CheckoutResponse{Order: model.Order{ID: 2}}, nil),
	)

	_, err := s.checkout.Confirm(context.Background())
	s.Require().Error(err)
	s.Equal(CheckoutFailed, s.checkout.State())

	order, err := s.checkout.Confirm(context.Background())
	s.Require().NoError(err)
	s.Equal(int64(2), order.ID)
	s.Equal(CheckoutSuccess, s.checkout.State())

	s.checkout.Reset()
	s.Equal(CheckoutIdle, s.checkout.State())
}

func (s *CheckoutTestSuite) TestStateNames() {
	s.Equal("idle", CheckoutIdle.String())
	s.Equal("address_required", CheckoutAddressRequired.String())
	s.Equal("submitting", CheckoutSubmitting.String())
	s.Equal("success", CheckoutSuccess.String())
	s.Equal("failed", CheckoutFailed.String())
	s.Equal("unknown", CheckoutState(42).String())
}

func TestCheckoutClearsRealCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	cartAPI := mock_backend.NewMockICartAPI(ctrl)
	orderAPI := mock_backend.NewMockIOrderAPI(ctrl)

	cartAPI.EXPECT().GetCartSummary(gomock.Any()).Return(cartWith(10000, 3), nil)
	orderAPI.EXPECT().Checkout(gomock.Any(), int64(1)).Return(&model.CheckoutResponse{Order: model.Order{ID: 3}}, nil)

	cart := NewCartStore(cartAPI, nil, nil, "sess-3")
	_, err := cart.LoadSummary(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	addresses := NewAddressSelection()
	addresses.Select(testAddress(1))

	checkout := NewCheckout(orderAPI, cart, addresses, nil, nil, nil, "sess-3")
	if _, err := checkout.Confirm(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !cart.Current().IsEmpty() {
		t.Fatalf("cart not cleared: %+v", cart.Current())
	}
}
