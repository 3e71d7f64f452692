package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/santoral/internal/apperr"
	"github.com/RoyceAzure/lab/santoral/internal/model"
	mock_service "github.com/RoyceAzure/lab/santoral/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, idle time.Duration) (*Registry, *mock_service.MockStorefrontAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock_service.NewMockStorefrontAPI(ctrl)
	reg := NewRegistry(func() (StorefrontAPI, error) { return api, nil }, RegistryOptions{IdleTTL: idle})
	return reg, api
}

func TestRegistryGetOrCreate(t *testing.T) {
	reg, _ := newTestRegistry(t, time.Minute)

	sf, created, err := reg.GetOrCreate("")
	require.NoError(t, err)
	require.True(t, created)
	require.NotEmpty(t, sf.ID)
	require.Equal(t, 1, reg.Len())

	again, created, err := reg.GetOrCreate(sf.ID)
	require.NoError(t, err)
	require.False(t, created)
	require.Same(t, sf, again)

	// a forged or expired id never adopts the caller's value
	other, created, err := reg.GetOrCreate("not-a-session")
	require.NoError(t, err)
	require.True(t, created)
	require.NotEqual(t, "not-a-session", other.ID)
	require.Equal(t, 2, reg.Len())

	reg.Remove(other.ID)
	_, ok := reg.Get(other.ID)
	require.False(t, ok)
}

func TestRegistryFactoryError(t *testing.T) {
	reg := NewRegistry(func() (StorefrontAPI, error) { return nil, errors.New("bad base url") }, RegistryOptions{})
	_, _, err := reg.GetOrCreate("")
	require.Error(t, err)
	require.Equal(t, 0, reg.Len())
}

func TestRegistrySweep(t *testing.T) {
	reg, _ := newTestRegistry(t, time.Minute)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return now }

	idle, _, err := reg.GetOrCreate("")
	require.NoError(t, err)
	active, _, err := reg.GetOrCreate("")
	require.NoError(t, err)

	now = now.Add(45 * time.Second)
	_, ok := reg.Get(active.ID)
	require.True(t, ok)

	now = now.Add(30 * time.Second)
	require.Equal(t, 1, reg.Sweep())

	_, ok = reg.Get(idle.ID)
	require.False(t, ok)
	_, ok = reg.Get(active.ID)
	require.True(t, ok)
}

func TestRegistryStartStop(t *testing.T) {
	reg, _ := newTestRegistry(t, 20*time.Millisecond)
	_, _, err := reg.GetOrCreate("")
	require.NoError(t, err)

	reg.Start()
	reg.Start()
	require.Eventually(t, func() bool { return reg.Len() == 0 }, time.Second, 10*time.Millisecond)
	reg.Stop()
	reg.Stop()
}

func TestStorefrontWiring(t *testing.T) {
	reg, api := newTestRegistry(t, time.Minute)
	sf, _, err := reg.GetOrCreate("")
	require.NoError(t, err)
	ctx := context.Background()

	api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&model.User{ID: 3, Email: "c@d.co"}, nil)
	api.EXPECT().GetCartSummary(gomock.Any()).Return(cartWith(10000, 3), nil)
	_, err = sf.Session.Login(ctx, model.LoginRequest{Email: "c@d.co", Password: "x"})
	require.NoError(t, err)
	require.Equal(t, 3, sf.Cart.Current().TotalQuantity)

	api.EXPECT().GetCartSummary(gomock.Any()).Return(cartWith(10000, 3), nil)
	api.EXPECT().GetAddresses(gomock.Any()).Return([]model.Address{testAddress(1)}, nil).Times(2)

	_, err = sf.Orders.SelectAddress(ctx, sf.Addresses, 1)
	require.NoError(t, err)

	page, err := sf.LoadCheckoutPage(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, page.Cart.TotalQuantity)
	require.Len(t, page.Addresses, 1)
	require.NotNil(t, page.Selected)
	require.Equal(t, "idle", page.State)

	api.EXPECT().Checkout(gomock.Any(), int64(1)).Return(&model.CheckoutResponse{Order: model.Order{ID: 50}}, nil)
	order, err := sf.Checkout.Confirm(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(50), order.ID)
	require.True(t, sf.Cart.Current().IsEmpty())
	_, selected := sf.Addresses.Current()
	require.False(t, selected)
}

func TestLoadCheckoutPageError(t *testing.T) {
	reg, api := newTestRegistry(t, time.Minute)
	sf, _, err := reg.GetOrCreate("")
	require.NoError(t, err)

	api.EXPECT().GetCartSummary(gomock.Any()).Return(model.CartSummary{}, errors.New("boom")).AnyTimes()
	api.EXPECT().GetAddresses(gomock.Any()).Return(nil, nil).AnyTimes()

	_, err = sf.LoadCheckoutPage(context.Background())
	require.Error(t, err)
}

func TestLoadCheckoutPageAddressFailureKeepsCart(t *testing.T) {
	reg, api := newTestRegistry(t, time.Minute)
	sf, _, err := reg.GetOrCreate("")
	require.NoError(t, err)
	ctx := context.Background()

	api.EXPECT().GetCartSummary(gomock.Any()).Return(cartWith(10000, 1), nil)
	_, err = sf.Cart.LoadSummary(ctx)
	require.NoError(t, err)

	addressesDone := make(chan struct{})
	api.EXPECT().GetAddresses(gomock.Any()).DoAndReturn(func(context.Context) ([]model.Address, error) {
		defer close(addressesDone)
		return nil, apperr.FromResponse(apperr.OpGetAddresses, http.StatusInternalServerError, "")
	})
	api.EXPECT().GetCartSummary(gomock.Any()).DoAndReturn(func(ctx context.Context) (model.CartSummary, error) {
		<-addressesDone
		if err := ctx.Err(); err != nil {
			return model.CartSummary{}, err
		}
		return cartWith(10000, 1), nil
	})

	_, err = sf.LoadCheckoutPage(ctx)
	require.Error(t, err)
	require.Len(t, sf.Cart.Current().Items, 1)
}

func TestRegistryGetRacingSweep(t *testing.T) {
	reg, _ := newTestRegistry(t, time.Minute)
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 200; i++ {
		reg.now = func() time.Time { return base }
		sf, _, err := reg.GetOrCreate("")
		require.NoError(t, err)
		later := base.Add(2 * time.Minute)
		reg.now = func() time.Time { return later }

		var wg sync.WaitGroup
		var found bool
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, found = reg.Get(sf.ID)
		}()
		go func() {
			defer wg.Done()
			reg.Sweep()
		}()
		wg.Wait()

		// a storefront handed to a request is never evicted under it
		if found {
			_, ok := reg.Get(sf.ID)
			require.True(t, ok, "iteration %d", i)
		}
		reg.Remove(sf.ID)
	}
}
