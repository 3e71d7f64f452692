package service

import (
	"context"
	"sync"

	"github.com/RoyceAzure/lab/santoral/internal/apperr"
	"github.com/RoyceAzure/lab/santoral/internal/infra/backend"
	"github.com/RoyceAzure/lab/santoral/internal/infra/producer"
	"github.com/RoyceAzure/lab/santoral/internal/model"
	"github.com/RoyceAzure/lab/santoral/internal/model/event"
	"github.com/rs/zerolog"
)

type CheckoutState int

const (
	CheckoutIdle CheckoutState = iota
	CheckoutAddressRequired
	CheckoutSubmitting
	CheckoutSuccess
	CheckoutFailed
)

func (s CheckoutState) String() string {
	switch s {
	case CheckoutIdle:
		return "idle"
	case CheckoutAddressRequired:
		return "address_required"
	case CheckoutSubmitting:
		return "submitting"
	case CheckoutSuccess:
		return "success"
	case CheckoutFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// CartClearer is the part of the cart store checkout needs.
type CartClearer interface {
	Clear()
}

// IdentityProvider exposes the signed-in user, or nil.
type IdentityProvider interface {
	Current() *model.User
}

type ICheckout interface {
	// Confirm places the order for the selected address.
	//
	// 可能的錯誤:
	//   - MISSING_ADDRESS: 沒有選擇地址, 不會呼叫後端
	//   - CHECKOUT_IN_PROGRESS: 同一個 session 已有結帳在進行中
	//   - 後端錯誤: 訊息原樣回傳, 購物車與地址保持不變
	Confirm(ctx context.Context) (*model.Order, error)
	State() CheckoutState
	// LastError returns the error of the last failed Confirm, or nil.
	LastError() error
	// Reset returns a finished checkout to Idle.
	Reset()
}

type Checkout struct {
	api       backend.IOrderAPI
	cart      CartClearer
	addresses *AddressSelection
	identity  IdentityProvider
	publisher producer.EventPublisher
	logger    *zerolog.Logger
	sessionID string

	mu      sync.Mutex
	state   CheckoutState
	lastErr error
}

var _ ICheckout = (*Checkout)(nil)

func NewCheckout(
	api backend.IOrderAPI,
	cart CartClearer,
	addresses *AddressSelection,
	identity IdentityProvider,
	publisher producer.EventPublisher,
	logger *zerolog.Logger,
	sessionID string,
) *Checkout {
	if publisher == nil {
		publisher = producer.NoopEventPublisher{}
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Checkout{
		api:       api,
		cart:      cart,
		addresses: addresses,
		identity:  identity,
		publisher: publisher,
		logger:    logger,
		sessionID: sessionID,
		state:     CheckoutIdle,
	}
}

func (c *Checkout) Confirm(ctx context.Context) (*model.Order, error) {
	c.mu.Lock()
	if c.state == CheckoutSubmitting {
		c.mu.Unlock()
		return nil, apperr.ErrCheckoutInProgress
	}
	address, ok := c.addresses.Current()
	if !ok {
		c.state = CheckoutAddressRequired
		c.lastErr = apperr.ErrMissingAddress
		c.mu.Unlock()
		return nil, apperr.ErrMissingAddress
	}
	c.state = CheckoutSubmitting
	c.lastErr = nil
	c.mu.Unlock()

	res, err := c.api.Checkout(ctx, address.ID)
	if err != nil {
		c.mu.Lock()
		c.state = CheckoutFailed
		c.lastErr = err
		c.mu.Unlock()

		c.logger.Error().
			Err(err).
			Str("session_id", c.sessionID).
			Int64("address_id", address.ID).
			Msg("checkout failed")
		c.publish(ctx, event.NewCheckoutFailedEvent(c.sessionID, c.userID(), address.ID, apperr.Message(err)))
		return nil, err
	}

	c.mu.Lock()
	c.state = CheckoutSuccess
	c.mu.Unlock()

	// the backend already emptied the cart when it created the order
	c.cart.Clear()
	c.addresses.Reset()

	order := res.Order
	c.logger.Info().
		Str("session_id", c.sessionID).
		Int64("order_id", order.ID).
		Msg("checkout succeeded")
	c.publish(ctx, event.NewCheckoutSucceededEvent(c.sessionID, c.userID(), order.ID, address.ID, order.Total))
	return &order, nil
}

func (c *Checkout) State() CheckoutState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Checkout) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Checkout) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == CheckoutSubmitting {
		return
	}
	c.state = CheckoutIdle
	c.lastErr = nil
}

func (c *Checkout) userID() int64 {
	if c.identity == nil {
		return 0
	}
	if u := c.identity.Current(); u != nil {
		return u.ID
	}
	return 0
}

func (c *Checkout) publish(ctx context.Context, evt event.Event) {
	if err := c.publisher.Publish(ctx, evt); err != nil {
		c.logger.Warn().Err(err).Str("event_type", string(evt.Type())).Msg("failed to publish checkout event")
	}
}
