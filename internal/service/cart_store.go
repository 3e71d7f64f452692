package service

import (
	"context"
	"strings"
	"sync"

	"github.com/RoyceAzure/lab/santoral/internal/apperr"
	"github.com/RoyceAzure/lab/santoral/internal/infra/backend"
	"github.com/RoyceAzure/lab/santoral/internal/infra/producer"
	"github.com/RoyceAzure/lab/santoral/internal/model"
	"github.com/RoyceAzure/lab/santoral/internal/model/event"
	"github.com/rs/zerolog"
)

type ICartStore interface {
	// LoadSummary 從後端重新讀取購物車
	//
	// 失敗時快取會被重設為空購物車，錯誤照樣回傳給呼叫者，
	// 不會把舊資料當成最新資料顯示。
	LoadSummary(ctx context.Context) (model.CartSummary, error)
	// AddItem 寫入後端後重新讀取購物車。
	//
	// 可能的錯誤:
	//   - INVALID_QUANTITY: quantity < 1, 不會呼叫後端
	//   - ADD_ITEM_REJECTED: 後端拒絕 (例如庫存不足), 訊息原樣保留
	AddItem(ctx context.Context, cartID, productID, variantID string, quantity int) (model.CartSummary, error)
	UpdateItemQuantity(ctx context.Context, cartItemID int64, newQuantity int) (model.CartSummary, error)
	RemoveItem(ctx context.Context, productID, variantID string) (model.CartSummary, error)
	// Clear empties the cache without a network call.
	Clear()
	Current() model.CartSummary
}

// CartStore caches the server's cart summary for one storefront session.
//
// Every load takes a sequence number when dispatched. A result is applied
// only when its number is newer than the last applied one, so a slow,
// older response never overwrites a fresher one.
type CartStore struct {
	api       backend.ICartAPI
	publisher producer.EventPublisher
	logger    *zerolog.Logger
	sessionID string

	mu         sync.Mutex
	summary    model.CartSummary
	userID     int64
	dispatched uint64
	applied    uint64
}

var (
	_ ICartStore         = (*CartStore)(nil)
	_ IdentitySubscriber = (*CartStore)(nil)
	_ CartClearer        = (*CartStore)(nil)
)

func NewCartStore(api backend.ICartAPI, publisher producer.EventPublisher, logger *zerolog.Logger, sessionID string) *CartStore {
	if publisher == nil {
		publisher = producer.NoopEventPublisher{}
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &CartStore{
		api:       api,
		publisher: publisher,
		logger:    logger,
		sessionID: sessionID,
		summary:   model.EmptyCartSummary(),
	}
}

func (s *CartStore) nextSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatched++
	return s.dispatched
}

func (s *CartStore) LoadSummary(ctx context.Context) (model.CartSummary, error) {
	seq := s.nextSeq()
	summary, err := s.api.GetCartSummary(ctx)

	s.mu.Lock()
	if seq <= s.applied {
		// a newer load or a Clear already landed, its outcome wins
		current := s.summary.Clone()
		s.mu.Unlock()
		evt := s.logger.Debug().
			Str("session_id", s.sessionID).
			Uint64("seq", seq)
		if err != nil {
			evt = evt.AnErr("superseded_err", err)
		}
		evt.Msg("discard stale cart summary")
		return current, nil
	}
	s.applied = seq

	if err != nil {
		s.summary = model.EmptyCartSummary()
		s.mu.Unlock()
		s.logger.Error().Err(err).Str("session_id", s.sessionID).Msg("failed to load cart summary")
		return model.EmptyCartSummary(), err
	}

	if summary.Items == nil {
		summary.Items = []model.CartItem{}
	}
	s.summary = summary.Clone()
	userID := s.userID
	s.mu.Unlock()

	s.publish(ctx, event.NewCartSyncedEvent(s.sessionID, userID, summary.TotalQuantity, summary.Total))
	return summary, nil
}

func (s *CartStore) AddItem(ctx context.Context, cartID, productID, variantID string, quantity int) (model.CartSummary, error) {
	if quantity < 1 {
		return s.Current(), apperr.ErrInvalidQuantity
	}
	if strings.TrimSpace(cartID) == "" {
		return s.Current(), apperr.Validation(apperr.OpAddToCart, apperr.CodeValidation, "cartId es requerido")
	}
	if strings.TrimSpace(productID) == "" {
		return s.Current(), apperr.Validation(apperr.OpAddToCart, apperr.CodeMissingProduct, "productId es requerido")
	}
	if strings.TrimSpace(variantID) == "" {
		return s.Current(), apperr.Validation(apperr.OpAddToCart, apperr.CodeMissingVariant, "variantId es requerido")
	}

	_, err := s.api.AddToCart(ctx, model.AddToCartRequest{
		CartID:    cartID,
		ProductID: productID,
		VariantID: variantID,
		Quantity:  quantity,
	})
	if err != nil {
		return s.Current(), addItemError(err)
	}
	return s.LoadSummary(ctx)
}

// addItemError marks backend rejections of an add as ADD_ITEM_REJECTED.
// Transport, auth and server failures keep their own code.
func addItemError(err error) error {
	de, ok := apperr.As(err)
	if !ok {
		return err
	}
	switch de.Kind {
	case apperr.KindValidation, apperr.KindBusinessRule:
		return de.WithCode(apperr.CodeAddItemRejected)
	default:
		return err
	}
}

func (s *CartStore) UpdateItemQuantity(ctx context.Context, cartItemID int64, newQuantity int) (model.CartSummary, error) {
	if cartItemID <= 0 {
		return s.Current(), apperr.ErrInvalidCartItem
	}
	if newQuantity < 1 {
		return s.Current(), apperr.ErrInvalidQuantity
	}
	if err := s.api.UpdateCartItem(ctx, cartItemID, newQuantity); err != nil {
		return s.Current(), err
	}
	return s.LoadSummary(ctx)
}

func (s *CartStore) RemoveItem(ctx context.Context, productID, variantID string) (model.CartSummary, error) {
	if strings.TrimSpace(productID) == "" {
		return s.Current(), apperr.ErrMissingProduct
	}
	if strings.TrimSpace(variantID) == "" {
		return s.Current(), apperr.ErrMissingVariant
	}
	if err := s.api.RemoveFromCart(ctx, model.RemoveFromCartRequest{ProductID: productID, VariantID: variantID}); err != nil {
		return s.Current(), err
	}
	return s.LoadSummary(ctx)
}

func (s *CartStore) Clear() {
	s.mu.Lock()
	s.dispatched++
	s.applied = s.dispatched
	s.summary = model.EmptyCartSummary()
	userID := s.userID
	s.mu.Unlock()

	s.publish(context.Background(), event.NewCartClearedEvent(s.sessionID, userID))
}

func (s *CartStore) Current() model.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary.Clone()
}

// OnIdentityChange reloads the cart for a new identity and clears it on logout.
func (s *CartStore) OnIdentityChange(ctx context.Context, user *model.User) {
	s.mu.Lock()
	if user == nil {
		s.userID = 0
	} else {
		s.userID = user.ID
	}
	s.mu.Unlock()

	if user == nil {
		s.Clear()
		return
	}
	if _, err := s.LoadSummary(ctx); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", user.ID).Msg("cart reload after login failed")
	}
}

func (s *CartStore) publish(ctx context.Context, evt event.Event) {
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn().Err(err).Str("event_type", string(evt.Type())).Msg("failed to publish cart event")
	}
}
