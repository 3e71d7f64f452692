package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	CartSyncedEventName        EventType = "CartSynced"
	CartClearedEventName       EventType = "CartCleared"
	CheckoutSucceededEventName EventType = "CheckoutSucceeded"
	CheckoutFailedEventName    EventType = "CheckoutFailed"
	SessionLoggedInEventName   EventType = "SessionLoggedIn"
	SessionLoggedOutEventName  EventType = "SessionLoggedOut"
)

type Event interface {
	Type() EventType
	GetID() string
	// Key groups events of the same storefront session onto one partition.
	Key() string
}

// BaseEvent carries the envelope shared by every storefront event.
// AggregateID is the storefront session id.
type BaseEvent struct {
	EventID     string    `json:"event_id"`
	AggregateID string    `json:"aggregate_id"`
	CreatedAt   time.Time `json:"created_at"`
	EventType   EventType `json:"event_type"`
}

func newBase(sessionID string, t EventType) BaseEvent {
	return BaseEvent{
		EventID:     uuid.New().String(),
		AggregateID: sessionID,
		CreatedAt:   time.Now().UTC(),
		EventType:   t,
	}
}

func (e *BaseEvent) GetID() string {
	return e.EventID
}

func (e *BaseEvent) Type() EventType {
	return e.EventType
}

func (e *BaseEvent) Key() string {
	return e.AggregateID
}

type CartSyncedEvent struct {
	BaseEvent
	UserID        int64           `json:"user_id"`
	TotalQuantity int             `json:"total_quantity"`
	Total         decimal.Decimal `json:"total"`
}

func NewCartSyncedEvent(sessionID string, userID int64, totalQuantity int, total decimal.Decimal) *CartSyncedEvent {
	return &CartSyncedEvent{
		BaseEvent:     newBase(sessionID, CartSyncedEventName),
		UserID:        userID,
		TotalQuantity: totalQuantity,
		Total:         total,
	}
}

type CartClearedEvent struct {
	BaseEvent
	UserID int64 `json:"user_id"`
}

func NewCartClearedEvent(sessionID string, userID int64) *CartClearedEvent {
	return &CartClearedEvent{
		BaseEvent: newBase(sessionID, CartClearedEventName),
		UserID:    userID,
	}
}

type CheckoutSucceededEvent struct {
	BaseEvent
	UserID    int64           `json:"user_id"`
	OrderID   int64           `json:"order_id"`
	AddressID int64           `json:"address_id"`
	Total     decimal.Decimal `json:"total"`
}

func NewCheckoutSucceededEvent(sessionID string, userID, orderID, addressID int64, total decimal.Decimal) *CheckoutSucceededEvent {
	return &CheckoutSucceededEvent{
		BaseEvent: newBase(sessionID, CheckoutSucceededEventName),
		UserID:    userID,
		OrderID:   orderID,
		AddressID: addressID,
		Total:     total,
	}
}

type CheckoutFailedEvent struct {
	BaseEvent
	UserID    int64  `json:"user_id"`
	AddressID int64  `json:"address_id"`
	Reason    string `json:"reason"`
}

func NewCheckoutFailedEvent(sessionID string, userID, addressID int64, reason string) *CheckoutFailedEvent {
	return &CheckoutFailedEvent{
		BaseEvent: newBase(sessionID, CheckoutFailedEventName),
		UserID:    userID,
		AddressID: addressID,
		Reason:    reason,
	}
}

type SessionEvent struct {
	BaseEvent
	UserID int64  `json:"user_id"`
	Email  string `json:"email,omitempty"`
}

func NewSessionLoggedInEvent(sessionID string, userID int64, email string) *SessionEvent {
	return &SessionEvent{
		BaseEvent: newBase(sessionID, SessionLoggedInEventName),
		UserID:    userID,
		Email:     email,
	}
}

func NewSessionLoggedOutEvent(sessionID string, userID int64) *SessionEvent {
	return &SessionEvent{
		BaseEvent: newBase(sessionID, SessionLoggedOutEventName),
		UserID:    userID,
	}
}
