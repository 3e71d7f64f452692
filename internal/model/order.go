package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPendiente OrderStatus = "pendiente"
	OrderStatusEnviado   OrderStatus = "enviado"
	OrderStatusEntregado OrderStatus = "entregado"
	OrderStatusCancelado OrderStatus = "cancelado"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPendiente, OrderStatusEnviado, OrderStatusEntregado, OrderStatusCancelado:
		return true
	default:
		return false
	}
}

// AdminSettable reports whether an admin may move an order into s.
// Cancellation is never set from the back-office.
func (s OrderStatus) AdminSettable() bool {
	switch s {
	case OrderStatusPendiente, OrderStatusEnviado, OrderStatusEntregado:
		return true
	default:
		return false
	}
}

// AdminSettableStatuses lists the statuses offered by the back-office.
func AdminSettableStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusPendiente, OrderStatusEnviado, OrderStatusEntregado}
}

type OrderItem struct {
	ProductID string          `json:"productId,omitempty"`
	VariantID string          `json:"variantId,omitempty"`
	Name      string          `json:"name,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Order is read-only on the client. It is created by the backend at checkout.
type Order struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	AddressID int64           `json:"addressId,omitempty"`
	Total     decimal.Decimal `json:"total"`
	Items     []OrderItem     `json:"items,omitempty"`
	Status    OrderStatus     `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// AdminOrder is the row shape returned by the all-orders listing.
type AdminOrder struct {
	OrderID        int64           `json:"order_id"`
	UserID         int64           `json:"user_id"`
	UserName       string          `json:"user_name"`
	UserEmail      string          `json:"user_email"`
	FullAddress    string          `json:"full_address"`
	Products       json.RawMessage `json:"products,omitempty"`
	Status         OrderStatus     `json:"status"`
	OrderCreatedAt time.Time       `json:"order_created_at"`
}

type CheckoutRequest struct {
	AddressID int64 `json:"addressId"`
}

type CheckoutResponse struct {
	Message string `json:"message"`
	Order   Order  `json:"order"`
}

type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

type AdminOrdersResponse struct {
	Orders []AdminOrder `json:"orders"`
}

type UpdateOrderStatusRequest struct {
	OrderID   int64       `json:"orderId"`
	NewStatus OrderStatus `json:"newStatus"`
	UserID    int64       `json:"userId"`
}
