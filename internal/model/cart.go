package model

import "github.com/shopspring/decimal"

// CartItem is a line of the cart as last returned by the backend.
type CartItem struct {
	CartItemID int64           `json:"cart_item_id"`
	ProductID  string          `json:"productId"`
	VariantID  string          `json:"variantId"`
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Style      string          `json:"style"`
	UnitPrice  decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	ImagePath  string          `json:"image"`
}

// CartSummary is replaced wholesale on every read, never patched.
// Total and the counters are server-computed.
type CartSummary struct {
	Items            []CartItem      `json:"items"`
	Total            decimal.Decimal `json:"total"`
	TotalUniqueItems int             `json:"totalUniqueItems"`
	TotalQuantity    int             `json:"totalQuantity"`
}

func EmptyCartSummary() CartSummary {
	return CartSummary{
		Items: []CartItem{},
		Total: decimal.Zero,
	}
}

func (s CartSummary) IsEmpty() bool {
	return len(s.Items) == 0
}

// Clone copies the item slice so callers cannot mutate the cache.
func (s CartSummary) Clone() CartSummary {
	items := make([]CartItem, len(s.Items))
	copy(items, s.Items)
	s.Items = items
	return s
}

type AddToCartRequest struct {
	CartID    string `json:"cartId"`
	ProductID string `json:"productId"`
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
}

type RemoveFromCartRequest struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
