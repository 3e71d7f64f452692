package dto

import (
	"github.com/RoyceAzure/lab/santoral/internal/model"
)

type AddCartItemDTO struct {
	CartID    string `json:"cartId"`
	ProductID string `json:"productId"`
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemDTO struct {
	Quantity int `json:"quantity"`
}

type RemoveCartItemDTO struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId"`
}

type SelectAddressDTO struct {
	AddressID int64 `json:"addressId"`
}

// CheckoutStateDTO 結帳狀態, message 只在 failed / address_required 時出現
type CheckoutStateDTO struct {
	State   string         `json:"state"`
	Message string         `json:"message,omitempty"`
	Code    string         `json:"code,omitempty"`
	Address *model.Address `json:"address,omitempty"`
}

type ConfirmCheckoutResponse struct {
	Order model.Order `json:"order"`
	State string      `json:"state"`
}

type UpdateOrderStatusDTO struct {
	// Status is informational; the stored order's status decides whether
	// the change is allowed.
	Status    model.OrderStatus `json:"status"`
	NewStatus model.OrderStatus `json:"newStatus"`
	UserID    int64             `json:"userId"`
}

type UserResponse struct {
	User *model.User `json:"user"`
}

type EmailDTO struct {
	Email string `json:"email"`
}

type TokenDTO struct {
	Token string `json:"token"`
}

type CreateVariantsDTO struct {
	Variants []model.Variant `json:"variants"`
}

type ContactStatusDTO struct {
	Status model.ContactRequestStatus `json:"status"`
}
