package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/RoyceAzure/lab/santoral/internal/apperr"
	"github.com/RoyceAzure/lab/santoral/internal/model"
)

type ICartAPI interface {
	// AddToCart returns the backend acknowledgement message.
	AddToCart(ctx context.Context, req model.AddToCartRequest) (string, error)
	GetCartSummary(ctx context.Context) (model.CartSummary, error)
	// RemoveFromCart sends productId and variantId in a DELETE body.
	RemoveFromCart(ctx context.Context, req model.RemoveFromCartRequest) error
	UpdateCartItem(ctx context.Context, cartItemID int64, quantity int) error
}

var _ ICartAPI = (*Client)(nil)

func (c *Client) AddToCart(ctx context.Context, req model.AddToCartRequest) (string, error) {
	var res model.MessageResponse
	if err := c.do(ctx, apperr.OpAddToCart, http.MethodPost, "/cart/add", nil, req, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

func (c *Client) GetCartSummary(ctx context.Context) (model.CartSummary, error) {
	var summary model.CartSummary
	if err := c.do(ctx, apperr.OpGetCartSummary, http.MethodGet, "/cart/summary", nil, nil, &summary); err != nil {
		return model.CartSummary{}, err
	}
	if summary.Items == nil {
		summary.Items = []model.CartItem{}
	}
	return summary, nil
}

func (c *Client) RemoveFromCart(ctx context.Context, req model.RemoveFromCartRequest) error {
	return c.do(ctx, apperr.OpRemoveFromCart, http.MethodDelete, "/cart/remove", nil, req, nil)
}

func (c *Client) UpdateCartItem(ctx context.Context, cartItemID int64, quantity int) error {
	path := fmt.Sprintf("/cart/update/%d", cartItemID)
	return c.do(ctx, apperr.OpUpdateCartItem, http.MethodPut, path, nil, model.UpdateCartItemRequest{Quantity: quantity}, nil)
}
