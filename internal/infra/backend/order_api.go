package backend

import (
	"context"
	"net/http"

	"github.com/RoyceAzure/lab/santoral/internal/apperr"
	"github.com/RoyceAzure/lab/santoral/internal/model"
)

type IOrderAPI interface {
	GetAddresses(ctx context.Context) ([]model.Address, error)
	RegisterAddress(ctx context.Context, address model.Address) (*model.Address, error)
	// Checkout places the order for the session's cart. The backend empties
	// the cart as a side effect.
	Checkout(ctx context.Context, addressID int64) (*model.CheckoutResponse, error)
	GetMyOrders(ctx context.Context) ([]model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.AdminOrder, error)
	UpdateOrderStatus(ctx context.Context, req model.UpdateOrderStatusRequest) (string, error)
}

var _ IOrderAPI = (*Client)(nil)

func (c *Client) GetAddresses(ctx context.Context) ([]model.Address, error) {
	addresses := []model.Address{}
	if err := c.do(ctx, apperr.OpGetAddresses, http.MethodGet, "/orders/addresses", nil, nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (c *Client) RegisterAddress(ctx context.Context, address model.Address) (*model.Address, error) {
	var created model.Address
	if err := c.do(ctx, apperr.OpRegisterAddress, http.MethodPost, "/orders/addresses", nil, address, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) Checkout(ctx context.Context, addressID int64) (*model.CheckoutResponse, error) {
	var res model.CheckoutResponse
	if err := c.do(ctx, apperr.OpCheckout, http.MethodPost, "/orders/checkout", nil, model.CheckoutRequest{AddressID: addressID}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetMyOrders(ctx context.Context) ([]model.Order, error) {
	var res model.OrdersResponse
	if err := c.do(ctx, apperr.OpMyOrders, http.MethodGet, "/orders/my-orders", nil, nil, &res); err != nil {
		return nil, err
	}
	if res.Orders == nil {
		res.Orders = []model.Order{}
	}
	return res.Orders, nil
}

func (c *Client) GetAllOrders(ctx context.Context) ([]model.AdminOrder, error) {
	var res model.AdminOrdersResponse
	if err := c.do(ctx, apperr.OpAllOrders, http.MethodGet, "/orders/all-orders", nil, nil, &res); err != nil {
		return nil, err
	}
	if res.Orders == nil {
		res.Orders = []model.AdminOrder{}
	}
	return res.Orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, req model.UpdateOrderStatusRequest) (string, error) {
	var res model.MessageResponse
	if err := c.do(ctx, apperr.OpUpdateOrderStatus, http.MethodPut, "/orders/orders/status", nil, req, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}
