package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/santoral/internal/api/dto"
	"github.com/RoyceAzure/lab/santoral/internal/api/response"
	"github.com/RoyceAzure/lab/santoral/internal/model"
)

type OrderHandler struct {
	base
}

func NewOrderHandler(resolve StorefrontResolver) *OrderHandler {
	return &OrderHandler{base: newBase(resolve)}
}

func (h *OrderHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	orders, err := sf.Orders.MyOrders(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, orders, "")
}

func (h *OrderHandler) AllOrders(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	orders, err := sf.Orders.AllOrders(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, orders, "")
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	orderID, ok := int64Param(w, r, "orderId")
	if !ok {
		return
	}
	var req dto.UpdateOrderStatusDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	order := model.AdminOrder{OrderID: orderID, UserID: req.UserID, Status: req.Status}
	msg, err := sf.Orders.UpdateStatus(r.Context(), order, req.NewStatus)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, msg)
}

// Statuses lists what the back-office may set.
func (h *OrderHandler) Statuses(w http.ResponseWriter, r *http.Request) {
	response.Success(w, model.AdminSettableStatuses(), "")
}
