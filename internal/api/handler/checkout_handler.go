package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/santoral/internal/api/dto"
	"github.com/RoyceAzure/lab/santoral/internal/api/response"
	"github.com/RoyceAzure/lab/santoral/internal/apperr"
	"github.com/RoyceAzure/lab/santoral/internal/model"
	"github.com/RoyceAzure/lab/santoral/internal/service"
)

type CheckoutHandler struct {
	base
}

func NewCheckoutHandler(resolve StorefrontResolver) *CheckoutHandler {
	return &CheckoutHandler{base: newBase(resolve)}
}

// Page loads everything the checkout page shows in one call.
func (h *CheckoutHandler) Page(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	page, err := sf.LoadCheckoutPage(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, page, "")
}

func (h *CheckoutHandler) Addresses(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	addresses, err := sf.Orders.Addresses(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, addresses, "")
}

// RegisterAddress creates the address and selects it for this checkout.
func (h *CheckoutHandler) RegisterAddress(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	var req model.Address
	if !decodeJSON(w, r, &req) {
		return
	}
	if _, err := sf.Orders.RegisterAddress(r.Context(), req); err != nil {
		response.Error(w, err)
		return
	}
	selected, err := sf.Orders.SelectLatestAddress(r.Context(), sf.Addresses)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, selected, "Dirección registrada")
}

func (h *CheckoutHandler) SelectAddress(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	var req dto.SelectAddressDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	selected, err := sf.Orders.SelectAddress(r.Context(), sf.Addresses, req.AddressID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, selected, "")
}

func (h *CheckoutHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	order, err := sf.Checkout.Confirm(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, dto.ConfirmCheckoutResponse{
		Order: *order,
		State: sf.Checkout.State().String(),
	}, "Orden creada con éxito")
}

func (h *CheckoutHandler) State(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	response.Success(w, checkoutState(sf), "")
}

// Reset returns a finished or failed checkout to idle.
func (h *CheckoutHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	sf.Checkout.Reset()
	response.Success(w, checkoutState(sf), "")
}

func checkoutState(sf *service.Storefront) dto.CheckoutStateDTO {
	res := dto.CheckoutStateDTO{State: sf.Checkout.State().String()}
	if err := sf.Checkout.LastError(); err != nil {
		res.Message = apperr.Message(err)
		if de, ok := apperr.As(err); ok {
			res.Code = string(de.Code)
		}
	}
	if a, ok := sf.Addresses.Current(); ok {
		res.Address = &a
	}
	return res
}
