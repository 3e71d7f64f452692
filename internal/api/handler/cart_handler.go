package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/santoral/internal/api/dto"
	"github.com/RoyceAzure/lab/santoral/internal/api/response"
)

type CartHandler struct {
	base
}

func NewCartHandler(resolve StorefrontResolver) *CartHandler {
	return &CartHandler{base: newBase(resolve)}
}

// Summary re-reads the cart from the backend. ?cached=true returns the
// session's cached copy without a backend call.
func (h *CartHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	if r.URL.Query().Get("cached") == "true" {
		response.Success(w, sf.Cart.Current(), "")
		return
	}
	summary, err := sf.Cart.LoadSummary(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, summary, "")
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	var req dto.AddCartItemDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	summary, err := sf.Cart.AddItem(r.Context(), req.CartID, req.ProductID, req.VariantID, req.Quantity)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, summary, "Producto agregado al carrito")
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	cartItemID, ok := int64Param(w, r, "cartItemId")
	if !ok {
		return
	}
	var req dto.UpdateCartItemDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	summary, err := sf.Cart.UpdateItemQuantity(r.Context(), cartItemID, req.Quantity)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, summary, "")
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	var req dto.RemoveCartItemDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	summary, err := sf.Cart.RemoveItem(r.Context(), req.ProductID, req.VariantID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, summary, "Producto eliminado del carrito")
}

// Clear only drops the session's cached copy.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	sf.Cart.Clear()
	response.Success(w, sf.Cart.Current(), "")
}
