package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/santoral/internal/api/dto"
	"github.com/RoyceAzure/lab/santoral/internal/api/response"
	"github.com/RoyceAzure/lab/santoral/internal/model"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	base
}

func NewCatalogHandler(resolve StorefrontResolver) *CatalogHandler {
	return &CatalogHandler{base: newBase(resolve)}
}

func (h *CatalogHandler) Products(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	page, err := sf.Catalog.GetProducts(r.Context(), queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, page, "")
}

func (h *CatalogHandler) ProductByName(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	product, err := sf.Catalog.GetProductByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, product, "")
}

func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	var req model.CreateProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	product, err := sf.Catalog.CreateProduct(r.Context(), req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, product, "Producto creado")
}

func (h *CatalogHandler) Variants(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	variants, err := sf.Catalog.GetVariantsByProduct(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, variants, "")
}

func (h *CatalogHandler) CreateVariants(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	var req dto.CreateVariantsDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	variants, err := sf.Catalog.CreateVariants(r.Context(), chi.URLParam(r, "productId"), req.Variants)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, variants, "Variantes creadas")
}

func (h *CatalogHandler) DeleteVariant(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	msg, err := sf.Catalog.DeleteVariant(r.Context(), chi.URLParam(r, "variantId"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, msg)
}

func (h *CatalogHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	page, err := sf.Catalog.GetReviews(r.Context(), chi.URLParam(r, "productId"), queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, page, "")
}

func (h *CatalogHandler) AverageRating(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	rating, err := sf.Catalog.GetAverageRating(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, rating, "")
}

func (h *CatalogHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	var req model.CreateReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	review, err := sf.Catalog.CreateReview(r.Context(), req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, review, "Reseña creada")
}

func (h *CatalogHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	msg, err := sf.Catalog.DeleteReview(r.Context(), chi.URLParam(r, "reviewId"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, msg)
}
