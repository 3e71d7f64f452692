package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/santoral/internal/apperr"
	"github.com/RoyceAzure/lab/santoral/internal/constants"
	"github.com/RoyceAzure/lab/santoral/internal/infra/backend"
	"github.com/RoyceAzure/lab/santoral/internal/infra/cache"
	"github.com/RoyceAzure/lab/santoral/internal/model"
	"github.com/rs/zerolog"
)

// cache key patterns for public catalog reads
const (
	productsKeyPattern = "products:*"
	productKeyPattern  = "product:*"
	reviewsKeyPattern  = "reviews:*"
	ratingKeyPattern   = "rating:*"
)

type ICatalogService interface {
	GetProducts(ctx context.Context, page, limit int) (*model.ProductsPage, error)
	GetProductByName(ctx context.Context, name string) (*model.Product, error)
	CreateProduct(ctx context.Context, req model.CreateProductRequest) (*model.Product, error)
	CreateVariants(ctx context.Context, productID string, variants []model.Variant) ([]model.Variant, error)
	DeleteVariant(ctx context.Context, variantID string) (string, error)
	GetVariantsByProduct(ctx context.Context, productID string) ([]model.Variant, error)

	CreateReview(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error)
	GetReviews(ctx context.Context, productID string, page, limit int) (*model.ReviewsPage, error)
	GetAverageRating(ctx context.Context, productID string) (*model.AverageRating, error)
	DeleteReview(ctx context.Context, reviewID string) (string, error)
}

// CatalogService serves public catalog reads through a shared read-through
// cache. Writes go straight to the backend and drop the affected keys.
type CatalogService struct {
	api    backend.ICatalogAPI
	cache  cache.Cache
	ttl    time.Duration
	logger *zerolog.Logger
}

var _ ICatalogService = (*CatalogService)(nil)

func NewCatalogService(api backend.ICatalogAPI, c cache.Cache, ttl time.Duration, logger *zerolog.Logger) *CatalogService {
	if c == nil {
		c = cache.NoopCache{}
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &CatalogService{
		api:    api,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page <= 0 {
		page = constants.DefaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return page, limit
}

// readThrough returns the cached value at key or loads, stores and returns it.
// Cache failures only cost a backend call.
func readThrough[T any](ctx context.Context, s *CatalogService, key string, load func() (T, error)) (T, error) {
	var cached T
	err := cache.GetJSON(ctx, s.cache, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn().Err(err).Str("key", key).Msg("catalog cache read failed")
	}

	v, err := load()
	if err != nil {
		return v, err
	}
	if err := cache.SetJSON(ctx, s.cache, key, v, s.ttl); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("catalog cache write failed")
	}
	return v, nil
}

func (s *CatalogService) invalidate(ctx context.Context, patterns ...string) {
	for _, p := range patterns {
		if _, err := s.cache.DeleteByPattern(ctx, p); err != nil {
			s.logger.Warn().Err(err).Str("pattern", p).Msg("catalog cache invalidation failed")
		}
	}
}

func (s *CatalogService) GetProducts(ctx context.Context, page, limit int) (*model.ProductsPage, error) {
	page, limit = normalizePage(page, limit, constants.DefaultProductsLimit)
	key := fmt.Sprintf("products:%d:%d", page, limit)
	return readThrough(ctx, s, key, func() (*model.ProductsPage, error) {
		return s.api.GetProducts(ctx, page, limit)
	})
}

func (s *CatalogService) GetProductByName(ctx context.Context, name string) (*model.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation(apperr.OpGetProduct, apperr.CodeValidation, "El nombre del producto es requerido")
	}
	return readThrough(ctx, s, "product:"+strings.ToLower(name), func() (*model.Product, error) {
		return s.api.GetProductByName(ctx, name)
	})
}

func (s *CatalogService) CreateProduct(ctx context.Context, req model.CreateProductRequest) (*model.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperr.Validation(apperr.OpCreateProduct, apperr.CodeValidation, "El nombre del producto es requerido")
	}
	if req.Price.IsNegative() {
		return nil, apperr.Validation(apperr.OpCreateProduct, apperr.CodeValidation, "El precio no puede ser negativo")
	}
	product, err := s.api.CreateProduct(ctx, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, productsKeyPattern)
	return product, nil
}

func (s *CatalogService) CreateVariants(ctx context.Context, productID string, variants []model.Variant) ([]model.Variant, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, apperr.Validation(apperr.OpCreateVariants, apperr.CodeMissingProduct, "El ID del producto es obligatorio")
	}
	if len(variants) == 0 {
		return nil, apperr.Validation(apperr.OpCreateVariants, apperr.CodeMissingVariant, "Se requiere al menos una variante")
	}
	created, err := s.api.CreateVariants(ctx, model.CreateVariantsRequest{ProductID: productID, Variants: variants})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, productsKeyPattern, productKeyPattern)
	return created, nil
}

func (s *CatalogService) DeleteVariant(ctx context.Context, variantID string) (string, error) {
	if strings.TrimSpace(variantID) == "" {
		return "", apperr.Validation(apperr.OpDeleteVariant, apperr.CodeMissingVariant, "El ID de la variante es requerido")
	}
	msg, err := s.api.DeleteVariant(ctx, variantID)
	if err != nil {
		return "", err
	}
	s.invalidate(ctx, productsKeyPattern, productKeyPattern)
	return msg, nil
}

func (s *CatalogService) GetVariantsByProduct(ctx context.Context, productID string) ([]model.Variant, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, apperr.Validation(apperr.OpGetVariants, apperr.CodeMissingProduct, "El ID del producto es requerido")
	}
	return s.api.GetVariantsByProduct(ctx, productID)
}

func (s *CatalogService) CreateReview(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error) {
	if strings.TrimSpace(req.ProductID) == "" {
		return nil, apperr.Validation(apperr.OpCreateReview, apperr.CodeMissingProduct, "El ID del producto es requerido")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperr.Validation(apperr.OpCreateReview, apperr.CodeValidation, "La calificación debe estar entre 1 y 5")
	}
	review, err := s.api.CreateReview(ctx, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, reviewsKeyPattern, ratingKeyPattern)
	return review, nil
}

func (s *CatalogService) GetReviews(ctx context.Context, productID string, page, limit int) (*model.ReviewsPage, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, apperr.Validation(apperr.OpGetReviews, apperr.CodeMissingProduct, "El ID del producto es requerido")
	}
	page, limit = normalizePage(page, limit, constants.DefaultReviewsLimit)
	key := fmt.Sprintf("reviews:%s:%d:%d", productID, page, limit)
	return readThrough(ctx, s, key, func() (*model.ReviewsPage, error) {
		return s.api.GetReviews(ctx, productID, page, limit)
	})
}

func (s *CatalogService) GetAverageRating(ctx context.Context, productID string) (*model.AverageRating, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, apperr.Validation(apperr.OpGetAverageRating, apperr.CodeMissingProduct, "El ID del producto es requerido")
	}
	return readThrough(ctx, s, "rating:"+productID, func() (*model.AverageRating, error) {
		return s.api.GetAverageRating(ctx, productID)
	})
}

func (s *CatalogService) DeleteReview(ctx context.Context, reviewID string) (string, error) {
	if strings.TrimSpace(reviewID) == "" {
		return "", apperr.Validation(apperr.OpDeleteReview, apperr.CodeValidation, "El ID de la reseña es requerido")
	}
	msg, err := s.api.DeleteReview(ctx, reviewID)
	if err != nil {
		return "", err
	}
	s.invalidate(ctx, reviewsKeyPattern, ratingKeyPattern)
	return msg, nil
}
