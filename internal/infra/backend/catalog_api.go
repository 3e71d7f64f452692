package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/RoyceAzure/lab/santoral/internal/apperr"
	"github.com/RoyceAzure/lab/santoral/internal/model"
)

type ICatalogAPI interface {
	GetProducts(ctx context.Context, page, limit int) (*model.ProductsPage, error)
	GetProductByName(ctx context.Context, name string) (*model.Product, error)
	CreateProduct(ctx context.Context, req model.CreateProductRequest) (*model.Product, error)
	CreateVariants(ctx context.Context, req model.CreateVariantsRequest) ([]model.Variant, error)
	DeleteVariant(ctx context.Context, variantID string) (string, error)
	GetVariantsByProduct(ctx context.Context, productID string) ([]model.Variant, error)

	CreateReview(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error)
	GetReviews(ctx context.Context, productID string, page, limit int) (*model.ReviewsPage, error)
	GetAverageRating(ctx context.Context, productID string) (*model.AverageRating, error)
	DeleteReview(ctx context.Context, reviewID string) (string, error)
}

var _ ICatalogAPI = (*Client)(nil)

func (c *Client) GetProducts(ctx context.Context, page, limit int) (*model.ProductsPage, error) {
	res := model.ProductsPage{Page: page, Limit: limit}
	if err := c.do(ctx, apperr.OpGetProducts, http.MethodGet, "/products/home/get-products-public", pageQuery(page, limit), nil, &res); err != nil {
		return nil, err
	}
	if res.Products == nil {
		res.Products = []model.Product{}
	}
	return &res, nil
}

func (c *Client) GetProductByName(ctx context.Context, name string) (*model.Product, error) {
	var product model.Product
	path := "/products/home/get-product/" + url.PathEscape(name)
	if err := c.do(ctx, apperr.OpGetProduct, http.MethodGet, path, nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, req model.CreateProductRequest) (*model.Product, error) {
	var product model.Product
	if err := c.do(ctx, apperr.OpCreateProduct, http.MethodPost, "/products/admin/create-product", nil, req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateVariants(ctx context.Context, req model.CreateVariantsRequest) ([]model.Variant, error) {
	variants := []model.Variant{}
	if err := c.do(ctx, apperr.OpCreateVariants, http.MethodPost, "/products/admin/variants", nil, req, &variants); err != nil {
		return nil, err
	}
	return variants, nil
}

func (c *Client) DeleteVariant(ctx context.Context, variantID string) (string, error) {
	var res model.MessageResponse
	path := "/products/admin/variants/" + url.PathEscape(variantID)
	if err := c.do(ctx, apperr.OpDeleteVariant, http.MethodDelete, path, nil, nil, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

func (c *Client) GetVariantsByProduct(ctx context.Context, productID string) ([]model.Variant, error) {
	variants := []model.Variant{}
	path := "/products/admin/variants/" + url.PathEscape(productID)
	if err := c.do(ctx, apperr.OpGetVariants, http.MethodGet, path, nil, nil, &variants); err != nil {
		return nil, err
	}
	return variants, nil
}

func (c *Client) CreateReview(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error) {
	var review model.Review
	if err := c.do(ctx, apperr.OpCreateReview, http.MethodPost, "/products/reviews", nil, req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) GetReviews(ctx context.Context, productID string, page, limit int) (*model.ReviewsPage, error) {
	res := model.ReviewsPage{Page: page, Limit: limit}
	path := "/products/reviews/" + url.PathEscape(productID)
	if err := c.do(ctx, apperr.OpGetReviews, http.MethodGet, path, pageQuery(page, limit), nil, &res); err != nil {
		return nil, err
	}
	if res.Reviews == nil {
		res.Reviews = []model.Review{}
	}
	return &res, nil
}

func (c *Client) GetAverageRating(ctx context.Context, productID string) (*model.AverageRating, error) {
	var res model.AverageRating
	path := "/products/reviews/" + url.PathEscape(productID) + "/average"
	if err := c.do(ctx, apperr.OpGetAverageRating, http.MethodGet, path, nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteReview(ctx context.Context, reviewID string) (string, error) {
	var res model.MessageResponse
	path := "/products/reviews/" + url.PathEscape(reviewID)
	if err := c.do(ctx, apperr.OpDeleteReview, http.MethodDelete, path, nil, nil, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}
