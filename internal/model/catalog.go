package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Variant struct {
	ID        string          `json:"id,omitempty"`
	VariantID string          `json:"variantId,omitempty"`
	ProductID string          `json:"productId,omitempty"`
	Color     string          `json:"color"`
	Style     string          `json:"style"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock,omitempty"`
	ImageURL  string          `json:"image_url,omitempty"`
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  string          `json:"category_id,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	Variants    []Variant       `json:"variants,omitempty"`
}

type ProductsPage struct {
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  string          `json:"category_id"`
}

type CreateVariantsRequest struct {
	ProductID string    `json:"productId"`
	Variants  []Variant `json:"variants"`
}

type Category struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	ImageURL string `json:"image,omitempty"`
}

type CategoryRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId,omitempty"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReviewRequest struct {
	ProductID string `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type ReviewsPage struct {
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
	Total   int      `json:"total"`
	Reviews []Review `json:"reviews"`
}

type AverageRating struct {
	Average decimal.Decimal `json:"average"`
	Count   int             `json:"count"`
}
