package api

import "github.com/RoyceAzure/lab/santoral/internal/api/handler"

type Server struct {
	AuthHandler     *handler.AuthHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	CatalogHandler  *handler.CatalogHandler
	AdminHandler    *handler.AdminHandler
}

// NewServer builds every handler on the same storefront resolver.
func NewServer(resolve handler.StorefrontResolver) *Server {
	return &Server{
		AuthHandler:     handler.NewAuthHandler(resolve),
		CartHandler:     handler.NewCartHandler(resolve),
		CheckoutHandler: handler.NewCheckoutHandler(resolve),
		OrderHandler:    handler.NewOrderHandler(resolve),
		CatalogHandler:  handler.NewCatalogHandler(resolve),
		AdminHandler:    handler.NewAdminHandler(resolve),
	}
}
