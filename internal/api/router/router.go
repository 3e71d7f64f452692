package router

import (
	"net/http"

	"github.com/RoyceAzure/lab/santoral/internal/api"
	m "github.com/RoyceAzure/lab/santoral/internal/api/middleware"
	"github.com/RoyceAzure/lab/santoral/internal/api/response"
	"github.com/RoyceAzure/lab/santoral/internal/infra/ratelimit"
	"github.com/RoyceAzure/lab/santoral/internal/util"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type Options struct {
	Registry m.StorefrontRegistry
	// Limiter is optional. Without it no rate limit is applied.
	Limiter ratelimit.Limiter
	Cookie  m.SessionCookieOptions
	Logger  *zerolog.Logger
}

func SetupRouter(server *api.Server, opts Options) *chi.Mux {
	logger := opts.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.DeviceInfoMiddleware)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)
	if !util.IsNil(opts.Limiter) {
		r.Use(m.RateLimitMiddleware(opts.Limiter))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, nil, "ok")
	})

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(m.SessionMiddleware(opts.Registry, opts.Cookie))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", server.AuthHandler.Login)
			r.Post("/register", server.AuthHandler.Register)
			r.Post("/logout", server.AuthHandler.Logout)
			r.Get("/me", server.AuthHandler.Me)
			r.Post("/forgot-password", server.AuthHandler.ForgotPassword)
			r.Post("/verify-reset-token", server.AuthHandler.VerifyResetToken)
			r.Post("/reset-password", server.AuthHandler.ResetPassword)
		})

		//購物車
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", server.CartHandler.Summary)
			r.Post("/items", server.CartHandler.AddItem)
			r.Delete("/items", server.CartHandler.RemoveItem)
			r.Put("/items/{cartItemId}", server.CartHandler.UpdateItem)
			r.Post("/clear", server.CartHandler.Clear)
		})

		//結帳
		r.Route("/checkout", func(r chi.Router) {
			r.Use(m.AuthMiddleware)
			r.Get("/", server.CheckoutHandler.Page)
			r.Get("/addresses", server.CheckoutHandler.Addresses)
			r.Post("/addresses", server.CheckoutHandler.RegisterAddress)
			r.Post("/address/select", server.CheckoutHandler.SelectAddress)
			r.Post("/confirm", server.CheckoutHandler.Confirm)
			r.Get("/state", server.CheckoutHandler.State)
			r.Post("/reset", server.CheckoutHandler.Reset)
		})

		r.With(m.AuthMiddleware).Get("/orders/mine", server.OrderHandler.MyOrders)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.CatalogHandler.Products)
			r.Get("/{name}", server.CatalogHandler.ProductByName)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/{productId}", server.CatalogHandler.Reviews)
			r.Get("/{productId}/average", server.CatalogHandler.AverageRating)
			r.With(m.AuthMiddleware).Post("/", server.CatalogHandler.CreateReview)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Use(m.AuthMiddleware)
			r.Get("/", server.AdminHandler.MyNotifications)
			r.Put("/read", server.AdminHandler.MarkMyNotificationsRead)
			r.Delete("/{notificationId}", server.AdminHandler.DeleteNotification)
			r.Put("/global/{notificationId}/read", server.AdminHandler.MarkGlobalNotificationRead)
		})

		r.Post("/contact", server.AdminHandler.CreateContactRequest)

		// 後台
		r.Route("/admin", func(r chi.Router) {
			r.Use(m.AdminMiddleware)

			r.Get("/dashboard", server.AdminHandler.DashboardStats)

			r.Get("/orders", server.OrderHandler.AllOrders)
			r.Get("/orders/statuses", server.OrderHandler.Statuses)
			r.Put("/orders/{orderId}/status", server.OrderHandler.UpdateStatus)

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", server.AdminHandler.ListCategories)
				r.Post("/", server.AdminHandler.CreateCategory)
				r.Put("/{categoryId}", server.AdminHandler.UpdateCategory)
				r.Delete("/{categoryId}", server.AdminHandler.DeleteCategory)
				r.Get("/{categoryId}/products", server.AdminHandler.CategoryProducts)
			})

			r.Route("/products", func(r chi.Router) {
				r.Post("/", server.CatalogHandler.CreateProduct)
				r.Get("/{productId}", server.AdminHandler.GetProduct)
				r.Put("/{productId}", server.AdminHandler.UpdateProduct)
				r.Delete("/{productId}", server.AdminHandler.DeleteProduct)
				r.Get("/{productId}/variants", server.CatalogHandler.Variants)
				r.Post("/{productId}/variants", server.CatalogHandler.CreateVariants)
				r.Put("/{productId}/variants", server.AdminHandler.UpdateVariant)
			})
			r.Delete("/variants/{variantId}", server.CatalogHandler.DeleteVariant)
			r.Delete("/reviews/{reviewId}", server.CatalogHandler.DeleteReview)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", server.AdminHandler.ListUsers)
				r.Put("/{userId}", server.AdminHandler.EditUser)
				r.Delete("/{userId}", server.AdminHandler.DeleteUser)
			})

			r.Post("/notifications/global", server.AdminHandler.CreateGlobalNotification)

			r.Route("/contact", func(r chi.Router) {
				r.Get("/", server.AdminHandler.ListContactRequests)
				r.Put("/{contactId}/status", server.AdminHandler.UpdateContactRequestStatus)
				r.Delete("/{contactId}", server.AdminHandler.DeleteContactRequest)
			})
		})
	})

	// 在設置完所有路由後記錄路由樹
	if err := chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		logger.Debug().Str("method", method).Str("route", route).Msg("route registered")
		return nil
	}); err != nil {
		logger.Warn().Err(err).Msg("failed to walk routes")
	}
	return r
}
