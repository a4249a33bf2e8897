package rest

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"shopcore-be/internal/logger"
	"shopcore-be/internal/middleware"
	"shopcore-be/internal/order"
	"shopcore-be/internal/payment"
	"shopcore-be/internal/product"
	"shopcore-be/internal/user"
	"shopcore-be/internal/wishlist"
)

type Server struct {
	users    user.Service
	products product.Service
	orders   order.Service
	payments payment.Service
	wishes   wishlist.Service
}

func NewServer(
	users user.Service,
	products product.Service,
	orders order.Service,
	payments payment.Service,
	wishes wishlist.Service,
) *Server {
	return &Server{
		users:    users,
		products: products,
		orders:   orders,
		payments: payments,
		wishes:   wishes,
	}
}

func (s *Server) Routes() *chi.Mux {
	router := chi.NewRouter()

	router.Use(logger.RequestIDMiddleware)
	router.Use(logger.LoggingMiddleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(middleware.RateLimitMiddleware)

	router.Route("/api", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.Get("/products", s.handleListProducts)
		r.Get("/products/{id}", s.handleGetProduct)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/cart", s.handleGetCart)
			r.Post("/cart/update", s.handleUpdateCart)
			r.Post("/process-order", s.handleProcessOrder)
			r.Post("/payment/start", s.handleStartPayment)
			r.Post("/payment/success", s.handlePaymentSuccess)
			r.Get("/orders", s.handleListOrders)
			r.Get("/wishlist", s.handleListWishlist)
			r.Post("/wishlist/add", s.handleAddWishlist)
			r.Post("/wishlist/remove", s.handleRemoveWishlist)
		})
	})

	return router
}
