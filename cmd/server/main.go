package main

import (
	"net/http"

	"shopcore-be/internal/config"
	"shopcore-be/internal/db"
	"shopcore-be/internal/logger"
	"shopcore-be/internal/order"
	"shopcore-be/internal/payment"
	"shopcore-be/internal/product"
	"shopcore-be/internal/transport/rest"
	"shopcore-be/internal/user"
	"shopcore-be/internal/wishlist"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, productRepo)

	provider := payment.NewRazorpayProvider(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	paymentSvc := payment.NewService(provider, orderSvc, userSvc)

	wishlistRepo := wishlist.NewRepository(database)
	wishlistSvc := wishlist.NewService(wishlistRepo, productRepo)

	server := rest.NewServer(userSvc, productSvc, orderSvc, paymentSvc, wishlistSvc)

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	if err := http.ListenAndServe(":"+cfg.AppPort, server.Routes()); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
