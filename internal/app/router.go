package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/avc/account-marketplace/internal/handlers"
	"github.com/avc/account-marketplace/internal/utils/jwt"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, jwtManager *jwt.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps, jwtManager)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies, jwtManager *jwt.Manager) {
	// Health check эндпоинты
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)

	// Публичные эндпоинты
	r.Post("/api/user/register", deps.handlers.auth.Register)
	r.Post("/api/user/login", deps.handlers.auth.Login)
	r.Get("/api/listings", deps.handlers.listings.Marketplace)
	r.Get("/api/listings/{id}", deps.handlers.listings.GetPublic)

	// Защищенные эндпоинты
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))

		r.Get("/api/payment-instructions", deps.handlers.listings.PaymentInstructions)

		// Кабинет продавца
		r.Get("/api/seller/listings", deps.handlers.listings.ListMine)
		r.Post("/api/seller/listings", deps.handlers.listings.Create)
		r.Put("/api/seller/listings/{id}", deps.handlers.listings.Update)
		r.Delete("/api/seller/listings/{id}", deps.handlers.listings.Delete)
		r.Post("/api/seller/listings/{id}/publish", deps.handlers.listings.SetPublished)
		r.Post("/api/seller/listings/{id}/sync", deps.handlers.listings.Sync)
		r.Get("/api/seller/orders", deps.handlers.orders.ListSales)
		r.Get("/api/seller/earnings", deps.handlers.orders.Earnings)

		// Заказы покупателя
		r.Post("/api/orders", deps.handlers.orders.CreateOrder)
		r.Get("/api/orders", deps.handlers.orders.ListMine)
		r.Get("/api/orders/{id}", deps.handlers.orders.GetOrder)
		r.Post("/api/orders/{id}/payment", deps.handlers.orders.DeclarePayment)
		r.Post("/api/orders/{id}/complete", deps.handlers.orders.ConfirmCompletion)

		// Администрирование
		r.Group(func(r chi.Router) {
			r.Use(handlers.RequireAdmin())
			r.Get("/api/admin/orders", deps.handlers.admin.ListOrders)
			r.Post("/api/admin/orders/{id}/confirm", deps.handlers.admin.ConfirmPayment)
			r.Post("/api/admin/orders/{id}/refund", deps.handlers.admin.RefundOrder)
			r.Put("/api/admin/settings", deps.handlers.admin.UpdateSettings)
			r.Get("/api/admin/stats", deps.handlers.admin.Stats)
		})
	})
}
