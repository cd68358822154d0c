package storefront

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/storefront-backend/internal/catalog"
	"github.com/magabrotheeeer/storefront-backend/internal/http/handlers/auth/googlesession"
	"github.com/magabrotheeeer/storefront-backend/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/storefront-backend/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/storefront-backend/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/storefront-backend/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/storefront-backend/internal/http/handlers/catalog/gamelist"
	"github.com/magabrotheeeer/storefront-backend/internal/http/handlers/catalog/productlist"
	"github.com/magabrotheeeer/storefront-backend/internal/http/handlers/catalog/productread"
	"github.com/magabrotheeeer/storefront-backend/internal/http/handlers/catalog/productstatus"
	"github.com/magabrotheeeer/storefront-backend/internal/http/handlers/catalog/reviewlist"
	"github.com/magabrotheeeer/storefront-backend/internal/http/handlers/catalog/stats"
	"github.com/magabrotheeeer/storefront-backend/internal/http/handlers/checkout/checkoutcreate"
	"github.com/magabrotheeeer/storefront-backend/internal/http/handlers/checkout/checkoutstatus"
	"github.com/magabrotheeeer/storefront-backend/internal/http/handlers/checkout/checkoutwebhook"
	"github.com/magabrotheeeer/storefront-backend/internal/http/handlers/license/licenselist"
	"github.com/magabrotheeeer/storefront-backend/internal/http/handlers/transaction/transactionlist"
	"github.com/magabrotheeeer/storefront-backend/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/storefront-backend/internal/services/auth"
	checkoutservice "github.com/magabrotheeeer/storefront-backend/internal/services/checkout"
	reconcileservice "github.com/magabrotheeeer/storefront-backend/internal/services/reconcile"
	"github.com/magabrotheeeer/storefront-backend/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cat *catalog.Catalog, db *repository.Storage, authService *authservice.Service, checkoutService *checkoutservice.Service, reconcileService *reconcileservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)
		r.Post("/auth/google/session", googlesession.New(logger, authService).ServeHTTP)
		r.Post("/auth/logout", logout.New(logger, authService).ServeHTTP)

		r.Get("/products", productlist.New(logger, cat).ServeHTTP)
		r.Get("/products/{id}", productread.New(logger, cat).ServeHTTP)
		r.Get("/product-status", productstatus.New(logger, cat).ServeHTTP)
		r.Get("/reviews", reviewlist.New(logger, cat).ServeHTTP)
		r.Get("/games", gamelist.New(logger, cat).ServeHTTP)
		r.Get("/stats", stats.New(logger, cat).ServeHTTP)

		// Группа с аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AuthMiddleware(authService, logger))
			r.Get("/auth/me", me.New(logger).ServeHTTP)
			r.Post("/checkout/create", checkoutcreate.New(logger, checkoutService).ServeHTTP)
			r.Get("/checkout/status/{session_id}", checkoutstatus.New(logger, reconcileService).ServeHTTP)
			r.Get("/licenses", licenselist.New(logger, db).ServeHTTP)
			r.Get("/transactions", transactionlist.New(logger, db).ServeHTTP)
		})

		// Webhook endpoint (без аутентификации)
		r.Post("/webhook/stripe", checkoutwebhook.New(logger, reconcileService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
