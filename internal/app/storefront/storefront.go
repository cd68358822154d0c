// Package storefront собирает приложение магазина: хранилище, кэш,
// внешние провайдеры, сервисы и HTTP-сервер.
package storefront

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/storefront-backend/internal/cache"
	"github.com/magabrotheeeer/storefront-backend/internal/catalog"
	"github.com/magabrotheeeer/storefront-backend/internal/config"
	"github.com/magabrotheeeer/storefront-backend/internal/identityprovider"
	"github.com/magabrotheeeer/storefront-backend/internal/lib/jwt"
	"github.com/magabrotheeeer/storefront-backend/internal/lib/secrets"
	"github.com/magabrotheeeer/storefront-backend/internal/migrations"
	"github.com/magabrotheeeer/storefront-backend/internal/paymentprovider"
	"github.com/magabrotheeeer/storefront-backend/internal/services/auth"
	"github.com/magabrotheeeer/storefront-backend/internal/services/checkout"
	"github.com/magabrotheeeer/storefront-backend/internal/services/reconcile"
	"github.com/magabrotheeeer/storefront-backend/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	// Пустой секрет означает случайный секрет на время жизни процесса:
	// все ранее выданные токены перестают действовать после рестарта.
	secretKey := cfg.JWTToken.JWTSecretKey
	if secretKey == "" {
		secretKey, err = secrets.Hex(32)
		if err != nil {
			return nil, err
		}
		logger.Warn("jwt secret not configured, generated a process-lifetime secret")
	}
	jwtMaker := jwt.NewJWTMaker(secretKey, cfg.JWTToken.TokenTTL)

	stripeClient := paymentprovider.NewClient(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret)
	idpClient := identityprovider.NewClient(cfg.IdentityProvider.SessionDataURL, cfg.IdentityProvider.TimeoutIdP)

	cat := catalog.Default()
	authService := auth.New(db, cacheRedis, idpClient, jwtMaker, logger)
	checkoutService := checkout.New(cat, stripeClient, db, logger)
	reconcileService := reconcile.New(db, stripeClient, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cat, db, authService, checkoutService, reconcileService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		_ = a.cache.DB.Close()
		return err
	}
}
