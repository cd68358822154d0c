// Package checkout содержит логику открытия checkout-сессий у платежного
// провайдера. Цена всегда вычисляется на стороне сервера из каталога:
// суммы от клиента не принимаются.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/magabrotheeeer/storefront-backend/internal/catalog"
	"github.com/magabrotheeeer/storefront-backend/internal/lib/ident"
	"github.com/magabrotheeeer/storefront-backend/internal/models"
	"github.com/magabrotheeeer/storefront-backend/internal/paymentprovider"
)

// Ошибки бизнес-уровня.
var (
	ErrUnknownProduct  = errors.New("invalid product")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrProvider        = errors.New("payment provider failure")
)

// currency — единственная валюта магазина.
const currency = "usd"

// workflowStatusInitiated — начальный workflow-статус транзакции.
const workflowStatusInitiated = "initiated"

// TransactionRepository описывает запись новой транзакции.
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, txn models.Transaction) error
}

// PaymentProvider описывает открытие checkout-сессии у провайдера.
type PaymentProvider interface {
	CreateSession(ctx context.Context, p paymentprovider.SessionParams) (*paymentprovider.SessionInfo, error)
}

// Result — результат открытия checkout-сессии.
type Result struct {
	URL       string
	SessionID string
}

// Service оркестрирует создание checkout-сессии и запись pending-транзакции.
type Service struct {
	catalog  *catalog.Catalog
	provider PaymentProvider
	repo     TransactionRepository
	log      *slog.Logger
}

// New создает новый Service.
func New(cat *catalog.Catalog, provider PaymentProvider, repo TransactionRepository, log *slog.Logger) *Service {
	return &Service{
		catalog:  cat,
		provider: provider,
		repo:     repo,
		log:      log,
	}
}

// PriceCents возвращает цену в центах для базовой цены и класса длительности:
// monthly — базовая цена, weekly — половина, daily — четверть.
// Округление половин — вверх, до цента.
func PriceCents(basePrice float64, duration string) (int64, error) {
	baseCents := int64(math.Round(basePrice * 100))
	var divisor int64
	switch duration {
	case models.DurationMonthly:
		divisor = 1
	case models.DurationWeekly:
		divisor = 2
	case models.DurationDaily:
		divisor = 4
	default:
		return 0, ErrInvalidDuration
	}
	return (2*baseCents + divisor) / (2 * divisor), nil
}

// Create валидирует выбор товара, открывает checkout-сессию у провайдера
// и записывает pending-транзакцию до возврата результата вызывающему.
func (s *Service) Create(ctx context.Context, user *models.User, productID, originURL, duration string) (*Result, error) {
	const op = "checkout.Create"

	product, found := s.catalog.Product(productID)
	if !found {
		return nil, ErrUnknownProduct
	}
	amountCents, err := PriceCents(product.Price, duration)
	if err != nil {
		return nil, err
	}

	origin := strings.TrimRight(originURL, "/")
	metadata := map[string]string{
		"product_id":   product.ProductID,
		"user_id":      user.UserID,
		"duration":     duration,
		"product_name": product.Name,
		"game":         product.Game,
	}
	sess, err := s.provider.CreateSession(ctx, paymentprovider.SessionParams{
		AmountCents: amountCents,
		Currency:    currency,
		ProductName: product.Name,
		SuccessURL:  origin + "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   origin + "/products/" + product.ProductID,
		Metadata:    metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrProvider, err)
	}

	txn := models.Transaction{
		TransactionID: ident.New("txn"),
		SessionID:     sess.SessionID,
		ProductID:     product.ProductID,
		ProductName:   product.Name,
		Game:          product.Game,
		UserID:        user.UserID,
		Amount:        float64(amountCents) / 100,
		Currency:      currency,
		Duration:      duration,
		PaymentStatus: models.PaymentStatusPending,
		Status:        workflowStatusInitiated,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.repo.CreateTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("checkout session created",
		slog.String("session_id", sess.SessionID),
		slog.String("product_id", product.ProductID),
		slog.String("duration", duration))
	return &Result{
		URL:       sess.URL,
		SessionID: sess.SessionID,
	}, nil
}
