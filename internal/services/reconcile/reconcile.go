// Package reconcile приводит локальные транзакции в соответствие
// с авторитетным статусом платежного провайдера. Обе точки входа —
// опрос статуса и вебхук — сходятся в одном идемпотентном переходе,
// который при первом переходе в paid выпускает ровно одну лицензию.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/storefront-backend/internal/lib/ident"
	"github.com/magabrotheeeer/storefront-backend/internal/lib/licensekey"
	"github.com/magabrotheeeer/storefront-backend/internal/models"
	"github.com/magabrotheeeer/storefront-backend/internal/paymentprovider"
)

// ErrProvider возвращается при недоступности платежного провайдера.
var ErrProvider = errors.New("payment provider failure")

// TransactionRepository описывает условное обновление транзакции
// и запись лицензии.
type TransactionRepository interface {
	UpdateTransactionStatusIfNotPaid(ctx context.Context, sessionID, paymentStatus, status string) (*models.Transaction, bool, error)
	CreateLicense(ctx context.Context, license models.License) error
}

// PaymentProvider описывает опрос статуса и проверку вебхуков.
type PaymentProvider interface {
	GetStatus(ctx context.Context, sessionID string) (*paymentprovider.StatusInfo, error)
	VerifyWebhook(payload []byte, signature string) (*paymentprovider.StatusInfo, error)
}

// Service выполняет сверку платежей и выпуск лицензий.
type Service struct {
	repo     TransactionRepository
	provider PaymentProvider
	log      *slog.Logger
}

// New создает новый Service.
func New(repo TransactionRepository, provider PaymentProvider, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		provider: provider,
		log:      log,
	}
}

// PollStatus запрашивает у провайдера состояние checkout-сессии,
// применяет Reconcile и возвращает состояние вызывающему.
func (s *Service) PollStatus(ctx context.Context, sessionID string) (*paymentprovider.StatusInfo, error) {
	const op = "reconcile.PollStatus"

	info, err := s.provider.GetStatus(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrProvider, err)
	}
	if err := s.Reconcile(ctx, info.SessionID, info.PaymentStatus, info.Status); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return info, nil
}

// HandleWebhook проверяет подпись вебхука и применяет Reconcile.
// События, не относящиеся к checkout-сессиям, игнорируются.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	const op = "reconcile.HandleWebhook"

	info, err := s.provider.VerifyWebhook(payload, signature)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if info == nil {
		return nil
	}
	if err := s.Reconcile(ctx, info.SessionID, info.PaymentStatus, info.Status); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Reconcile условно обновляет статусы транзакции и при первом переходе
// в paid выпускает одну лицензию. Неизвестная сессия и уже оплаченная
// транзакция — no-op: проверку и запись хранилище выполняет одним
// условным обновлением, поэтому гонка опроса и вебхука не приводит
// к выпуску дубликата.
func (s *Service) Reconcile(ctx context.Context, sessionID, paymentStatus, status string) error {
	const op = "reconcile.Reconcile"

	txn, updated, err := s.repo.UpdateTransactionStatusIfNotPaid(ctx, sessionID, paymentStatus, status)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !updated {
		return nil
	}
	if paymentStatus != models.PaymentStatusPaid {
		return nil
	}

	now := time.Now().UTC()
	license := models.License{
		LicenseID:   ident.New("lic"),
		ProductID:   txn.ProductID,
		ProductName: txn.ProductName,
		Game:        txn.Game,
		UserID:      txn.UserID,
		LicenseKey:  licensekey.Generate(),
		Status:      models.LicenseStatusActive,
		Duration:    txn.Duration,
		PurchasedAt: now.Format(time.RFC3339),
		ExpiresAt:   now.AddDate(0, 0, licenseDays(txn.Duration)).Format(time.RFC3339),
	}
	if err := s.repo.CreateLicense(ctx, license); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("license issued",
		slog.String("license_id", license.LicenseID),
		slog.String("session_id", sessionID),
		slog.String("user_id", txn.UserID))
	return nil
}

// licenseDays возвращает срок действия лицензии в днях для класса
// длительности. Нераспознанное значение трактуется как месячный класс.
func licenseDays(duration string) int {
	switch duration {
	case models.DurationDaily:
		return 1
	case models.DurationWeekly:
		return 7
	case models.DurationMonthly:
		return 30
	default:
		return 30
	}
}
