package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/storefront-backend/internal/models"
)

// CreateTransaction сохраняет новую транзакцию со статусом pending.
func (s *Storage) CreateTransaction(ctx context.Context, txn models.Transaction) error {
	const op = "storage.CreateTransaction"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO payment_transactions (transaction_id, session_id, product_id, product_name,
			      game, user_id, amount, currency, duration, payment_status, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	createdAt, err := time.Parse(time.RFC3339, txn.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, err := s.DB.ExecContext(ctx, query,
		txn.TransactionID, txn.SessionID, txn.ProductID, txn.ProductName, txn.Game,
		txn.UserID, txn.Amount, txn.Currency, txn.Duration, txn.PaymentStatus,
		txn.Status, createdAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UpdateTransactionStatusIfNotPaid условно обновляет статусы транзакции
// по идентификатору checkout-сессии. Обновление не выполняется, если
// транзакция отсутствует или уже находится в статусе paid: проверка и запись
// выполняются одним оператором, что закрывает гонку между опросом статуса
// и вебхуком без распределенной блокировки.
//
// Возвращает обновленную транзакцию и true, если обновление произошло.
func (s *Storage) UpdateTransactionStatusIfNotPaid(ctx context.Context, sessionID, paymentStatus, status string) (*models.Transaction, bool, error) {
	const op = "storage.UpdateTransactionStatusIfNotPaid"
	select {
	case <-ctx.Done():
		return nil, false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE payment_transactions
			  SET payment_status = $1, status = $2
			  WHERE session_id = $3 AND payment_status <> $4
			  RETURNING transaction_id, session_id, product_id, product_name, game,
			      user_id, amount, currency, duration, payment_status, status, created_at`
	txn, err := scanTransaction(s.DB.QueryRowContext(ctx, query,
		paymentStatus, status, sessionID, models.PaymentStatusPaid))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return txn, true, nil
}

// ListTransactions возвращает транзакции пользователя, новые первыми.
func (s *Storage) ListTransactions(ctx context.Context, userID string) ([]*models.Transaction, error) {
	const op = "storage.ListTransactions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT transaction_id, session_id, product_id, product_name, game,
			      user_id, amount, currency, duration, payment_status, status, created_at
			  FROM payment_transactions
			  WHERE user_id = $1
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, txn)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	txn := &models.Transaction{}
	var createdAt time.Time
	if err := row.Scan(&txn.TransactionID, &txn.SessionID, &txn.ProductID, &txn.ProductName,
		&txn.Game, &txn.UserID, &txn.Amount, &txn.Currency, &txn.Duration,
		&txn.PaymentStatus, &txn.Status, &createdAt); err != nil {
		return nil, err
	}
	txn.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	return txn, nil
}
