package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/storefront-backend/internal/models"
)

// CreateLicense сохраняет выданную лицензию.
func (s *Storage) CreateLicense(ctx context.Context, license models.License) error {
	const op = "storage.CreateLicense"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO licenses (license_id, product_id, product_name, game, user_id,
			      license_key, status, duration, purchased_at, expires_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	purchasedAt, err := time.Parse(time.RFC3339, license.PurchasedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	expiresAt, err := time.Parse(time.RFC3339, license.ExpiresAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, err := s.DB.ExecContext(ctx, query,
		license.LicenseID, license.ProductID, license.ProductName, license.Game,
		license.UserID, license.LicenseKey, license.Status, license.Duration,
		purchasedAt, expiresAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListLicenses возвращает лицензии пользователя, новые первыми.
func (s *Storage) ListLicenses(ctx context.Context, userID string) ([]*models.License, error) {
	const op = "storage.ListLicenses"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT license_id, product_id, product_name, game, user_id,
			      license_key, status, duration, purchased_at, expires_at
			  FROM licenses
			  WHERE user_id = $1
			  ORDER BY purchased_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.License
	for rows.Next() {
		lic := &models.License{}
		var purchasedAt, expiresAt time.Time
		if err := rows.Scan(&lic.LicenseID, &lic.ProductID, &lic.ProductName, &lic.Game,
			&lic.UserID, &lic.LicenseKey, &lic.Status, &lic.Duration,
			&purchasedAt, &expiresAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		lic.PurchasedAt = purchasedAt.UTC().Format(time.RFC3339)
		lic.ExpiresAt = expiresAt.UTC().Format(time.RFC3339)
		result = append(result, lic)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
