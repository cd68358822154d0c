package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/storefront-backend/internal/models"
)

// CreateUser сохраняет нового пользователя.
func (s *Storage) CreateUser(ctx context.Context, user models.User) error {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (user_id, email, name, picture, password_hash, created_at)
			  VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6)`
	createdAt, err := time.Parse(time.RFC3339, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, err := s.DB.ExecContext(ctx, query,
		user.UserID, user.Email, user.Name, user.Picture, user.PasswordHash, createdAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// FindUserByEmail возвращает пользователя по email.
// Если пользователь не найден, возвращает false без ошибки.
func (s *Storage) FindUserByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	const op = "storage.FindUserByEmail"
	return s.findUser(ctx, op, `SELECT user_id, email, name, picture, password_hash, created_at
			  FROM users WHERE email = $1`, email)
}

// FindUser возвращает пользователя по его идентификатору.
func (s *Storage) FindUser(ctx context.Context, userID string) (*models.User, bool, error) {
	const op = "storage.FindUser"
	return s.findUser(ctx, op, `SELECT user_id, email, name, picture, password_hash, created_at
			  FROM users WHERE user_id = $1`, userID)
}

func (s *Storage) findUser(ctx context.Context, op, query, arg string) (*models.User, bool, error) {
	select {
	case <-ctx.Done():
		return nil, false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	u := &models.User{}
	var picture, passwordHash sql.NullString
	var createdAt time.Time
	row := s.DB.QueryRowContext(ctx, query, arg)
	if err := row.Scan(&u.UserID, &u.Email, &u.Name, &picture, &passwordHash, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	u.Picture = picture.String
	u.PasswordHash = passwordHash.String
	u.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	return u, true, nil
}

// UpdateUserProfile обновляет имя и аватар пользователя по email.
// Используется при повторном входе через внешнего провайдера.
func (s *Storage) UpdateUserProfile(ctx context.Context, email, name, picture string) error {
	const op = "storage.UpdateUserProfile"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET name = $1, picture = NULLIF($2, '')
			  WHERE email = $3`
	if _, err := s.DB.ExecContext(ctx, query, name, picture, email); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
