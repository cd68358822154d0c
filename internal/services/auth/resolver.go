package auth

import (
	"context"
	"errors"
	"time"

	"github.com/magabrotheeeer/storefront-backend/internal/lib/jwt"
	"github.com/magabrotheeeer/storefront-backend/internal/models"
)

// errNotApplicable сигнализирует, что резолвер не отвечает за этот токен
// и цепочка должна перейти к следующему.
var errNotApplicable = errors.New("token resolver: not applicable")

// tokenResolver разрешает токен в пользователя. Возвращает errNotApplicable,
// если токен не его; любую другую ошибку цепочка отдает вызывающему как
// окончательный вердикт. Вторым значением возвращается допустимый TTL
// кэширования результата (0 — не кэшировать).
type tokenResolver interface {
	Resolve(ctx context.Context, token string) (*models.User, time.Duration, error)
}

// sessionResolver разрешает токены сессий внешнего провайдера.
type sessionResolver struct {
	repo UserRepository
}

func (r *sessionResolver) Resolve(ctx context.Context, token string) (*models.User, time.Duration, error) {
	sess, found, err := r.repo.FindSession(ctx, token)
	if err != nil {
		return nil, 0, err
	}
	if !found {
		return nil, 0, errNotApplicable
	}
	remaining := time.Until(sess.ExpiresAt)
	if remaining <= 0 {
		return nil, 0, ErrSessionExpired
	}
	user, found, err := r.repo.FindUser(ctx, sess.UserID)
	if err != nil {
		return nil, 0, err
	}
	if !found {
		return nil, 0, ErrUserNotFound
	}
	return user, min(cacheTTL, remaining), nil
}

// jwtResolver разрешает самоподписанные токены.
type jwtResolver struct {
	maker jwt.Maker
	repo  UserRepository
}

func (r *jwtResolver) Resolve(ctx context.Context, token string) (*models.User, time.Duration, error) {
	claims, err := r.maker.ParseToken(token)
	if err != nil {
		// Невалидный или истекший токен: других резолверов в цепочке нет.
		return nil, 0, ErrUnauthenticated
	}
	user, found, err := r.repo.FindUser(ctx, claims.UserID)
	if err != nil {
		return nil, 0, err
	}
	if !found {
		return nil, 0, ErrUserNotFound
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	return user, min(cacheTTL, remaining), nil
}
