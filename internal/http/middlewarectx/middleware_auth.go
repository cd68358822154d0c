// Package middlewarectx содержит HTTP middleware для аутентификации запросов.
//
// AuthMiddleware извлекает токен из cookie сессии или заголовка Authorization,
// разрешает его в пользователя через сервис аутентификации и в случае успеха
// кладет пользователя в контекст запроса для дальнейшего использования
// в обработчиках.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized с сообщением об ошибке.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/storefront-backend/internal/http/response"
	"github.com/magabrotheeeer/storefront-backend/internal/http/sessioncookie"
	"github.com/magabrotheeeer/storefront-backend/internal/lib/sl"
	"github.com/magabrotheeeer/storefront-backend/internal/models"
	"github.com/magabrotheeeer/storefront-backend/internal/services/auth"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// User — ключ для аутентифицированного пользователя в контексте.
const User Key = "user"

// Service описывает интерфейс сервиса для разрешения токена в пользователя.
type Service interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// UserFromContext возвращает аутентифицированного пользователя из контекста.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(User).(*models.User)
	return user, ok
}

// AuthMiddleware возвращает HTTP middleware, который разрешает токен
// из cookie или заголовка Authorization в пользователя.
//
// Если токен валиден, добавляет пользователя в контекст запроса,
// иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func AuthMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AuthMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			token := sessioncookie.FromRequest(r)
			user, err := authService.Authenticate(r.Context(), token)
			if err != nil {
				log.Error("authentication failed", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(authErrorMessage(err)))
				return
			}

			ctx := context.WithValue(r.Context(), User, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authErrorMessage возвращает стабильное сообщение для ошибки аутентификации.
func authErrorMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrSessionExpired):
		return "session expired"
	case errors.Is(err, auth.ErrUserNotFound):
		return "user not found"
	default:
		return "not authenticated"
	}
}
