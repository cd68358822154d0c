// Package logout реализует HTTP-обработчик выхода: удаляет сессию
// и сбрасывает cookie. Выход без валидного токена не считается ошибкой.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/storefront-backend/internal/http/response"
	"github.com/magabrotheeeer/storefront-backend/internal/http/sessioncookie"
	"github.com/magabrotheeeer/storefront-backend/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики выхода.
type Service interface {
	Logout(ctx context.Context, token string) error
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if token := sessioncookie.FromRequest(r); token != "" {
		if err := h.service.Logout(r.Context(), token); err != nil {
			log.Warn("failed to delete session", sl.Err(err))
		}
	}

	sessioncookie.Clear(w)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "logged out",
	}))
}
