// Package googlesession реализует HTTP-обработчик обмена одноразового
// идентификатора внешнего провайдера на сессию приложения.
package googlesession

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/storefront-backend/internal/http/response"
	"github.com/magabrotheeeer/storefront-backend/internal/http/sessioncookie"
	"github.com/magabrotheeeer/storefront-backend/internal/lib/sl"
	"github.com/magabrotheeeer/storefront-backend/internal/models"
	"github.com/magabrotheeeer/storefront-backend/internal/services/auth"
)

// Request — входные данные для обмена сессии
type Request struct {
	SessionID string `json:"session_id" validate:"required"`
}

// Service описывает интерфейс бизнес-логики обмена сессии.
type Service interface {
	ExchangeSession(ctx context.Context, exchangeID string) (*models.User, string, error)
}

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.googlesession"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user, token, err := h.service.ExchangeSession(r.Context(), req.SessionID)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidExchange) {
			log.Info("exchange rejected by identity provider")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid session"))
			return
		}
		log.Error("session exchange failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to exchange session"))
		return
	}

	sessioncookie.Set(w, token)
	log.Info("third-party session established", slog.String("user_id", user.UserID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"token": token,
		"user":  user,
	}))
}
