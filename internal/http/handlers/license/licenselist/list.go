// Package licenselist реализует HTTP-обработчик списка лицензий
// аутентифицированного пользователя.
package licenselist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/storefront-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/storefront-backend/internal/http/response"
	"github.com/magabrotheeeer/storefront-backend/internal/lib/sl"
	"github.com/magabrotheeeer/storefront-backend/internal/models"
)

// Service описывает интерфейс бизнес-логики чтения лицензий.
type Service interface {
	ListLicenses(ctx context.Context, userID string) ([]*models.License, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.license.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("user missing from request context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("not authenticated"))
		return
	}

	licenses, err := h.service.ListLicenses(r.Context(), user.UserID)
	if err != nil {
		log.Error("failed to list licenses", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list licenses"))
		return
	}

	if licenses == nil {
		licenses = []*models.License{}
	}
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"licenses": licenses,
	}))
}
