// Package checkoutcreate реализует HTTP-обработчик открытия checkout-сессии.
//
// Обработчик принимает идентификатор товара, origin фронтенда и класс
// длительности, передает их в бизнес-логику и возвращает URL страницы
// оплаты вместе с идентификатором сессии.
package checkoutcreate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/storefront-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/storefront-backend/internal/http/response"
	"github.com/magabrotheeeer/storefront-backend/internal/lib/sl"
	"github.com/magabrotheeeer/storefront-backend/internal/models"
	"github.com/magabrotheeeer/storefront-backend/internal/services/checkout"
)

// Request — входные данные для открытия checkout-сессии
type Request struct {
	ProductID string `json:"product_id" validate:"required"`
	OriginURL string `json:"origin_url" validate:"required,url"`
	Duration  string `json:"duration" validate:"required"`
}

// Service описывает интерфейс бизнес-логики открытия checkout-сессии.
type Service interface {
	Create(ctx context.Context, user *models.User, productID, originURL, duration string) (*checkout.Result, error)
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

// ServeHTTP открывает checkout-сессию для аутентифицированного пользователя.
//
// @Summary Создание checkout-сессии
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body Request true "Выбор товара"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /checkout/create [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout.create"

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

	result, err := h.service.Create(r.Context(), user, req.ProductID, req.OriginURL, req.Duration)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrUnknownProduct):
			log.Info("unknown product", slog.String("product_id", req.ProductID))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid product"))
		case errors.Is(err, checkout.ErrInvalidDuration):
			log.Info("invalid duration", slog.String("duration", req.Duration))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid duration"))
		case errors.Is(err, checkout.ErrProvider):
			log.Error("payment provider unavailable", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("payment provider unavailable"))
		default:
			log.Error("failed to create checkout session", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create checkout session"))
		}
		return
	}

	log.Info("checkout session created", slog.String("session_id", result.SessionID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"url":        result.URL,
		"session_id": result.SessionID,
	}))
}
