// Package checkoutstatus реализует HTTP-обработчик опроса статуса
// checkout-сессии. Опрос одновременно выполняет сверку: первый опрос
// оплаченной сессии выпускает лицензию.
package checkoutstatus

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/storefront-backend/internal/http/response"
	"github.com/magabrotheeeer/storefront-backend/internal/lib/sl"
	"github.com/magabrotheeeer/storefront-backend/internal/paymentprovider"
	"github.com/magabrotheeeer/storefront-backend/internal/services/reconcile"
)

// Service описывает интерфейс бизнес-логики опроса статуса.
type Service interface {
	PollStatus(ctx context.Context, sessionID string) (*paymentprovider.StatusInfo, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP возвращает статус checkout-сессии по идентификатору из URL.
//
// @Summary Статус checkout-сессии
// @Tags checkout
// @Produce json
// @Param session_id path string true "Идентификатор checkout-сессии"
// @Success 200 {object} response.Response
// @Failure 502 {object} response.ErrorResponse
// @Router /checkout/status/{session_id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout.status"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sessionID := chi.URLParam(r, "session_id")
	info, err := h.service.PollStatus(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, reconcile.ErrProvider) {
			log.Error("payment provider unavailable", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("payment provider unavailable"))
			return
		}
		log.Error("failed to poll checkout status", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to poll checkout status"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"status":         info.Status,
		"payment_status": info.PaymentStatus,
		"amount_total":   info.AmountTotal,
		"currency":       info.Currency,
		"metadata":       info.Metadata,
	}))
}
