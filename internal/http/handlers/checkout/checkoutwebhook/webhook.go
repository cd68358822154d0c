// Package checkoutwebhook реализует HTTP-обработчик вебхуков платежного
// провайдера.
//
// Обработчик всегда отвечает HTTP 200: ошибка приложения не должна
// провоцировать повторные доставки на стороне провайдера. Результат
// обработки кодируется в теле ответа полем status.
package checkoutwebhook

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/storefront-backend/internal/lib/sl"
)

// signatureHeader — заголовок подписи вебхука Stripe.
const signatureHeader = "Stripe-Signature"

// Service описывает интерфейс бизнес-логики обработки вебхука.
type Service interface {
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout.webhook"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read webhook body", sl.Err(err))
		render.JSON(w, r, map[string]string{"status": "error"})
		return
	}

	if err := h.service.HandleWebhook(r.Context(), payload, r.Header.Get(signatureHeader)); err != nil {
		log.Error("webhook processing failed", sl.Err(err))
		render.JSON(w, r, map[string]string{"status": "error"})
		return
	}

	render.JSON(w, r, map[string]string{"status": "ok"})
}
