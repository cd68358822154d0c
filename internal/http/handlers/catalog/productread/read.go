// Package productread реализует HTTP-обработчик получения товара по ID.
package productread

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/storefront-backend/internal/catalog"
	"github.com/magabrotheeeer/storefront-backend/internal/http/response"
)

type Handler struct {
	log     *slog.Logger
	catalog *catalog.Catalog
}

func New(log *slog.Logger, cat *catalog.Catalog) *Handler {
	return &Handler{log: log, catalog: cat}
}

// ServeHTTP возвращает товар по идентификатору из URL.
//
// @Summary Товар по ID
// @Tags catalog
// @Produce json
// @Param id path string true "Идентификатор товара"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Router /products/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.productread"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	productID := chi.URLParam(r, "id")
	product, found := h.catalog.Product(productID)
	if !found {
		log.Info("product not found", slog.String("product_id", productID))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("product not found"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"product": product,
	}))
}
