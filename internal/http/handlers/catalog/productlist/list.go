// Package productlist реализует HTTP-обработчик списка товаров
// с опциональным фильтром по игре через query-параметр game.
package productlist

import (
	"log/slog"
	"net/http"

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

// ServeHTTP возвращает список товаров.
//
// @Summary Список товаров
// @Tags catalog
// @Produce json
// @Param game query string false "Фильтр по игре"
// @Success 200 {object} response.Response
// @Router /products [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.productlist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	game := r.URL.Query().Get("game")
	products := h.catalog.Products(game)

	log.Info("products listed", slog.Int("count", len(products)), slog.String("game", game))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"products": products,
	}))
}
