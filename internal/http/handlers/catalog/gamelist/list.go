package gamelist

import (
	"log/slog"
	"net/http"

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"games": h.catalog.Games(),
	}))
}
