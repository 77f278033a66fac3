package menu

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/phohuongviet/restaurant-backend/internal/domain"
)

type Handler struct {
	catalog *Catalog
	logger  *slog.Logger
}

func NewHandler(catalog *Catalog, logger *slog.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

type listResponse struct {
	Success bool                         `json:"success"`
	Menu    map[string][]domain.MenuItem `json:"menu"`
	Items   []domain.MenuItem            `json:"items"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	resp := listResponse{
		Success: true,
		Menu:    h.catalog.ByCategory(),
		Items:   h.catalog.Items(),
	}

	h.logger.Info("menu listed", "count", h.catalog.Len())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
