package menu

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phohuongviet/restaurant-backend/internal/domain"
)

func TestHandler_HandleList(t *testing.T) {
	catalog := Default()
	handler := NewHandler(catalog, slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	rec := httptest.NewRecorder()

	handler.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}

	var resp struct {
		Success bool                         `json:"success"`
		Menu    map[string][]domain.MenuItem `json:"menu"`
		Items   []domain.MenuItem            `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !resp.Success {
		t.Error("expected success true")
	}
	if len(resp.Items) != catalog.Len() {
		t.Errorf("expected %d items, got %d", catalog.Len(), len(resp.Items))
	}
	if len(resp.Menu["Pho"]) == 0 {
		t.Error("expected the Pho category to be present")
	}
}
