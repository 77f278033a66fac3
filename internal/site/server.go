package site

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// apiURLPlaceholder is the token in order.html replaced with the deployed API
// base URL at serve time.
const apiURLPlaceholder = "__RESTAURANT_API_URL__"

// Server serves the static website. order.html is rendered with the API URL
// injected; unmatched paths fall back to index.html so in-page navigation
// survives reloads.
type Server struct {
	staticDir string
	apiURL    string
	logger    *slog.Logger
}

func NewServer(staticDir, apiURL string, logger *slog.Logger) *Server {
	return &Server{
		staticDir: staticDir,
		apiURL:    apiURL,
		logger:    logger,
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/")
	if path == "" {
		path = "index.html"
	}

	if path == "order.html" {
		s.serveOrderPage(w)
		return
	}

	full := filepath.Join(s.staticDir, filepath.FromSlash(path))
	if _, err := os.Stat(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			full = filepath.Join(s.staticDir, "index.html")
		} else {
			s.logger.Error("failed to stat static file", "error", err, "path", path)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
	}

	http.ServeFile(w, r, full)
}

func (s *Server) serveOrderPage(w http.ResponseWriter) {
	html, err := os.ReadFile(filepath.Join(s.staticDir, "order.html"))
	if err != nil {
		s.logger.Error("failed to read order page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	rendered := strings.Replace(string(html), apiURLPlaceholder, s.apiURL+"/api", 1)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(rendered)); err != nil {
		s.logger.Error("failed to write order page", "error", err)
	}
}
