package api

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status     string `json:"status"`
	Restaurant string `json:"restaurant"`
	Timestamp  string `json:"timestamp"`
}

// Health reports liveness plus the restaurant identity for quick smoke checks.
func Health(restaurant string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:     "ok",
			Restaurant: restaurant,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
		})
	}
}
