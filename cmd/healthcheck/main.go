package main

import (
	"net/http"
	"os"
	"time"
)

// Container health probe: exits 0 when the local service answers its health
// endpoint with 200.
func main() {
	client := &http.Client{
		Timeout: 2 * time.Second,
	}

	port := "3001"
	if p := os.Getenv("PORT"); p != "" {
		port = p
	}

	path := "/api/health"
	if p := os.Getenv("HEALTH_PATH"); p != "" {
		path = p
	}

	resp, err := client.Get("http://localhost:" + port + path)
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
}
