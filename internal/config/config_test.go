package config

import (
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("ALLOWED_ORIGIN", "")
		t.Setenv("WEBHOOK_URL", "")
		t.Setenv("WEBHOOK_SECRET", "")

		cfg := Load()

		if cfg.Port != "3001" {
			t.Errorf("expected default port 3001, got %q", cfg.Port)
		}
		if cfg.AllowedOrigin != "*" {
			t.Errorf("expected default origin *, got %q", cfg.AllowedOrigin)
		}
		if cfg.WebhookURL != "" {
			t.Errorf("expected webhook disabled by default, got %q", cfg.WebhookURL)
		}
	})

	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("PORT", "9000")
		t.Setenv("ALLOWED_ORIGIN", "https://phohuongviet.ca")
		t.Setenv("WEBHOOK_URL", "https://hooks.example.com/orders")
		t.Setenv("WEBHOOK_SECRET", "hunter2")

		cfg := Load()

		if cfg.Port != "9000" {
			t.Errorf("expected port 9000, got %q", cfg.Port)
		}
		if cfg.AllowedOrigin != "https://phohuongviet.ca" {
			t.Errorf("unexpected origin %q", cfg.AllowedOrigin)
		}
		if cfg.WebhookURL != "https://hooks.example.com/orders" {
			t.Errorf("unexpected webhook url %q", cfg.WebhookURL)
		}
		if cfg.WebhookSecret != "hunter2" {
			t.Errorf("unexpected webhook secret %q", cfg.WebhookSecret)
		}
	})
}

func TestLoadSite(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("STATIC_DIR", "")
		t.Setenv("RESTAURANT_API_URL", "")

		cfg := LoadSite()

		if cfg.Port != "3000" {
			t.Errorf("expected default port 3000, got %q", cfg.Port)
		}
		if cfg.StaticDir != "public" {
			t.Errorf("expected default static dir public, got %q", cfg.StaticDir)
		}
		if cfg.APIURL != "http://localhost:3001" {
			t.Errorf("unexpected default api url %q", cfg.APIURL)
		}
	})

	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("STATIC_DIR", "/srv/site")
		t.Setenv("RESTAURANT_API_URL", "https://api.phohuongviet.ca")

		cfg := LoadSite()

		if cfg.Port != "8080" {
			t.Errorf("expected port 8080, got %q", cfg.Port)
		}
		if cfg.StaticDir != "/srv/site" {
			t.Errorf("unexpected static dir %q", cfg.StaticDir)
		}
		if cfg.APIURL != "https://api.phohuongviet.ca" {
			t.Errorf("unexpected api url %q", cfg.APIURL)
		}
	})
}
