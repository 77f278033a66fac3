package orders

import (
	"strings"
	"testing"

	"github.com/phohuongviet/restaurant-backend/internal/domain"
)

func validRequest() domain.OrderRequest {
	return domain.OrderRequest{
		Customer: &domain.CustomerInput{
			Name:  "Jo",
			Phone: "403-1",
			Email: "jo@x.com",
		},
		Items: []domain.OrderItemInput{{ID: 14, Qty: 2}},
	}
}

func TestValidate(t *testing.T) {
	t.Run("accepts a valid request", func(t *testing.T) {
		errs := Validate(validRequest())
		if len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
	})

	t.Run("missing customer reports all customer fields without panicking", func(t *testing.T) {
		req := validRequest()
		req.Customer = nil

		errs := Validate(req)
		if len(errs) != 3 {
			t.Fatalf("expected 3 errors, got %d: %v", len(errs), errs)
		}
		for _, field := range []string{"customer.name", "customer.phone", "customer.email"} {
			if !containsSubstring(errs, field) {
				t.Errorf("expected an error for %s, got %v", field, errs)
			}
		}
	})

	t.Run("whitespace-only fields count as missing", func(t *testing.T) {
		req := validRequest()
		req.Customer.Name = "   "

		errs := Validate(req)
		if !containsSubstring(errs, "customer.name") {
			t.Errorf("expected customer.name error, got %v", errs)
		}
	})

	t.Run("malformed email reports exactly the format error", func(t *testing.T) {
		for _, email := range []string{"nodomain@", "no-at-sign.com", "two words@x.com", "jo@nodot"} {
			req := validRequest()
			req.Customer.Email = email

			errs := Validate(req)
			if len(errs) != 1 {
				t.Errorf("email %q: expected 1 error, got %v", email, errs)
				continue
			}
			if !strings.Contains(errs[0], "valid email") {
				t.Errorf("email %q: unexpected error %q", email, errs[0])
			}
		}
	})

	t.Run("no false positives for short valid emails", func(t *testing.T) {
		req := validRequest()
		req.Customer.Email = "a@b.co"

		if errs := Validate(req); len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
	})

	t.Run("empty items array is rejected", func(t *testing.T) {
		req := validRequest()
		req.Items = []domain.OrderItemInput{}

		errs := Validate(req)
		if len(errs) != 1 || !strings.Contains(errs[0], "items") {
			t.Errorf("expected single items error, got %v", errs)
		}
	})

	t.Run("missing items array produces no per-item errors", func(t *testing.T) {
		req := validRequest()
		req.Items = nil

		errs := Validate(req)
		if len(errs) != 1 {
			t.Errorf("expected only the items error, got %v", errs)
		}
		if containsSubstring(errs, "items[") {
			t.Errorf("unexpected per-item error: %v", errs)
		}
	})

	t.Run("per-item violations embed the index", func(t *testing.T) {
		req := validRequest()
		req.Items = []domain.OrderItemInput{
			{ID: 14, Qty: 1},
			{ID: 0, Qty: 1},
			{ID: 5, Qty: 0},
		}

		errs := Validate(req)
		if len(errs) != 2 {
			t.Fatalf("expected 2 errors, got %v", errs)
		}
		if !containsSubstring(errs, "items[1].id") {
			t.Errorf("expected items[1].id error, got %v", errs)
		}
		if !containsSubstring(errs, "items[2].qty") {
			t.Errorf("expected items[2].qty error, got %v", errs)
		}
	})

	t.Run("negative qty is rejected", func(t *testing.T) {
		req := validRequest()
		req.Items[0].Qty = -3

		errs := Validate(req)
		if !containsSubstring(errs, "items[0].qty") {
			t.Errorf("expected items[0].qty error, got %v", errs)
		}
	})

	t.Run("violations accumulate across customer and items", func(t *testing.T) {
		errs := Validate(domain.OrderRequest{})
		if len(errs) != 4 {
			t.Errorf("expected 4 accumulated errors, got %d: %v", len(errs), errs)
		}
	})
}

func containsSubstring(errs []string, sub string) bool {
	for _, e := range errs {
		if strings.Contains(e, sub) {
			return true
		}
	}
	return false
}
