package orders

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/phohuongviet/restaurant-backend/internal/domain"
)

// emailPattern accepts local@domain.tld shapes: no whitespace, a single-ish @,
// and at least one dot after the @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks an order request for structural and semantic problems. Every
// violated rule contributes its own message so the client sees the full set in
// one response; an empty slice means the request is valid.
func Validate(req domain.OrderRequest) []string {
	var errs []string

	name, phone, email := "", "", ""
	if req.Customer != nil {
		name = strings.TrimSpace(req.Customer.Name)
		phone = strings.TrimSpace(req.Customer.Phone)
		email = strings.TrimSpace(req.Customer.Email)
	}

	if name == "" {
		errs = append(errs, "customer.name is required")
	}
	if phone == "" {
		errs = append(errs, "customer.phone is required")
	}
	if email == "" {
		errs = append(errs, "customer.email is required")
	} else if !emailPattern.MatchString(email) {
		errs = append(errs, "customer.email is not a valid email address")
	}

	if len(req.Items) == 0 {
		errs = append(errs, "items must be a non-empty array")
	}
	for i, item := range req.Items {
		if item.ID == 0 {
			errs = append(errs, fmt.Sprintf("items[%d].id is required", i))
		}
		if item.Qty < 1 {
			errs = append(errs, fmt.Sprintf("items[%d].qty must be a positive integer", i))
		}
	}

	return errs
}
