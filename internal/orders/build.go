package orders

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/phohuongviet/restaurant-backend/internal/domain"
	"github.com/phohuongviet/restaurant-backend/internal/menu"
)

var taxRate = decimal.RequireFromString("0.05")

// MenuItemNotFoundError reports an order line referencing an id that is not in
// the catalog.
type MenuItemNotFoundError struct {
	ID int
}

func (e *MenuItemNotFoundError) Error() string {
	return fmt.Sprintf("menu item %d not found", e.ID)
}

// Builder resolves validated order requests against the catalog and prices
// them. It assumes Validate has already passed; it does not re-check structure.
type Builder struct {
	catalog    *menu.Catalog
	restaurant domain.Restaurant
}

func NewBuilder(catalog *menu.Catalog, restaurant domain.Restaurant) *Builder {
	return &Builder{
		catalog:    catalog,
		restaurant: restaurant,
	}
}

// Build assembles the canonical order record. Monetary values are rounded to
// two places at every stage (line subtotal, aggregate subtotal, tax, total),
// half away from zero, so totals match a calculator working the same way.
func (b *Builder) Build(req domain.OrderRequest) (*domain.Order, error) {
	resolved := make([]domain.ResolvedOrderItem, 0, len(req.Items))
	subtotal := decimal.Zero

	for _, line := range req.Items {
		item, ok := b.catalog.ByID(line.ID)
		if !ok {
			return nil, &MenuItemNotFoundError{ID: line.ID}
		}

		lineTotal := decimal.NewFromFloat(item.Price).
			Mul(decimal.NewFromInt(int64(line.Qty))).
			Round(2)
		subtotal = subtotal.Add(lineTotal)

		resolved = append(resolved, domain.ResolvedOrderItem{
			ID:        item.ID,
			Name:      item.Name,
			Category:  item.Category,
			Qty:       line.Qty,
			UnitPrice: item.Price,
			Subtotal:  lineTotal.InexactFloat64(),
		})
	}

	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(tax).Round(2)

	now := time.Now().UTC()

	return &domain.Order{
		OrderID:    newOrderID(now),
		PlacedAt:   now.Format(time.RFC3339),
		Restaurant: b.restaurant,
		Customer: domain.Customer{
			Name:  strings.TrimSpace(req.Customer.Name),
			Phone: strings.TrimSpace(req.Customer.Phone),
			Email: strings.ToLower(strings.TrimSpace(req.Customer.Email)),
		},
		Items:   resolved,
		Pricing: domain.Pricing{Subtotal: subtotal.InexactFloat64(), Tax: tax.InexactFloat64(), Total: total.InexactFloat64()},
		Notes:   strings.TrimSpace(req.Notes),
		Type:    domain.OrderTypePickup,
	}, nil
}

// newOrderID combines a timestamp with a random suffix so two orders built in
// the same instant still get distinct ids.
func newOrderID(now time.Time) string {
	return fmt.Sprintf("PHV-%s-%s", now.Format("20060102150405"), uuid.NewString()[:8])
}
