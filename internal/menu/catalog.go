package menu

import (
	"github.com/phohuongviet/restaurant-backend/internal/domain"
)

// Catalog is the read-only menu table. It is built once at startup and shared
// across requests without locking.
type Catalog struct {
	items []domain.MenuItem
	byID  map[int]domain.MenuItem
}

func NewCatalog(items []domain.MenuItem) *Catalog {
	byID := make(map[int]domain.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &Catalog{
		items: items,
		byID:  byID,
	}
}

func (c *Catalog) ByID(id int) (domain.MenuItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Items returns all menu items in menu order.
func (c *Catalog) Items() []domain.MenuItem {
	out := make([]domain.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// ByCategory groups items by category, preserving menu order within each group.
func (c *Catalog) ByCategory() map[string][]domain.MenuItem {
	grouped := make(map[string][]domain.MenuItem)
	for _, item := range c.items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	return grouped
}

func (c *Catalog) Len() int {
	return len(c.items)
}
