package menu

import (
	"github.com/phohuongviet/restaurant-backend/internal/domain"
)

// Identity is the constant restaurant block attached to every order.
func Identity() domain.Restaurant {
	return domain.Restaurant{
		Name:    "Pho Huong Viet",
		Address: "1416 17 Ave SW, Calgary, AB T2T 0C6",
		Phone:   "(403) 555-0146",
	}
}

// Default builds the catalog served by /api/menu.
func Default() *Catalog {
	return NewCatalog([]domain.MenuItem{
		{ID: 1, Category: "Appetizers", Name: "Spring Rolls (2)", Price: 7.50, Description: "Crispy rolls with pork, taro and glass noodles"},
		{ID: 2, Category: "Appetizers", Name: "Salad Rolls (2)", Price: 8.00, Description: "Fresh rice paper rolls with shrimp, vermicelli and herbs"},
		{ID: 3, Category: "Appetizers", Name: "Green Onion Cakes", Price: 6.75, Description: "Pan-fried flatbread with scallions and dipping sauce"},
		{ID: 4, Category: "Appetizers", Name: "Chicken Wings (8)", Price: 12.95, Description: "Fish sauce glazed wings with pickled carrot"},
		{ID: 5, Category: "Pho", Name: "Pho Dac Biet", Price: 16.50, Description: "House special with rare beef, brisket, tendon and tripe"},
		{ID: 6, Category: "Pho", Name: "Pho Tai", Price: 14.95, Description: "Rare beef rice noodle soup"},
		{ID: 7, Category: "Pho", Name: "Pho Ga", Price: 14.50, Description: "Chicken rice noodle soup"},
		{ID: 8, Category: "Pho", Name: "Pho Chay", Price: 13.95, Description: "Vegetable broth with tofu and seasonal vegetables"},
		{ID: 9, Category: "Vermicelli Bowls", Name: "Bun Thit Nuong", Price: 15.50, Description: "Grilled lemongrass pork over vermicelli"},
		{ID: 10, Category: "Vermicelli Bowls", Name: "Bun Ga Nuong", Price: 15.50, Description: "Grilled chicken over vermicelli"},
		{ID: 11, Category: "Vermicelli Bowls", Name: "Bun Tom Cha Gio", Price: 16.95, Description: "Grilled shrimp and spring rolls over vermicelli"},
		{ID: 12, Category: "Rice Plates", Name: "Com Suon Nuong", Price: 16.25, Description: "Grilled pork chop on broken rice with fried egg"},
		{ID: 13, Category: "Rice Plates", Name: "Com Ga Xao Sa Ot", Price: 15.75, Description: "Lemongrass chili chicken stir fry on rice"},
		{ID: 14, Category: "Drinks", Name: "Vietnamese Iced Coffee", Price: 5.00, Description: "Dark roast drip coffee with condensed milk"},
		{ID: 15, Category: "Drinks", Name: "Fresh Young Coconut", Price: 5.50, Description: "Served chilled in the shell"},
		{ID: 16, Category: "Drinks", Name: "Salted Lime Soda", Price: 4.75, Description: "House-preserved lime with soda water"},
	})
}
