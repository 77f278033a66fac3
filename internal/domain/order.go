package domain

const OrderTypePickup = "pickup"

// OrderRequest is the untrusted JSON body of POST /api/orders. Customer is a
// pointer so a missing customer object can be told apart from an empty one.
type OrderRequest struct {
	Customer *CustomerInput   `json:"customer"`
	Items    []OrderItemInput `json:"items"`
	Notes    string           `json:"notes"`
}

type CustomerInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type OrderItemInput struct {
	ID  int `json:"id"`
	Qty int `json:"qty"`
}

type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type ResolvedOrderItem struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

type Pricing struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Order is the finalized, priced record handed to the notification webhook.
// It is never persisted.
type Order struct {
	OrderID    string              `json:"order_id"`
	PlacedAt   string              `json:"placed_at"`
	Restaurant Restaurant          `json:"restaurant"`
	Customer   Customer            `json:"customer"`
	Items      []ResolvedOrderItem `json:"items"`
	Pricing    Pricing             `json:"pricing"`
	Notes      string              `json:"notes"`
	Type       string              `json:"type"`
}
