package models

// OrderRequest is the order placement payload: the cart lines at checkout
// time plus their computed total.
type OrderRequest struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

// Order is an order record as returned by the backend. Pass-through; the
// client does not validate its shape.
type Order struct {
	ID        uint       `json:"id"`
	Items     []CartItem `json:"items,omitempty"`
	Total     float64    `json:"total"`
	Status    string     `json:"status,omitempty"`
	CreatedAt string     `json:"createdAt,omitempty"`
}
