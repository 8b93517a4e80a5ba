package models

// Product is a catalogue record. The client treats it as a pass-through
// payload; only id and price participate in any local computation.
type Product struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock,omitempty"`
	SKU         string  `json:"sku,omitempty"`
}
