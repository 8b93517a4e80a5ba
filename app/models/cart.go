package models

import (
	"sync"

	"github.com/shashiranjanraj/shopeasy/pkg/collection"
)

// CartItem is one line of the cart. The JSON shape mirrors the product record
// it came from (the id field carries the product id on the wire).
type CartItem struct {
	ProductID uint    `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// ItemFromProduct builds a cart line for qty units of p.
func ItemFromProduct(p Product, qty int) CartItem {
	if qty < 1 {
		qty = 1
	}
	return CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  qty,
	}
}

// Cart is the ordered in-memory list of line items. It starts empty every
// process start; the backend copy is a push-only mirror and is never read
// back. Adding the same product twice yields two entries — lines are not
// merged by product id.
type Cart struct {
	mu    sync.Mutex
	items []CartItem
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add appends item to the end of the cart.
func (c *Cart) Add(item CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// RemoveByProduct drops every line whose product id matches, keeping order
// of the rest.
func (c *Cart) RemoveByProduct(productID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = collection.Reject(c.items, func(i CartItem) bool {
		return i.ProductID == productID
	})
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a snapshot copy of the lines, in order.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of lines (not units).
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Total sums price × quantity across all lines.
func (c *Cart) Total() float64 {
	return CalculateTotal(c.Items())
}

// CalculateTotal sums price × quantity over an arbitrary item sequence.
func CalculateTotal(items []CartItem) float64 {
	return collection.Sum(items, func(i CartItem) float64 {
		return i.Price * float64(i.Quantity)
	})
}
