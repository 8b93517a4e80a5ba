package models_test

import (
	"testing"

	"github.com/shashiranjanraj/shopeasy/app/models"
)

func TestCalculateTotal(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 1, Price: 10, Quantity: 2},
		{ProductID: 2, Price: 5, Quantity: 1},
	}
	if got := models.CalculateTotal(items); got != 25 {
		t.Errorf("expected total 25, got %v", got)
	}
	if got := models.CalculateTotal(nil); got != 0 {
		t.Errorf("expected empty total 0, got %v", got)
	}
}

func TestCartKeepsDuplicateLines(t *testing.T) {
	c := models.NewCart()
	item := models.CartItem{ProductID: 1, Name: "mug", Price: 9.5, Quantity: 1}

	c.Add(item)
	c.Add(item)

	items := c.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines (no merge), got %d", len(items))
	}
	if items[0] != items[1] {
		t.Errorf("expected two identical lines, got %+v and %+v", items[0], items[1])
	}
}

func TestCartRemoveByProduct(t *testing.T) {
	c := models.NewCart()
	c.Add(models.CartItem{ProductID: 1})
	c.Add(models.CartItem{ProductID: 2})
	c.Add(models.CartItem{ProductID: 1})

	c.RemoveByProduct(1)

	items := c.Items()
	if len(items) != 1 || items[0].ProductID != 2 {
		t.Errorf("expected only product 2 to remain, got %+v", items)
	}

	// Removing an absent product changes nothing.
	c.RemoveByProduct(99)
	if c.Len() != 1 {
		t.Errorf("expected cart untouched, got %d lines", c.Len())
	}
}

func TestCartClear(t *testing.T) {
	c := models.NewCart()
	c.Add(models.CartItem{ProductID: 1, Price: 3, Quantity: 4})
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("expected empty cart after Clear, got %d lines", c.Len())
	}
	if c.Total() != 0 {
		t.Errorf("expected zero total after Clear, got %v", c.Total())
	}
}

func TestItemFromProduct(t *testing.T) {
	p := models.Product{ID: 7, Name: "lamp", Price: 19.99}

	item := models.ItemFromProduct(p, 3)
	if item.ProductID != 7 || item.Quantity != 3 || item.Price != 19.99 {
		t.Errorf("unexpected item: %+v", item)
	}

	// Quantity is clamped to at least 1.
	if got := models.ItemFromProduct(p, 0).Quantity; got != 1 {
		t.Errorf("expected quantity clamp to 1, got %d", got)
	}
}
