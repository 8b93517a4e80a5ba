package services

import (
	"fmt"

	"github.com/shashiranjanraj/shopeasy/app/models"
	"github.com/shashiranjanraj/shopeasy/app/state"
	"github.com/shashiranjanraj/shopeasy/config"
	"github.com/shashiranjanraj/shopeasy/pkg/event"
	"github.com/shashiranjanraj/shopeasy/pkg/http"
)

// OrderService places orders and retrieves order history.
type OrderService struct {
	state *state.State
}

func NewOrderService(st *state.State) *OrderService {
	return &OrderService{state: st}
}

// Place submits the order with whatever token is persisted. Authentication
// is not enforced locally — an unauthenticated attempt goes out and the
// backend rejects it.
//
// On success the local cart is cleared unconditionally; on failure it is left
// untouched. There is no compensating action beyond that.
func (s *OrderService) Place(req models.OrderRequest) (models.Order, error) {
	resp, err := http.Post(config.APIBaseURL() + "/api/orders").
		Bearer(s.state.Session.Token()).
		Body(req).
		Send()
	if err != nil {
		return models.Order{}, fmt.Errorf("orders: place: %w", err)
	}

	if !resp.OK() {
		return models.Order{}, &OrderError{
			Status:  resp.StatusCode,
			Message: resp.Message("Order placement failed"),
		}
	}

	var order models.Order
	if err := resp.JSON(&order); err != nil {
		// The order went through; only the response body was unreadable.
		// The cart is still cleared — clear-on-success, no read-back.
		s.state.Cart.Clear()
		event.Fire(EventCartUpdated, 0)
		return models.Order{}, fmt.Errorf("orders: place: %w", err)
	}

	s.state.Cart.Clear()
	event.Fire(EventCartUpdated, 0)
	return order, nil
}

// History fetches all orders for the current token and replaces the local
// order cache wholesale.
func (s *OrderService) History() ([]models.Order, error) {
	resp, err := http.Get(config.APIBaseURL() + "/api/orders").
		Bearer(s.state.Session.Token()).
		Send()
	if err != nil {
		return nil, fmt.Errorf("orders: history: %w", err)
	}

	var orders []models.Order
	if err := resp.JSON(&orders); err != nil {
		return nil, fmt.Errorf("orders: history: %w", err)
	}

	s.state.Orders = orders
	return orders, nil
}
