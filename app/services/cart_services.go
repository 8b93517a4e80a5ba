package services

import (
	"fmt"

	"github.com/shashiranjanraj/shopeasy/app/models"
	"github.com/shashiranjanraj/shopeasy/app/state"
	"github.com/shashiranjanraj/shopeasy/config"
	"github.com/shashiranjanraj/shopeasy/pkg/event"
	"github.com/shashiranjanraj/shopeasy/pkg/http"
	"github.com/shashiranjanraj/shopeasy/pkg/logger"
	"github.com/shashiranjanraj/shopeasy/pkg/metrics"
)

// EventCartUpdated fires after every cart mutation with the new line count as
// payload. The presentation layer reads it to refresh the cart badge.
const EventCartUpdated = "cart.updated"

// CartService mutates the local cart and mirrors it to the backend.
//
// The mirror is best-effort and push-only: the whole current cart is sent,
// responses are never read back for reconciliation, nothing is retried, and
// two rapid mutations may race at the network so a slow response can land a
// stale snapshot. That is the accepted consistency model — last write wins.
type CartService struct {
	state *state.State
}

func NewCartService(st *state.State) *CartService {
	return &CartService{state: st}
}

// Add appends item to the cart, mirrors, and announces the new count.
// Duplicate products are kept as separate lines.
//
// The returned error is the mirror outcome only — the local mutation has
// already happened, the failure was logged, and callers are free to ignore it.
func (s *CartService) Add(item models.CartItem) error {
	s.state.Cart.Add(item)
	err := s.mirror()
	event.Fire(EventCartUpdated, s.state.Cart.Len())
	return err
}

// Remove drops every line matching productID, mirrors, and announces the new
// count. Same failure policy as Add.
func (s *CartService) Remove(productID uint) error {
	s.state.Cart.RemoveByProduct(productID)
	err := s.mirror()
	event.Fire(EventCartUpdated, s.state.Cart.Len())
	return err
}

// mirror pushes the whole current cart to the backend. It no-ops entirely —
// zero network calls — when no session token exists: anonymous carts are
// never persisted remotely.
func (s *CartService) mirror() error {
	token := s.state.Session.Token()
	if token == "" {
		return nil
	}

	resp, err := http.Post(config.APIBaseURL() + "/api/cart/sync").
		Bearer(token).
		Body(s.state.Cart.Items()).
		Send()
	if err == nil && !resp.OK() {
		err = fmt.Errorf("cart: sync rejected with status %d", resp.StatusCode)
	}
	if err != nil {
		metrics.CartSyncFailures.Inc()
		logger.Warn("cart: sync failed", "error", err)
		return err
	}
	return nil
}
