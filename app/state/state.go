// Package state defines the application-state handle shared by all flows.
//
// There is no ambient singleton: whichever composition root boots the client
// (the CLI, a test) constructs one State and injects it into each service.
// Its lifecycle is explicit — created at session start, session part reset by
// logout, cart reset by process restart or a successful order.
package state

import (
	"github.com/shashiranjanraj/shopeasy/app/models"
	"github.com/shashiranjanraj/shopeasy/pkg/session"
)

// State is the single shared mutable record of a client session.
type State struct {
	Session *session.Store
	Cart    *models.Cart

	// Products and Orders are full-replacement caches: each listing call
	// overwrites them wholesale. No eviction, no partial updates.
	Products []models.Product
	Orders   []models.Order
}

// New builds a State around an established session store and an empty cart.
func New(sess *session.Store) *State {
	return &State{
		Session: sess,
		Cart:    models.NewCart(),
	}
}
