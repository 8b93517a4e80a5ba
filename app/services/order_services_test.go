package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shopeasy/app/models"
	"github.com/shashiranjanraj/shopeasy/app/services"
	"github.com/shashiranjanraj/shopeasy/app/state"
	"github.com/shashiranjanraj/shopeasy/pkg/testkit"
)

func seedCart(st *state.State) {
	st.Cart.Add(models.CartItem{ProductID: 1, Name: "Mug", Price: 9.5, Quantity: 2})
	st.Cart.Add(models.CartItem{ProductID: 2, Name: "Pen", Price: 2, Quantity: 1})
}

func TestPlaceSuccessClearsCart(t *testing.T) {
	mt := testkit.NewMockTransport()
	mt.Stub("POST", "/api/orders", 201, models.Order{ID: 42, Total: 21, Status: "pending"})
	defer mt.Install()()

	st := newTestState(t)
	require.NoError(t, st.Session.Establish("t1", models.User{ID: 1}))
	seedCart(st)

	orders := services.NewOrderService(st)
	order, err := orders.Place(models.OrderRequest{
		Items: st.Cart.Items(),
		Total: st.Cart.Total(),
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), order.ID)
	assert.Equal(t, 0, st.Cart.Len(), "cart is cleared only after the backend accepts")

	calls := mt.Calls("POST", "/api/orders")
	require.Len(t, calls, 1)
	assert.Equal(t, "Bearer t1", calls[0].Header.Get("Authorization"))
}

func TestPlaceFailureLeavesCartUntouched(t *testing.T) {
	mt := testkit.NewMockTransport()
	mt.Stub("POST", "/api/orders", 402, map[string]string{"message": "payment required"})
	defer mt.Install()()

	st := newTestState(t)
	require.NoError(t, st.Session.Establish("t1", models.User{ID: 1}))
	seedCart(st)

	_, err := services.NewOrderService(st).Place(models.OrderRequest{
		Items: st.Cart.Items(),
		Total: st.Cart.Total(),
	})

	var orderErr *services.OrderError
	require.True(t, errors.As(err, &orderErr))
	assert.Equal(t, 402, orderErr.Status)
	assert.Equal(t, "payment required", orderErr.Message)

	assert.Equal(t, 2, st.Cart.Len(), "rejected order must not touch the cart")
	assert.Equal(t, 1, mt.TotalCalls(), "no retry on rejection")
}

func TestPlaceUnauthenticatedStillGoesOut(t *testing.T) {
	mt := testkit.NewMockTransport()
	mt.Stub("POST", "/api/orders", 401, map[string]string{"message": "unauthorized"})
	defer mt.Install()()

	st := newTestState(t)
	seedCart(st)

	_, err := services.NewOrderService(st).Place(models.OrderRequest{
		Items: st.Cart.Items(),
		Total: st.Cart.Total(),
	})

	var orderErr *services.OrderError
	require.True(t, errors.As(err, &orderErr), "the backend, not the client, rejects anonymous orders")

	calls := mt.Calls("POST", "/api/orders")
	require.Len(t, calls, 1)
	assert.Equal(t, "Bearer ", calls[0].Header.Get("Authorization"), "empty token still goes on the wire")
}

func TestHistoryReplacesOrderCache(t *testing.T) {
	want := []models.Order{
		{ID: 1, Total: 10, Status: "delivered"},
		{ID: 2, Total: 21, Status: "pending"},
	}

	mt := testkit.NewMockTransport()
	mt.Stub("GET", "/api/orders", 200, want)
	defer mt.Install()()

	st := newTestState(t)
	require.NoError(t, st.Session.Establish("t1", models.User{ID: 1}))
	st.Orders = []models.Order{{ID: 99}}

	got, err := services.NewOrderService(st).History()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, want, st.Orders, "the local cache is replaced wholesale")
}
