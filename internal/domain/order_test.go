package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemMergesExistingLine(t *testing.T) {
	cart := NewCart(uuid.New())
	productID := uuid.New()
	price := decimal.NewFromInt(10)

	require.NoError(t, cart.AddItem(productID, 2, price))
	require.NoError(t, cart.AddItem(productID, 3, price))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.True(t, cart.Total.Equal(decimal.NewFromInt(50)))
}

func TestAddItemRejectsBadQuantity(t *testing.T) {
	cart := NewCart(uuid.New())

	assert.ErrorIs(t, cart.AddItem(uuid.New(), 0, decimal.NewFromInt(1)), ErrInvalidQuantity)
	assert.ErrorIs(t, cart.AddItem(uuid.New(), -3, decimal.NewFromInt(1)), ErrInvalidQuantity)
	assert.Empty(t, cart.Items)
}

func TestAddItemRejectsPaidOrder(t *testing.T) {
	cart := NewCart(uuid.New())
	require.NoError(t, cart.AddItem(uuid.New(), 1, decimal.NewFromInt(5)))
	require.NoError(t, cart.MarkPaid())

	assert.ErrorIs(t, cart.AddItem(uuid.New(), 1, decimal.NewFromInt(5)), ErrOrderNotModifiable)
}

func TestRemoveItem(t *testing.T) {
	cart := NewCart(uuid.New())
	keep := uuid.New()
	drop := uuid.New()
	require.NoError(t, cart.AddItem(keep, 1, decimal.NewFromInt(10)))
	require.NoError(t, cart.AddItem(drop, 2, decimal.NewFromInt(20)))

	require.NoError(t, cart.RemoveItem(drop))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, keep, cart.Items[0].ProductID)
	assert.True(t, cart.Total.Equal(decimal.NewFromInt(10)))
}

func TestRemoveItemNotInCart(t *testing.T) {
	cart := NewCart(uuid.New())

	assert.ErrorIs(t, cart.RemoveItem(uuid.New()), ErrItemNotInCart)
}

func TestMarkPaid(t *testing.T) {
	cart := NewCart(uuid.New())
	require.NoError(t, cart.AddItem(uuid.New(), 2, decimal.NewFromFloat(9.99)))

	require.NoError(t, cart.MarkPaid())

	assert.Equal(t, StatusPaid, cart.Status)
	assert.True(t, cart.Total.Equal(decimal.NewFromFloat(19.98)))
}

func TestMarkPaidEmptyCart(t *testing.T) {
	cart := NewCart(uuid.New())

	assert.ErrorIs(t, cart.MarkPaid(), ErrOrderEmpty)
	assert.Equal(t, StatusCart, cart.Status)
}

func TestMarkPaidTwice(t *testing.T) {
	cart := NewCart(uuid.New())
	require.NoError(t, cart.AddItem(uuid.New(), 1, decimal.NewFromInt(3)))
	require.NoError(t, cart.MarkPaid())

	assert.ErrorIs(t, cart.MarkPaid(), ErrOrderAlreadyPaid)
}

func TestMarkPaidCancelledOrder(t *testing.T) {
	cart := NewCart(uuid.New())
	require.NoError(t, cart.AddItem(uuid.New(), 1, decimal.NewFromInt(3)))
	cart.Status = StatusCancelled

	assert.ErrorIs(t, cart.MarkPaid(), ErrOrderNotModifiable)
}

func TestStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{StatusCart, StatusAwaitingPayment, StatusPaid, StatusCancelled} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, OrderStatus("shipped").Valid())
}

func TestComputeTotal(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{Quantity: 3, UnitPrice: decimal.NewFromFloat(1.50)},
			{Quantity: 1, UnitPrice: decimal.NewFromFloat(0.25)},
		},
	}

	assert.True(t, order.ComputeTotal().Equal(decimal.NewFromFloat(4.75)))
}
