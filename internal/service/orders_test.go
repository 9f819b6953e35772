package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicaksn/gostore/internal/domain"
	"github.com/wicaksn/gostore/internal/errs"
)

func newOrderService(store Store, notifier Notifier) *OrderService {
	log := zerolog.Nop()
	return NewOrderService(store, notifier, &log)
}

func TestCreateOrderSnapshotsPrices(t *testing.T) {
	store := newFakeStore()
	user := store.seedUser("buyer@example.com")
	product := store.seedProduct("Keyboard", 120, 10)
	notifier := &fakeNotifier{}
	svc := newOrderService(store, notifier)

	order, err := svc.Create(context.Background(), CreateOrderInput{
		UserID: user.ID,
		Items: []CreateOrderItemInput{
			{ProductID: product.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCart, order.Status)
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.NewFromInt(120)))
	assert.True(t, order.Total.Equal(decimal.NewFromInt(240)))

	// Confirmation email enqueued after commit.
	assert.Equal(t, []uuid.UUID{order.ID}, notifier.confirmations)

	stored, err := store.orders.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
}

func TestCreateOrderUnknownUser(t *testing.T) {
	store := newFakeStore()
	svc := newOrderService(store, &fakeNotifier{})

	_, err := svc.Create(context.Background(), CreateOrderInput{UserID: uuid.New()})
	require.Error(t, err)
	assert.Empty(t, store.orders.data)
}

func TestGetOrCreateCartIsIdempotent(t *testing.T) {
	store := newFakeStore()
	user := store.seedUser("buyer@example.com")
	svc := newOrderService(store, &fakeNotifier{})

	first, err := svc.GetOrCreateCart(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCart, first.Status)
	assert.Empty(t, first.Items)

	second, err := svc.GetOrCreateCart(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, store.orders.data, 1)
}

func TestGetOrCreateCartUnknownUser(t *testing.T) {
	store := newFakeStore()
	svc := newOrderService(store, &fakeNotifier{})

	_, err := svc.GetOrCreateCart(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Empty(t, store.orders.data)
}

func TestAddItemToCart(t *testing.T) {
	store := newFakeStore()
	user := store.seedUser("buyer@example.com")
	product := store.seedProduct("Mouse", 25, 5)
	svc := newOrderService(store, &fakeNotifier{})

	cart, err := svc.GetOrCreateCart(context.Background(), user.ID)
	require.NoError(t, err)

	updated, err := svc.AddItemToCart(context.Background(), cart.ID, product.ID, 2)
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 2, updated.Items[0].Quantity)

	// Adding the same product again merges the line.
	updated, err = svc.AddItemToCart(context.Background(), cart.ID, product.ID, 1)
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 3, updated.Items[0].Quantity)
	assert.True(t, updated.Total.Equal(decimal.NewFromInt(75)))
}

func TestAddItemToPaidOrderConflicts(t *testing.T) {
	store := newFakeStore()
	user := store.seedUser("buyer@example.com")
	product := store.seedProduct("Mouse", 25, 5)
	svc := newOrderService(store, &fakeNotifier{})

	cart, err := svc.GetOrCreateCart(context.Background(), user.ID)
	require.NoError(t, err)
	_, err = svc.AddItemToCart(context.Background(), cart.ID, product.ID, 1)
	require.NoError(t, err)
	_, err = svc.ProcessPayment(context.Background(), user.ID)
	require.NoError(t, err)

	_, err = svc.AddItemToCart(context.Background(), cart.ID, product.ID, 1)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 409, httpErr.Status)
}

func TestRemoveItemFromCart(t *testing.T) {
	store := newFakeStore()
	user := store.seedUser("buyer@example.com")
	product := store.seedProduct("Mouse", 25, 5)
	svc := newOrderService(store, &fakeNotifier{})

	cart, err := svc.GetOrCreateCart(context.Background(), user.ID)
	require.NoError(t, err)
	_, err = svc.AddItemToCart(context.Background(), cart.ID, product.ID, 2)
	require.NoError(t, err)

	updated, err := svc.RemoveItemFromCart(context.Background(), user.ID, product.ID)
	require.NoError(t, err)
	assert.Empty(t, updated.Items)
	assert.True(t, updated.Total.IsZero())
}

func TestRemoveItemNotInCartReturns404(t *testing.T) {
	store := newFakeStore()
	user := store.seedUser("buyer@example.com")
	svc := newOrderService(store, &fakeNotifier{})

	_, err := svc.GetOrCreateCart(context.Background(), user.ID)
	require.NoError(t, err)

	_, err = svc.RemoveItemFromCart(context.Background(), user.ID, uuid.New())

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Status)
}

func TestProcessPayment(t *testing.T) {
	store := newFakeStore()
	user := store.seedUser("buyer@example.com")
	product := store.seedProduct("Monitor", 300, 4)
	notifier := &fakeNotifier{}
	svc := newOrderService(store, notifier)

	cart, err := svc.GetOrCreateCart(context.Background(), user.ID)
	require.NoError(t, err)
	_, err = svc.AddItemToCart(context.Background(), cart.ID, product.ID, 3)
	require.NoError(t, err)

	payment, err := svc.ProcessPayment(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentCompleted, payment.Status)
	assert.True(t, payment.Amount.Equal(decimal.NewFromInt(900)))

	paid, err := store.orders.GetByID(context.Background(), cart.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, paid.Status)

	restocked, err := store.products.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, restocked.Stock)

	assert.Equal(t, []uuid.UUID{cart.ID}, notifier.receipts)
}

func TestProcessPaymentEmptyCart(t *testing.T) {
	store := newFakeStore()
	user := store.seedUser("buyer@example.com")
	svc := newOrderService(store, &fakeNotifier{})

	_, err := svc.GetOrCreateCart(context.Background(), user.ID)
	require.NoError(t, err)

	_, err = svc.ProcessPayment(context.Background(), user.ID)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Status)
}

func TestProcessPaymentInsufficientStock(t *testing.T) {
	store := newFakeStore()
	user := store.seedUser("buyer@example.com")
	product := store.seedProduct("Monitor", 300, 2)
	notifier := &fakeNotifier{}
	svc := newOrderService(store, notifier)

	cart, err := svc.GetOrCreateCart(context.Background(), user.ID)
	require.NoError(t, err)
	_, err = svc.AddItemToCart(context.Background(), cart.ID, product.ID, 3)
	require.NoError(t, err)

	_, err = svc.ProcessPayment(context.Background(), user.ID)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 409, httpErr.Status)

	// Nothing committed: cart still open, stock untouched, no receipt.
	open, getErr := store.orders.GetByID(context.Background(), cart.ID)
	require.NoError(t, getErr)
	assert.Equal(t, domain.StatusCart, open.Status)

	p, getErr := store.products.GetByID(context.Background(), product.ID)
	require.NoError(t, getErr)
	assert.Equal(t, 2, p.Stock)

	assert.Empty(t, notifier.receipts)
}

func TestProcessPaymentNoCart(t *testing.T) {
	store := newFakeStore()
	user := store.seedUser("buyer@example.com")
	svc := newOrderService(store, &fakeNotifier{})

	_, err := svc.ProcessPayment(context.Background(), user.ID)
	require.Error(t, err)
}

func TestProcessPaymentNotifierFailureDoesNotFailPayment(t *testing.T) {
	store := newFakeStore()
	user := store.seedUser("buyer@example.com")
	product := store.seedProduct("Cable", 5, 10)
	notifier := &fakeNotifier{failWith: assert.AnError}
	svc := newOrderService(store, notifier)

	cart, err := svc.GetOrCreateCart(context.Background(), user.ID)
	require.NoError(t, err)
	_, err = svc.AddItemToCart(context.Background(), cart.ID, product.ID, 1)
	require.NoError(t, err)

	payment, err := svc.ProcessPayment(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, payment.Status)
}

func TestDeleteOrder(t *testing.T) {
	store := newFakeStore()
	user := store.seedUser("buyer@example.com")
	svc := newOrderService(store, &fakeNotifier{})

	cart, err := svc.GetOrCreateCart(context.Background(), user.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), cart.ID))

	_, err = svc.Get(context.Background(), cart.ID)
	require.Error(t, err)
}

func TestListByUser(t *testing.T) {
	store := newFakeStore()
	user := store.seedUser("buyer@example.com")
	other := store.seedUser("other@example.com")
	svc := newOrderService(store, &fakeNotifier{})

	_, err := svc.GetOrCreateCart(context.Background(), user.ID)
	require.NoError(t, err)
	_, err = svc.GetOrCreateCart(context.Background(), other.ID)
	require.NoError(t, err)

	orders, err := svc.ListByUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, user.ID, orders[0].UserID)
}
