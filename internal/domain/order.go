// Package domain holds the store's core entities and the rules that
// keep them consistent: order status transitions, cart mutation guards,
// and total computation.
//
// Entities map 1:1 onto database rows; the DTO types next to them are
// the shapes exposed at the HTTP boundary.
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrOrderNotModifiable is returned when items are added to or removed
	// from an order that already left the cart status.
	ErrOrderNotModifiable = errors.New("order can no longer be modified")

	// ErrOrderEmpty is returned when payment is attempted on a cart
	// without items.
	ErrOrderEmpty = errors.New("order has no items")

	// ErrOrderAlreadyPaid is returned when payment is attempted twice.
	ErrOrderAlreadyPaid = errors.New("order is already paid")

	// ErrInvalidQuantity is returned for zero or negative quantities.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInsufficientStock is returned when payment would drive a
	// product's stock below zero.
	ErrInsufficientStock = errors.New("insufficient product stock")

	// ErrItemNotInCart is returned when removing a product the cart does
	// not contain.
	ErrItemNotInCart = errors.New("product is not in the cart")
)

// OrderStatus is the lifecycle state of an order.
//
// An order starts as a mutable cart and becomes immutable once payment
// is processed.
type OrderStatus string

const (
	StatusCart            OrderStatus = "cart"
	StatusAwaitingPayment OrderStatus = "awaiting_payment"
	StatusPaid            OrderStatus = "paid"
	StatusCancelled       OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusCart, StatusAwaitingPayment, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// Mutable reports whether items may still be added or removed.
func (s OrderStatus) Mutable() bool {
	return s == StatusCart
}

// Order is an order row together with its items. While Status is
// "cart" it acts as the user's shopping cart.
type Order struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	UserID    uuid.UUID       `json:"user_id" db:"user_id"`
	Status    OrderStatus     `json:"status" db:"status"`
	Total     decimal.Decimal `json:"total" db:"total"`
	Items     []OrderItem     `json:"items"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// OrderItem links a product to an order with a quantity. UnitPrice is
// snapshotted from the product at the time the item enters the cart so
// later price changes do not rewrite history.
type OrderItem struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	OrderID   uuid.UUID       `json:"order_id" db:"order_id"`
	ProductID uuid.UUID       `json:"product_id" db:"product_id"`
	Quantity  int             `json:"quantity" db:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price" db:"unit_price"`
}

// Subtotal is the line total for this item.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ComputeTotal sums the line subtotals.
func (o *Order) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// AddItem merges a product into the order's items: an existing line for
// the same product gets its quantity bumped, otherwise a new line is
// appended. The order total is recomputed.
func (o *Order) AddItem(productID uuid.UUID, quantity int, unitPrice decimal.Decimal) error {
	if !o.Status.Mutable() {
		return ErrOrderNotModifiable
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	for idx := range o.Items {
		if o.Items[idx].ProductID == productID {
			o.Items[idx].Quantity += quantity
			o.Total = o.ComputeTotal()
			return nil
		}
	}

	o.Items = append(o.Items, OrderItem{
		ID:        uuid.New(),
		OrderID:   o.ID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	})
	o.Total = o.ComputeTotal()
	return nil
}

// RemoveItem drops the line for productID entirely.
func (o *Order) RemoveItem(productID uuid.UUID) error {
	if !o.Status.Mutable() {
		return ErrOrderNotModifiable
	}

	for idx := range o.Items {
		if o.Items[idx].ProductID == productID {
			o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
			o.Total = o.ComputeTotal()
			return nil
		}
	}
	return ErrItemNotInCart
}

// MarkPaid transitions the order out of the cart state. It refuses
// empty carts and double payment.
func (o *Order) MarkPaid() error {
	if o.Status == StatusPaid {
		return ErrOrderAlreadyPaid
	}
	if !o.Status.Mutable() && o.Status != StatusAwaitingPayment {
		return ErrOrderNotModifiable
	}
	if len(o.Items) == 0 {
		return ErrOrderEmpty
	}

	o.Total = o.ComputeTotal()
	o.Status = StatusPaid
	return nil
}

// NewCart creates an empty cart order for a user.
func NewCart(userID uuid.UUID) *Order {
	now := time.Now().UTC()
	return &Order{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    StatusCart,
		Total:     decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
