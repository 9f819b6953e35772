package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/wicaksn/gostore/internal/domain"
	"github.com/wicaksn/gostore/internal/errs"
)

// Notifier enqueues customer-facing emails after order events. The
// asynq job service implements it; tests use a recording fake.
type Notifier interface {
	EnqueueOrderConfirmation(to, name string, orderID uuid.UUID, total decimal.Decimal) error
	EnqueuePaymentReceipt(to, name string, orderID uuid.UUID, amount decimal.Decimal) error
}

// OrderService owns the order/cart lifecycle: CRUD, cart mutation, and
// payment processing. Multi-step flows run inside one database
// transaction with the order row locked, so concurrent mutations of
// the same cart serialize.
type OrderService struct {
	store    Store
	notifier Notifier
	logger   *zerolog.Logger
}

func NewOrderService(store Store, notifier Notifier, logger *zerolog.Logger) *OrderService {
	return &OrderService{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateOrderInput carries the validated fields for a new order.
type CreateOrderInput struct {
	UserID uuid.UUID
	Items  []CreateOrderItemInput
}

// CreateOrderItemInput is one requested line of a new order.
type CreateOrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// Create opens a new cart order for a user, optionally seeded with
// items. Unit prices are snapshotted from the catalog at creation.
func (s *OrderService) Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	var created *domain.Order

	err := s.store.WithinTransaction(ctx, func(tx Store) error {
		// The user must exist; a plain FK error would name the order.
		if _, err := tx.Users().GetByID(ctx, input.UserID); err != nil {
			return err
		}

		order := domain.NewCart(input.UserID)
		for _, item := range input.Items {
			product, err := tx.Products().GetByID(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if err := order.AddItem(product.ID, item.Quantity, product.Price); err != nil {
				return mapDomainError(err)
			}
		}

		if err := tx.Orders().Create(ctx, order); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.sendConfirmation(ctx, created)

	return created, nil
}

// Get fetches an order with its items.
func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return s.store.Orders().GetByID(ctx, id)
}

// List returns all orders.
func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.store.Orders().List(ctx)
}

// ListByUser returns a user's order history.
func (s *OrderService) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	if _, err := s.store.Users().GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.Orders().ListByUser(ctx, userID)
}

// Delete removes an order and its items.
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Orders().Delete(ctx, id)
}

// GetOrCreateCart returns the user's open cart, creating an empty one
// when none exists.
func (s *OrderService) GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*domain.Order, error) {
	cart, err := s.store.Orders().FindCartByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if _, err := s.store.Users().GetByID(ctx, userID); err != nil {
		return nil, err
	}

	cart = domain.NewCart(userID)
	if err := s.store.Orders().Create(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItemToCart adds quantity units of a product to an order that is
// still in the cart status. Re-adding a product bumps the existing
// line's quantity.
func (s *OrderService) AddItemToCart(ctx context.Context, orderID, productID uuid.UUID, quantity int) (*domain.Order, error) {
	var updated *domain.Order

	err := s.store.WithinTransaction(ctx, func(tx Store) error {
		order, err := tx.Orders().GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}

		product, err := tx.Products().GetByID(ctx, productID)
		if err != nil {
			return err
		}

		if err := order.AddItem(product.ID, quantity, product.Price); err != nil {
			return mapDomainError(err)
		}

		if err := tx.Orders().SaveItems(ctx, order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveItemFromCart drops a product line from the user's open cart.
func (s *OrderService) RemoveItemFromCart(ctx context.Context, userID, productID uuid.UUID) (*domain.Order, error) {
	var updated *domain.Order

	err := s.store.WithinTransaction(ctx, func(tx Store) error {
		cart, err := tx.Orders().FindCartByUserForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		if err := cart.RemoveItem(productID); err != nil {
			return mapDomainError(err)
		}

		if err := tx.Orders().SaveItems(ctx, cart); err != nil {
			return err
		}
		updated = cart
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ProcessPayment settles the user's open cart: the order is marked
// paid, product stock is decremented, and a payment row is written,
// all inside one transaction. The receipt email is enqueued after
// commit (best effort).
func (s *OrderService) ProcessPayment(ctx context.Context, userID uuid.UUID) (*domain.Payment, error) {
	var payment *domain.Payment
	var order *domain.Order

	err := s.store.WithinTransaction(ctx, func(tx Store) error {
		cart, err := tx.Orders().FindCartByUserForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		if err := cart.MarkPaid(); err != nil {
			return mapDomainError(err)
		}

		// Decrement stock per line; the row lock on each product keeps
		// concurrent payments from overselling.
		for _, item := range cart.Items {
			product, err := tx.Products().GetByIDForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if !product.InStock(item.Quantity) {
				return mapDomainError(domain.ErrInsufficientStock)
			}
			if err := tx.Products().AdjustStock(ctx, product.ID, -item.Quantity); err != nil {
				return err
			}
		}

		if err := tx.Orders().UpdateStatusAndTotal(ctx, cart); err != nil {
			return err
		}

		payment = domain.NewPayment(cart.ID, cart.Total)
		if err := tx.Payments().Create(ctx, payment); err != nil {
			return err
		}

		order = cart
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.sendReceipt(ctx, order, payment)

	return payment, nil
}

// sendConfirmation enqueues the order confirmation email. Failures
// are logged, never surfaced: the order already committed.
func (s *OrderService) sendConfirmation(ctx context.Context, order *domain.Order) {
	if s.notifier == nil {
		return
	}

	user, err := s.store.Users().GetByID(ctx, order.UserID)
	if err != nil {
		s.logger.Error().Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to load user for order confirmation")
		return
	}

	if err := s.notifier.EnqueueOrderConfirmation(user.Email, user.FullName(), order.ID, order.Total); err != nil {
		s.logger.Error().Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to enqueue order confirmation email")
	}
}

// sendReceipt enqueues the payment receipt email. Failures are logged,
// never surfaced: the payment already committed.
func (s *OrderService) sendReceipt(ctx context.Context, order *domain.Order, payment *domain.Payment) {
	if s.notifier == nil {
		return
	}

	user, err := s.store.Users().GetByID(ctx, order.UserID)
	if err != nil {
		s.logger.Error().Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to load user for payment receipt")
		return
	}

	if err := s.notifier.EnqueuePaymentReceipt(user.Email, user.FullName(), order.ID, payment.Amount); err != nil {
		s.logger.Error().Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to enqueue payment receipt email")
	}
}

// mapDomainError translates domain rule violations into the HTTP error
// shapes rendered by the global error funnel.
func mapDomainError(err error) error {
	switch {
	case errors.Is(err, domain.ErrOrderNotModifiable):
		return errs.NewConflictError("Order can no longer be modified", true, nil)
	case errors.Is(err, domain.ErrOrderAlreadyPaid):
		return errs.NewConflictError("Order is already paid", true, nil)
	case errors.Is(err, domain.ErrOrderEmpty):
		return errs.NewBadRequestError("Cart has no items", true, nil, nil, nil)
	case errors.Is(err, domain.ErrInvalidQuantity):
		return errs.NewBadRequestError("Quantity must be positive", true, nil, nil, nil)
	case errors.Is(err, domain.ErrInsufficientStock):
		return errs.NewConflictError("Insufficient product stock", true, nil)
	case errors.Is(err, domain.ErrItemNotInCart):
		return errs.NewNotFoundError("Product is not in the cart", true, nil)
	default:
		return err
	}
}
