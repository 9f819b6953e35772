package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wicaksn/gostore/internal/domain"
)

// OrdersRepository persists orders and their items. An order whose
// status is "cart" doubles as the user's shopping cart.
type OrdersRepository struct {
	db DBTX
}

const orderColumns = `id, user_id, status, total, created_at, updated_at`
const orderItemColumns = `id, order_id, product_id, quantity, unit_price`

func scanOrder(row interface{ Scan(dest ...any) error }) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.UserID, &o.Status, &o.Total, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts an order together with its items.
func (r *OrdersRepository) Create(ctx context.Context, order *domain.Order) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO orders (id, user_id, status, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		order.ID, order.UserID, order.Status, order.Total, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return err
	}

	for _, item := range order.Items {
		if err := r.insertItem(ctx, &item); err != nil {
			return err
		}
	}
	return nil
}

func (r *OrdersRepository) insertItem(ctx context.Context, item *domain.OrderItem) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO order_items (id, order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)`,
		item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice,
	)
	return err
}

// GetByID fetches an order with its items.
func (r *OrdersRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("table:orders: %w", err)
	}

	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetByIDForUpdate fetches an order with its items, locking the order
// row until the surrounding transaction ends. Concurrent mutations of
// the same cart serialize on this lock.
func (r *OrdersRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("table:orders: %w", err)
	}

	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// FindCartByUser returns the user's open cart, or a "table:orders"
// annotated no-rows error when none exists.
func (r *OrdersRepository) FindCartByUser(ctx context.Context, userID uuid.UUID) (*domain.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 AND status = $2`,
		userID, domain.StatusCart,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("table:orders: %w", err)
	}

	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// FindCartByUserForUpdate is FindCartByUser with a row lock.
func (r *OrdersRepository) FindCartByUserForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 AND status = $2 FOR UPDATE`,
		userID, domain.StatusCart,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("table:orders: %w", err)
	}

	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// List returns all orders, newest first, items included.
func (r *OrdersRepository) List(ctx context.Context) ([]domain.Order, error) {
	return r.listWhere(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
}

// ListByUser returns a user's orders, newest first, items included.
func (r *OrdersRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	return r.listWhere(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
}

func (r *OrdersRepository) listWhere(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for idx := range orders {
		if err := r.loadItems(ctx, &orders[idx]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *OrdersRepository) loadItems(ctx context.Context, order *domain.Order) error {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderItemColumns+` FROM order_items WHERE order_id = $1 ORDER BY id`,
		order.ID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	order.Items = []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return err
		}
		order.Items = append(order.Items, item)
	}
	return rows.Err()
}

// SaveItems replaces the order's item rows and total with the given
// in-memory state. Runs inside the caller's transaction; the delete +
// insert keeps the SQL trivial at cart sizes.
func (r *OrdersRepository) SaveItems(ctx context.Context, order *domain.Order) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, order.ID); err != nil {
		return err
	}

	for idx := range order.Items {
		if err := r.insertItem(ctx, &order.Items[idx]); err != nil {
			return err
		}
	}

	return r.UpdateStatusAndTotal(ctx, order)
}

// UpdateStatusAndTotal persists the order's status and total.
func (r *OrdersRepository) UpdateStatusAndTotal(ctx context.Context, order *domain.Order) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET status = $2, total = $3, updated_at = now() WHERE id = $1`,
		order.ID, order.Status, order.Total,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:orders: %w", errNoRows)
	}
	return nil
}

// Delete removes an order; items cascade.
func (r *OrdersRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:orders: %w", errNoRows)
	}
	return nil
}
