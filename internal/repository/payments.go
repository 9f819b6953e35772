package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wicaksn/gostore/internal/domain"
)

// PaymentsRepository persists payments. The unique constraint on
// order_id makes a second payment for the same order a UniqueViolation
// rather than a silent duplicate.
type PaymentsRepository struct {
	db DBTX
}

const paymentColumns = `id, order_id, amount, status, created_at`

// Create inserts a payment.
func (r *PaymentsRepository) Create(ctx context.Context, payment *domain.Payment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO payments (id, order_id, amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		payment.ID, payment.OrderID, payment.Amount, payment.Status, payment.CreatedAt,
	)
	return err
}

// GetByOrderID fetches the payment settled against an order.
func (r *PaymentsRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Payment, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE order_id = $1`, orderID)

	var p domain.Payment
	if err := row.Scan(&p.ID, &p.OrderID, &p.Amount, &p.Status, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("table:payments: %w", err)
	}
	return &p, nil
}
