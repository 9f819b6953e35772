package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/wicaksn/gostore/internal/domain"
	"github.com/wicaksn/gostore/internal/lib/email"
)

// LowStockLister exposes the inventory query the scan handler needs.
// The report service satisfies it.
type LowStockLister interface {
	LowStock(ctx context.Context) ([]domain.LowStockProduct, error)
}

// handleOrderConfirmationTask sends the order confirmation email.
// Returning an error makes asynq mark the task failed and retry.
func (j *JobService) handleOrderConfirmationTask(ctx context.Context, t *asynq.Task) error {
	var p OrderEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal order confirmation payload: %w", err)
	}

	j.logger.Info().
		Str("type", "order_confirmation").
		Str("to", p.To).
		Str("order_id", p.OrderID).
		Msg("Processing order confirmation email task")

	if err := j.email.SendOrderConfirmation(p.To, p.Name, p.OrderID, p.Amount); err != nil {
		j.logger.Error().
			Str("type", "order_confirmation").
			Str("to", p.To).
			Err(err).
			Msg("Failed to send order confirmation email")
		return err
	}

	return nil
}

// handlePaymentReceiptTask sends the payment receipt email.
func (j *JobService) handlePaymentReceiptTask(ctx context.Context, t *asynq.Task) error {
	var p OrderEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal payment receipt payload: %w", err)
	}

	j.logger.Info().
		Str("type", "payment_receipt").
		Str("to", p.To).
		Str("order_id", p.OrderID).
		Msg("Processing payment receipt email task")

	if err := j.email.SendPaymentReceipt(p.To, p.Name, p.OrderID, p.Amount); err != nil {
		j.logger.Error().
			Str("type", "payment_receipt").
			Str("to", p.To).
			Err(err).
			Msg("Failed to send payment receipt email")
		return err
	}

	return nil
}

// handleLowStockScanTask queries inventory and emails staff when any
// product is at or below the configured threshold. A clean inventory
// produces no email.
func (j *JobService) handleLowStockScanTask(ctx context.Context, t *asynq.Task) error {
	if j.lowStock == nil {
		return fmt.Errorf("low stock scan handler not initialized")
	}

	products, err := j.lowStock.LowStock(ctx)
	if err != nil {
		j.logger.Error().Err(err).Msg("Failed to query low stock products")
		return err
	}

	if len(products) == 0 {
		j.logger.Info().Msg("Low stock scan found nothing to report")
		return nil
	}

	items := make([]email.LowStockItem, 0, len(products))
	for _, p := range products {
		items = append(items, email.LowStockItem{
			Name:  p.Name,
			SKU:   p.SKU,
			Stock: p.Stock,
		})
	}

	to := j.cfg.Store.AlertEmail
	if to == "" {
		j.logger.Warn().
			Int("count", len(products)).
			Msg("Low stock detected but no alert email configured")
		return nil
	}

	if err := j.email.SendLowStockAlert(to, items); err != nil {
		j.logger.Error().Err(err).Msg("Failed to send low stock alert")
		return err
	}

	j.logger.Info().
		Int("count", len(products)).
		Str("to", to).
		Msg("Sent low stock alert")

	return nil
}
