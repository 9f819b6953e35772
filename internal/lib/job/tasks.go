package job

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
)

// Task type names stored in Redis. Asynq routes tasks to handlers by
// these strings.
const (
	TaskOrderConfirmation = "email:order_confirmation"
	TaskPaymentReceipt    = "email:payment_receipt"
	TaskLowStockScan      = "stock:scan"
)

// OrderEmailPayload is the JSON payload for both order email tasks.
// Amount is the decimal rendered as a string so the payload survives
// serialization without float rounding.
type OrderEmailPayload struct {
	To      string `json:"to"`
	Name    string `json:"name"`
	OrderID string `json:"order_id"`
	Amount  string `json:"amount"`
}

// NewOrderConfirmationTask builds the order confirmation email task.
func NewOrderConfirmationTask(to, name string, orderID uuid.UUID, total decimal.Decimal) (*asynq.Task, error) {
	payload, err := json.Marshal(OrderEmailPayload{
		To:      to,
		Name:    name,
		OrderID: orderID.String(),
		Amount:  total.StringFixed(2),
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskOrderConfirmation,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("critical"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewPaymentReceiptTask builds the payment receipt email task.
func NewPaymentReceiptTask(to, name string, orderID uuid.UUID, amount decimal.Decimal) (*asynq.Task, error) {
	payload, err := json.Marshal(OrderEmailPayload{
		To:      to,
		Name:    name,
		OrderID: orderID.String(),
		Amount:  amount.StringFixed(2),
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskPaymentReceipt,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("critical"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewLowStockScanTask builds the recurring inventory scan task. It
// carries no payload; the handler queries current stock itself.
func NewLowStockScanTask() *asynq.Task {
	return asynq.NewTask(
		TaskLowStockScan,
		nil,
		asynq.MaxRetry(1),
		asynq.Queue("low"),
		asynq.Timeout(time.Minute),
	)
}

// EnqueueOrderConfirmation pushes an order confirmation email task.
func (j *JobService) EnqueueOrderConfirmation(to, name string, orderID uuid.UUID, total decimal.Decimal) error {
	task, err := NewOrderConfirmationTask(to, name, orderID, total)
	if err != nil {
		return err
	}
	_, err = j.Client.Enqueue(task)
	return err
}

// EnqueuePaymentReceipt pushes a payment receipt email task.
func (j *JobService) EnqueuePaymentReceipt(to, name string, orderID uuid.UUID, amount decimal.Decimal) error {
	task, err := NewPaymentReceiptTask(to, name, orderID, amount)
	if err != nil {
		return err
	}
	_, err = j.Client.Enqueue(task)
	return err
}

// enqueueLowStockScan is the cron callback.
func (j *JobService) enqueueLowStockScan() {
	if _, err := j.Client.Enqueue(NewLowStockScanTask()); err != nil {
		j.logger.Error().Err(err).Msg("Failed to enqueue low stock scan")
	}
}
