package email

// Template names an embedded email template under templates/.
type Template string

const (
	// TemplateOrderConfirmation corresponds to templates/order_confirmation.html
	TemplateOrderConfirmation Template = "order_confirmation"

	// TemplatePaymentReceipt corresponds to templates/payment_receipt.html
	TemplatePaymentReceipt Template = "payment_receipt"

	// TemplateLowStockAlert corresponds to templates/low_stock_alert.html
	TemplateLowStockAlert Template = "low_stock_alert"
)
