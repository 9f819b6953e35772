package email

import "fmt"

// SendOrderConfirmation notifies a customer that their order was placed.
func (c *Client) SendOrderConfirmation(to, name, orderID, total string) error {
	data := map[string]string{
		"CustomerName": name,
		"OrderID":      orderID,
		"OrderTotal":   total,
	}

	return c.SendEmail(
		to,
		"Your order has been placed",
		TemplateOrderConfirmation,
		data,
	)
}

// SendPaymentReceipt sends a receipt after a successful payment.
func (c *Client) SendPaymentReceipt(to, name, orderID, amount string) error {
	data := map[string]string{
		"CustomerName": name,
		"OrderID":      orderID,
		"Amount":       amount,
	}

	return c.SendEmail(
		to,
		"Payment received",
		TemplatePaymentReceipt,
		data,
	)
}

// SendLowStockAlert notifies store staff about products running low.
func (c *Client) SendLowStockAlert(to string, products []LowStockItem) error {
	data := map[string]string{
		"ProductList": formatLowStockList(products),
	}

	return c.SendEmail(
		to,
		"Low stock alert",
		TemplateLowStockAlert,
		data,
	)
}

// LowStockItem is one product line in the low stock alert email.
type LowStockItem struct {
	Name  string
	SKU   string
	Stock int
}

func formatLowStockList(products []LowStockItem) string {
	var out string
	for i, p := range products {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s (%s): %d left", p.Name, p.SKU, p.Stock)
	}
	return out
}
