package email

import (
	"bytes"
	"fmt"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every embedded template must parse and render with its expected data
// keys, otherwise sends fail at runtime.
func TestTemplatesRender(t *testing.T) {
	tests := []struct {
		name Template
		data map[string]string
		want string
	}{
		{TemplateOrderConfirmation, map[string]string{"CustomerName": "Jane", "OrderID": "abc", "OrderTotal": "19.98"}, "19.98"},
		{TemplatePaymentReceipt, map[string]string{"CustomerName": "Jane", "OrderID": "abc", "Amount": "42.00"}, "42.00"},
		{TemplateLowStockAlert, map[string]string{"ProductList": "Cable (SKU-1): 2 left"}, "Cable"},
	}

	for _, tt := range tests {
		tmpl, err := template.ParseFS(templateFS, fmt.Sprintf("templates/%s.html", tt.name))
		require.NoError(t, err, string(tt.name))

		var body bytes.Buffer
		require.NoError(t, tmpl.Execute(&body, tt.data), string(tt.name))
		assert.Contains(t, body.String(), tt.want, string(tt.name))
	}
}

func TestFormatLowStockList(t *testing.T) {
	out := formatLowStockList([]LowStockItem{
		{Name: "Cable", SKU: "SKU-1", Stock: 2},
		{Name: "Mouse", SKU: "SKU-2", Stock: 0},
	})

	assert.Equal(t, "Cable (SKU-1): 2 left, Mouse (SKU-2): 0 left", out)
}
