package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable item. Stock is decremented when an order
// containing the product is paid, never when it sits in a cart.
type Product struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	SKU         string          `json:"sku" db:"sku"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Category    string          `json:"category" db:"category"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Stock       int             `json:"stock" db:"stock"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// InStock reports whether the requested quantity can be fulfilled.
func (p Product) InStock(quantity int) bool {
	return quantity > 0 && p.Stock >= quantity
}
