package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Report row shapes. These are produced by raw aggregate SQL in the
// reports repository and returned to the client as-is; there is no
// backing table for any of them.

// MonthlySales is revenue and order count grouped by calendar month.
type MonthlySales struct {
	Year       int             `json:"year" db:"year"`
	Month      int             `json:"month" db:"month"`
	OrderCount int             `json:"order_count" db:"order_count"`
	Revenue    decimal.Decimal `json:"revenue" db:"revenue"`
}

// BoardStats is the dashboard counter block.
type BoardStats struct {
	TotalUsers    int             `json:"total_users" db:"total_users"`
	TotalProducts int             `json:"total_products" db:"total_products"`
	TotalOrders   int             `json:"total_orders" db:"total_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue" db:"total_revenue"`
}

// TopProduct is a product ranked by units sold across paid orders.
type TopProduct struct {
	ProductID uuid.UUID       `json:"product_id" db:"product_id"`
	Name      string          `json:"name" db:"name"`
	UnitsSold int             `json:"units_sold" db:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue" db:"revenue"`
}

// LowStockProduct is a product whose stock is at or below threshold.
type LowStockProduct struct {
	ProductID uuid.UUID `json:"product_id" db:"product_id"`
	SKU       string    `json:"sku" db:"sku"`
	Name      string    `json:"name" db:"name"`
	Stock     int       `json:"stock" db:"stock"`
}

// TopSpender is a user ranked by completed payment volume.
type TopSpender struct {
	UserID     uuid.UUID       `json:"user_id" db:"user_id"`
	Email      string          `json:"email" db:"email"`
	OrderCount int             `json:"order_count" db:"order_count"`
	TotalSpent decimal.Decimal `json:"total_spent" db:"total_spent"`
}
