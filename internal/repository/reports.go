package repository

import (
	"context"

	"github.com/wicaksn/gostore/internal/domain"
)

// ReportsRepository is the raw-SQL reporting layer: parameterless
// aggregate reads that never touch the entity repositories. Each query
// returns rows mapped straight into a report shape.
type ReportsRepository struct {
	db DBTX
}

// MonthlySales returns revenue and order counts grouped by month over
// paid orders.
func (r *ReportsRepository) MonthlySales(ctx context.Context) ([]domain.MonthlySales, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			EXTRACT(YEAR FROM o.created_at)::int  AS year,
			EXTRACT(MONTH FROM o.created_at)::int AS month,
			COUNT(*)::int                         AS order_count,
			COALESCE(SUM(o.total), 0)             AS revenue
		FROM orders o
		WHERE o.status = 'paid'
		GROUP BY 1, 2
		ORDER BY 1, 2`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.MonthlySales{}
	for rows.Next() {
		var row domain.MonthlySales
		if err := rows.Scan(&row.Year, &row.Month, &row.OrderCount, &row.Revenue); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// BoardStats returns the dashboard counter block in a single query.
func (r *ReportsRepository) BoardStats(ctx context.Context) (*domain.BoardStats, error) {
	row := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users)::int    AS total_users,
			(SELECT COUNT(*) FROM products)::int AS total_products,
			(SELECT COUNT(*) FROM orders)::int   AS total_orders,
			(SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = 'completed') AS total_revenue`)

	var stats domain.BoardStats
	if err := row.Scan(&stats.TotalUsers, &stats.TotalProducts, &stats.TotalOrders, &stats.TotalRevenue); err != nil {
		return nil, err
	}
	return &stats, nil
}

// TopProducts returns the five best sellers by units sold across paid
// orders.
func (r *ReportsRepository) TopProducts(ctx context.Context) ([]domain.TopProduct, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			p.id,
			p.name,
			SUM(oi.quantity)::int                     AS units_sold,
			COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS revenue
		FROM order_items oi
		JOIN orders o   ON o.id = oi.order_id AND o.status = 'paid'
		JOIN products p ON p.id = oi.product_id
		GROUP BY p.id, p.name
		ORDER BY units_sold DESC, revenue DESC
		LIMIT 5`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.TopProduct{}
	for rows.Next() {
		var row domain.TopProduct
		if err := rows.Scan(&row.ProductID, &row.Name, &row.UnitsSold, &row.Revenue); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// LowStock returns products whose stock is at or below threshold.
func (r *ReportsRepository) LowStock(ctx context.Context, threshold int) ([]domain.LowStockProduct, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, sku, name, stock
		FROM products
		WHERE stock <= $1
		ORDER BY stock, name`, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.LowStockProduct{}
	for rows.Next() {
		var row domain.LowStockProduct
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.Name, &row.Stock); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopSpenders returns the five users with the highest completed
// payment volume.
func (r *ReportsRepository) TopSpenders(ctx context.Context) ([]domain.TopSpender, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			u.id,
			u.email,
			COUNT(pay.id)::int            AS order_count,
			COALESCE(SUM(pay.amount), 0)  AS total_spent
		FROM payments pay
		JOIN orders o ON o.id = pay.order_id
		JOIN users u  ON u.id = o.user_id
		WHERE pay.status = 'completed'
		GROUP BY u.id, u.email
		ORDER BY total_spent DESC
		LIMIT 5`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.TopSpender{}
	for rows.Next() {
		var row domain.TopSpender
		if err := rows.Scan(&row.UserID, &row.Email, &row.OrderCount, &row.TotalSpent); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
