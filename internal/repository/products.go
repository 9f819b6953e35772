package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wicaksn/gostore/internal/domain"
)

// ProductsRepository persists the catalog.
type ProductsRepository struct {
	db DBTX
}

const productColumns = `id, sku, name, description, category, price, stock, created_at, updated_at`

func scanProduct(row interface{ Scan(dest ...any) error }) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.Category,
		&p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new product.
func (r *ProductsRepository) Create(ctx context.Context, product *domain.Product) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO products (id, sku, name, description, category, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		product.ID, product.SKU, product.Name, product.Description, product.Category,
		product.Price, product.Stock, product.CreatedAt, product.UpdatedAt,
	)
	return err
}

// GetByID fetches a single product.
func (r *ProductsRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	row := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	product, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("table:products: %w", err)
	}
	return product, nil
}

// GetByIDForUpdate fetches a product locking its row for the duration
// of the surrounding transaction. Used by payment processing so stock
// decrements cannot race.
func (r *ProductsRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	row := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
	product, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("table:products: %w", err)
	}
	return product, nil
}

// List returns all products ordered by name.
func (r *ProductsRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	return products, rows.Err()
}

// Update rewrites the mutable product fields.
func (r *ProductsRepository) Update(ctx context.Context, product *domain.Product) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET sku = $2, name = $3, description = $4, category = $5, price = $6, stock = $7, updated_at = now()
		WHERE id = $1`,
		product.ID, product.SKU, product.Name, product.Description,
		product.Category, product.Price, product.Stock,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:products: %w", errNoRows)
	}
	return nil
}

// AdjustStock decrements a product's stock by quantity. The stock
// check constraint turns an oversell into a CheckViolation, which the
// caller treats as insufficient stock.
func (r *ProductsRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET stock = stock + $2, updated_at = now() WHERE id = $1`,
		id, delta,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:products: %w", errNoRows)
	}
	return nil
}

// Delete removes a product.
func (r *ProductsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:products: %w", errNoRows)
	}
	return nil
}
