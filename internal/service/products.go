package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wicaksn/gostore/internal/domain"
)

// ProductService performs single-entity CRUD on the catalog.
type ProductService struct {
	store Store
}

func NewProductService(store Store) *ProductService {
	return &ProductService{store: store}
}

// CreateProductInput carries the validated fields for a new product.
type CreateProductInput struct {
	SKU         string
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Stock       int
}

// Create persists a new product.
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		ID:          uuid.New(),
		SKU:         input.SKU,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Stock:       input.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Products().Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Get fetches a product by id.
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.store.Products().GetByID(ctx, id)
}

// List returns all products.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.store.Products().List(ctx)
}

// UpdateProductInput carries the fields that may be rewritten.
type UpdateProductInput struct {
	SKU         string
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Stock       int
}

// Update rewrites a product's fields.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error) {
	product, err := s.store.Products().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.SKU = input.SKU
	product.Name = input.Name
	product.Description = input.Description
	product.Category = input.Category
	product.Price = input.Price
	product.Stock = input.Stock
	product.UpdatedAt = time.Now().UTC()

	if err := s.store.Products().Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product. Products referenced by order items fail
// with a foreign-key violation mapped by the error funnel.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Products().Delete(ctx, id)
}
