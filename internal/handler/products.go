package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/wicaksn/gostore/internal/domain"
	"github.com/wicaksn/gostore/internal/server"
	"github.com/wicaksn/gostore/internal/service"
	"github.com/wicaksn/gostore/internal/validation"
)

// ProductHandler serves catalog CRUD endpoints.
type ProductHandler struct {
	Handler
	products *service.ProductService
}

func NewProductHandler(s *server.Server, products *service.ProductService) *ProductHandler {
	return &ProductHandler{
		Handler:  NewHandler(s),
		products: products,
	}
}

// CreateProductRequest is the payload for POST /api/products. Price
// arrives as a JSON number or string; decimal.Decimal accepts both.
type CreateProductRequest struct {
	SKU         string          `json:"sku" validate:"required,max=64"`
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description" validate:"max=2000"`
	Category    string          `json:"category" validate:"max=100"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
}

func (r *CreateProductRequest) Validate() error {
	if err := validation.Validator.Struct(r); err != nil {
		return err
	}
	if r.Price.IsNegative() {
		return validation.CustomValidationErrors{
			{Field: "price", Message: "must not be negative"},
		}
	}
	return nil
}

func (h *ProductHandler) Create(c echo.Context, req *CreateProductRequest) (*domain.Product, error) {
	return h.products.Create(c.Request().Context(), service.CreateProductInput{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
	})
}

// GetProductRequest binds the :id path parameter.
type GetProductRequest struct {
	ID uuid.UUID `param:"id" validate:"required"`
}

func (r *GetProductRequest) Validate() error {
	return validation.Validator.Struct(r)
}

func (h *ProductHandler) Get(c echo.Context, req *GetProductRequest) (*domain.Product, error) {
	return h.products.Get(c.Request().Context(), req.ID)
}

// ListProductsRequest has no parameters.
type ListProductsRequest struct{}

func (r *ListProductsRequest) Validate() error { return nil }

func (h *ProductHandler) List(c echo.Context, _ *ListProductsRequest) ([]domain.Product, error) {
	return h.products.List(c.Request().Context())
}

// UpdateProductRequest is the payload for PUT /api/products/:id.
type UpdateProductRequest struct {
	ID          uuid.UUID       `param:"id" json:"-" validate:"required"`
	SKU         string          `json:"sku" validate:"required,max=64"`
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description" validate:"max=2000"`
	Category    string          `json:"category" validate:"max=100"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
}

func (r *UpdateProductRequest) Validate() error {
	if err := validation.Validator.Struct(r); err != nil {
		return err
	}
	if r.Price.IsNegative() {
		return validation.CustomValidationErrors{
			{Field: "price", Message: "must not be negative"},
		}
	}
	return nil
}

func (h *ProductHandler) Update(c echo.Context, req *UpdateProductRequest) (*domain.Product, error) {
	return h.products.Update(c.Request().Context(), req.ID, service.UpdateProductInput{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
	})
}

// DeleteProductRequest binds the :id path parameter.
type DeleteProductRequest struct {
	ID uuid.UUID `param:"id" validate:"required"`
}

func (r *DeleteProductRequest) Validate() error {
	return validation.Validator.Struct(r)
}

func (h *ProductHandler) Delete(c echo.Context, req *DeleteProductRequest) error {
	return h.products.Delete(c.Request().Context(), req.ID)
}
