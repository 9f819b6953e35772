package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/wicaksn/gostore/internal/domain"
	"github.com/wicaksn/gostore/internal/server"
	"github.com/wicaksn/gostore/internal/service"
	"github.com/wicaksn/gostore/internal/validation"
)

// OrderHandler serves order, cart and payment endpoints.
type OrderHandler struct {
	Handler
	orders *service.OrderService
}

func NewOrderHandler(s *server.Server, orders *service.OrderService) *OrderHandler {
	return &OrderHandler{
		Handler: NewHandler(s),
		orders:  orders,
	}
}

// CreateOrderRequest is the payload for POST /api/orders. Items are
// optional; an empty list opens an empty cart.
type CreateOrderRequest struct {
	UserID uuid.UUID                `json:"user_id" validate:"required"`
	Items  []CreateOrderItemRequest `json:"items" validate:"dive"`
}

// CreateOrderItemRequest is one requested product line.
type CreateOrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

func (r *CreateOrderRequest) Validate() error {
	return validation.Validator.Struct(r)
}

func (h *OrderHandler) Create(c echo.Context, req *CreateOrderRequest) (*domain.Order, error) {
	items := make([]service.CreateOrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.CreateOrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return h.orders.Create(c.Request().Context(), service.CreateOrderInput{
		UserID: req.UserID,
		Items:  items,
	})
}

// GetOrderRequest binds the :id path parameter.
type GetOrderRequest struct {
	ID uuid.UUID `param:"id" validate:"required"`
}

func (r *GetOrderRequest) Validate() error {
	return validation.Validator.Struct(r)
}

func (h *OrderHandler) Get(c echo.Context, req *GetOrderRequest) (*domain.Order, error) {
	return h.orders.Get(c.Request().Context(), req.ID)
}

// ListOrdersRequest has no parameters.
type ListOrdersRequest struct{}

func (r *ListOrdersRequest) Validate() error { return nil }

func (h *OrderHandler) List(c echo.Context, _ *ListOrdersRequest) ([]domain.Order, error) {
	return h.orders.List(c.Request().Context())
}

// DeleteOrderRequest binds the :id path parameter.
type DeleteOrderRequest struct {
	ID uuid.UUID `param:"id" validate:"required"`
}

func (r *DeleteOrderRequest) Validate() error {
	return validation.Validator.Struct(r)
}

func (h *OrderHandler) Delete(c echo.Context, req *DeleteOrderRequest) error {
	return h.orders.Delete(c.Request().Context(), req.ID)
}

// GetCartRequest binds the :userId path parameter.
type GetCartRequest struct {
	UserID uuid.UUID `param:"userId" validate:"required"`
}

func (r *GetCartRequest) Validate() error {
	return validation.Validator.Struct(r)
}

// GetCart returns the user's open cart, creating one when none exists.
func (h *OrderHandler) GetCart(c echo.Context, req *GetCartRequest) (*domain.Order, error) {
	return h.orders.GetOrCreateCart(c.Request().Context(), req.UserID)
}

// AddToCartRequest binds the product, order and quantity path
// parameters of the add-to-cart route.
type AddToCartRequest struct {
	ProductID uuid.UUID `param:"productId" validate:"required"`
	OrderID   uuid.UUID `param:"orderId" validate:"required"`
	Quantity  int       `param:"quantity" validate:"required,gt=0"`
}

func (r *AddToCartRequest) Validate() error {
	return validation.Validator.Struct(r)
}

func (h *OrderHandler) AddToCart(c echo.Context, req *AddToCartRequest) (*domain.Order, error) {
	return h.orders.AddItemToCart(c.Request().Context(), req.OrderID, req.ProductID, req.Quantity)
}

// RemoveFromCartRequest binds the user and product path parameters.
type RemoveFromCartRequest struct {
	UserID    uuid.UUID `param:"userId" validate:"required"`
	ProductID uuid.UUID `param:"productId" validate:"required"`
}

func (r *RemoveFromCartRequest) Validate() error {
	return validation.Validator.Struct(r)
}

func (h *OrderHandler) RemoveFromCart(c echo.Context, req *RemoveFromCartRequest) (*domain.Order, error) {
	return h.orders.RemoveItemFromCart(c.Request().Context(), req.UserID, req.ProductID)
}

// ProcessPaymentRequest binds the :userId path parameter.
type ProcessPaymentRequest struct {
	UserID uuid.UUID `param:"userId" validate:"required"`
}

func (r *ProcessPaymentRequest) Validate() error {
	return validation.Validator.Struct(r)
}

// ProcessPayment settles the user's open cart and returns the payment.
func (h *OrderHandler) ProcessPayment(c echo.Context, req *ProcessPaymentRequest) (*domain.Payment, error) {
	return h.orders.ProcessPayment(c.Request().Context(), req.UserID)
}

// ListUserOrdersRequest binds the :userId path parameter.
type ListUserOrdersRequest struct {
	UserID uuid.UUID `param:"userId" validate:"required"`
}

func (r *ListUserOrdersRequest) Validate() error {
	return validation.Validator.Struct(r)
}

func (h *OrderHandler) ListUserOrders(c echo.Context, req *ListUserOrdersRequest) ([]domain.Order, error) {
	return h.orders.ListByUser(c.Request().Context(), req.UserID)
}
