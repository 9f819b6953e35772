package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/wicaksn/gostore/internal/domain"
	"github.com/wicaksn/gostore/internal/server"
	"github.com/wicaksn/gostore/internal/service"
	"github.com/wicaksn/gostore/internal/validation"
)

// UserHandler serves customer CRUD endpoints.
type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// CreateUserRequest is the payload for POST /api/users.
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}

func (r *CreateUserRequest) Validate() error {
	return validation.Validator.Struct(r)
}

func (h *UserHandler) Create(c echo.Context, req *CreateUserRequest) (*domain.User, error) {
	return h.users.Create(c.Request().Context(), service.CreateUserInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
}

// GetUserRequest binds the :id path parameter.
type GetUserRequest struct {
	ID uuid.UUID `param:"id" validate:"required"`
}

func (r *GetUserRequest) Validate() error {
	return validation.Validator.Struct(r)
}

func (h *UserHandler) Get(c echo.Context, req *GetUserRequest) (*domain.User, error) {
	return h.users.Get(c.Request().Context(), req.ID)
}

// ListUsersRequest has no parameters; the type exists so the endpoint
// fits the generic pipeline.
type ListUsersRequest struct{}

func (r *ListUsersRequest) Validate() error { return nil }

func (h *UserHandler) List(c echo.Context, _ *ListUsersRequest) ([]domain.User, error) {
	return h.users.List(c.Request().Context())
}

// UpdateUserRequest is the payload for PUT /api/users/:id.
type UpdateUserRequest struct {
	ID        uuid.UUID `param:"id" json:"-" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	FirstName string    `json:"first_name" validate:"required,max=100"`
	LastName  string    `json:"last_name" validate:"required,max=100"`
}

func (r *UpdateUserRequest) Validate() error {
	return validation.Validator.Struct(r)
}

func (h *UserHandler) Update(c echo.Context, req *UpdateUserRequest) (*domain.User, error) {
	return h.users.Update(c.Request().Context(), req.ID, service.UpdateUserInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
}

// DeleteUserRequest binds the :id path parameter.
type DeleteUserRequest struct {
	ID uuid.UUID `param:"id" validate:"required"`
}

func (r *DeleteUserRequest) Validate() error {
	return validation.Validator.Struct(r)
}

func (h *UserHandler) Delete(c echo.Context, req *DeleteUserRequest) error {
	return h.users.Delete(c.Request().Context(), req.ID)
}
