package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wicaksn/gostore/internal/domain"
)

// UserService performs single-entity CRUD on customers.
type UserService struct {
	store Store
}

func NewUserService(store Store) *UserService {
	return &UserService{store: store}
}

// CreateUserInput carries the validated fields for a new user.
type CreateUserInput struct {
	Email     string
	FirstName string
	LastName  string
}

// Create persists a new user. Duplicate emails surface as a unique
// violation and are mapped by the error funnel.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	now := time.Now().UTC()
	user := &domain.User{
		ID:        uuid.New(),
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get fetches a user by id.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.store.Users().GetByID(ctx, id)
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.store.Users().List(ctx)
}

// UpdateUserInput carries the fields that may be rewritten.
type UpdateUserInput struct {
	Email     string
	FirstName string
	LastName  string
}

// Update rewrites a user's profile fields.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	user, err := s.store.Users().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Email = input.Email
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.UpdatedAt = time.Now().UTC()

	if err := s.store.Users().Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Users().Delete(ctx, id)
}
