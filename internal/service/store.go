package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/wicaksn/gostore/internal/domain"
	"github.com/wicaksn/gostore/internal/repository"
)

// The service layer talks to persistence through these narrow
// interfaces. The pgx repositories satisfy them structurally; tests
// substitute in-memory fakes.

// UserStore is the persistence surface for users.
type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductStore is the persistence surface for products.
type ProductStore interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderStore is the persistence surface for orders and their items.
type OrderStore interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	FindCartByUser(ctx context.Context, userID uuid.UUID) (*domain.Order, error)
	FindCartByUserForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
	SaveItems(ctx context.Context, order *domain.Order) error
	UpdateStatusAndTotal(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentStore is the persistence surface for payments.
type PaymentStore interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Payment, error)
}

// ReportStore is the raw-SQL reporting surface.
type ReportStore interface {
	MonthlySales(ctx context.Context) ([]domain.MonthlySales, error)
	BoardStats(ctx context.Context) (*domain.BoardStats, error)
	TopProducts(ctx context.Context) ([]domain.TopProduct, error)
	LowStock(ctx context.Context, threshold int) ([]domain.LowStockProduct, error)
	TopSpenders(ctx context.Context) ([]domain.TopSpender, error)
}

// Store groups the per-entity stores and runs multi-step workflows in
// a single transaction.
type Store interface {
	Users() UserStore
	Products() ProductStore
	Orders() OrderStore
	Payments() PaymentStore
	Reports() ReportStore

	// WithinTransaction calls fn with a Store whose operations share
	// one database transaction. fn returning an error rolls back.
	WithinTransaction(ctx context.Context, fn func(tx Store) error) error
}

// repoStore adapts *repository.Repositories to the Store interface.
type repoStore struct {
	repos *repository.Repositories
}

// NewStore wraps the concrete repositories for use by services.
func NewStore(repos *repository.Repositories) Store {
	return repoStore{repos: repos}
}

func (s repoStore) Users() UserStore       { return s.repos.Users }
func (s repoStore) Products() ProductStore { return s.repos.Products }
func (s repoStore) Orders() OrderStore     { return s.repos.Orders }
func (s repoStore) Payments() PaymentStore { return s.repos.Payments }
func (s repoStore) Reports() ReportStore   { return s.repos.Reports }

func (s repoStore) WithinTransaction(ctx context.Context, fn func(tx Store) error) error {
	return s.repos.WithinTransaction(ctx, func(txRepos *repository.Repositories) error {
		return fn(repoStore{repos: txRepos})
	})
}
