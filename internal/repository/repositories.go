// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist, or update
// data, abstracting SQL logic away from the service layer.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wicaksn/gostore/internal/server"
)

// errNoRows is wrapped into "table:<name>:" annotated errors so the
// error funnel can map affected-zero-rows updates to 404s the same way
// it maps empty SELECTs.
var errNoRows = pgx.ErrNoRows

// DBTX is the querying surface shared by *pgxpool.Pool and pgx.Tx, so
// every repository method works both standalone and inside a
// transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories is a container for all repository instances.
type Repositories struct {
	Users    *UsersRepository
	Products *ProductsRepository
	Orders   *OrdersRepository
	Payments *PaymentsRepository
	Reports  *ReportsRepository

	pool *pgxpool.Pool
}

// NewRepositories constructs the repository container over the shared
// connection pool on s.DB.
func NewRepositories(s *server.Server) *Repositories {
	pool := s.DB.Pool
	return newRepositories(pool, pool)
}

func newRepositories(db DBTX, pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Users:    &UsersRepository{db: db},
		Products: &ProductsRepository{db: db},
		Orders:   &OrdersRepository{db: db},
		Payments: &PaymentsRepository{db: db},
		Reports:  &ReportsRepository{db: db},
		pool:     pool,
	}
}

// WithinTransaction runs fn with a repository set bound to a single
// database transaction. The transaction commits when fn returns nil
// and rolls back otherwise; the multi-step cart and payment flows run
// through here.
func (r *Repositories) WithinTransaction(ctx context.Context, fn func(txRepos *Repositories) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if err := fn(newRepositories(tx, r.pool)); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
