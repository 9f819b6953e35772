package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wicaksn/gostore/internal/domain"
)

// UsersRepository persists customers.
type UsersRepository struct {
	db DBTX
}

const userColumns = `id, email, first_name, last_name, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user.
func (r *UsersRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.FirstName, user.LastName, user.CreatedAt, user.UpdatedAt,
	)
	return err
}

// GetByID fetches a single user.
func (r *UsersRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		// The table tag lets the error funnel name the missing entity.
		return nil, fmt.Errorf("table:users: %w", err)
	}
	return user, nil
}

// List returns all users ordered by creation time.
func (r *UsersRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// Update rewrites the mutable user fields.
func (r *UsersRepository) Update(ctx context.Context, user *domain.User) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET email = $2, first_name = $3, last_name = $4, updated_at = now()
		WHERE id = $1`,
		user.ID, user.Email, user.FirstName, user.LastName,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:users: %w", errNoRows)
	}
	return nil
}

// Delete removes a user.
func (r *UsersRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:users: %w", errNoRows)
	}
	return nil
}
