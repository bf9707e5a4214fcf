package users

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"todo-backend/internal/shared/storage/repoerr"
	"todo-backend/internal/shared/telemetry"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// FindByID returns the user matching id.
func (r *PGRepo) FindByID(ctx context.Context, id string) (User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return User{}, repoerr.ErrInvalidID
	}

	const query = `
SELECT id, email, first_name, created_at, updated_at
FROM users
WHERE id = $1
LIMIT 1`

	var u User
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.FirstName, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, repoerr.ErrNotFound
		}
		telemetry.Error("users.find_by_id", map[string]any{"id": id, "error": err.Error()})
		return User{}, repoerr.ErrUnknown
	}
	return u, nil
}

// FindByEmail returns the user holding email, or nil when no user does.
func (r *PGRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	const query = `
SELECT id, email, first_name, created_at, updated_at
FROM users
WHERE email = $1
LIMIT 1`

	var u User
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.FirstName, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		telemetry.Error("users.find_by_email", map[string]any{"error": err.Error()})
		return nil, repoerr.ErrUnknown
	}
	return &u, nil
}

// Create inserts a new user with a generated id and current timestamps.
func (r *PGRepo) Create(ctx context.Context, input CreateInput) (User, error) {
	const query = `
INSERT INTO users (id, email, first_name, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)`

	now := time.Now().UTC()
	u := User{
		ID:        uuid.NewString(),
		Email:     input.Email,
		FirstName: input.FirstName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.DB.ExecContext(ctx, query, u.ID, u.Email, u.FirstName, u.CreatedAt, u.UpdatedAt); err != nil {
		telemetry.Error("users.create", map[string]any{"error": err.Error()})
		return User{}, repoerr.ErrUnknown
	}
	return u, nil
}

// UpdateOne applies a partial update read-modify-write style, writing all
// business columns back with a fresh updated_at. Not atomic with respect
// to concurrent writers.
func (r *PGRepo) UpdateOne(ctx context.Context, id string, input UpdateInput) (User, error) {
	current, err := r.FindByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	const query = `
UPDATE users
SET email = $1, first_name = $2, updated_at = $3
WHERE id = $4`

	updated := current
	if input.Email != nil {
		updated.Email = *input.Email
	}
	if input.FirstName != nil {
		updated.FirstName = *input.FirstName
	}
	updated.UpdatedAt = time.Now().UTC()

	if _, err := r.DB.ExecContext(ctx, query, updated.Email, updated.FirstName, updated.UpdatedAt, updated.ID); err != nil {
		telemetry.Error("users.update_one", map[string]any{"id": id, "error": err.Error()})
		return User{}, repoerr.ErrUnknown
	}
	return updated, nil
}

var _ Repo = (*PGRepo)(nil)
