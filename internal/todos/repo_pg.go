package todos

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

// List returns all todos, order unspecified.
func (r *PGRepo) List(ctx context.Context) ([]Todo, error) {
	const query = `
SELECT id, title, description, created_at, updated_at
FROM todos`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		telemetry.Error("todos.list", map[string]any{"error": err.Error()})
		return nil, repoerr.ErrUnknown
	}
	defer rows.Close()

	var out []Todo
	for rows.Next() {
		var t Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
			telemetry.Error("todos.list", map[string]any{"error": err.Error()})
			return nil, repoerr.ErrUnknown
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		telemetry.Error("todos.list", map[string]any{"error": err.Error()})
		return nil, repoerr.ErrUnknown
	}
	return out, nil
}

// FindByID returns the todo matching id.
func (r *PGRepo) FindByID(ctx context.Context, id string) (Todo, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Todo{}, repoerr.ErrInvalidID
	}

	const query = `
SELECT id, title, description, created_at, updated_at
FROM todos
WHERE id = $1
LIMIT 1`

	var t Todo
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Todo{}, repoerr.ErrNotFound
		}
		telemetry.Error("todos.find_by_id", map[string]any{"id": id, "error": err.Error()})
		return Todo{}, repoerr.ErrUnknown
	}
	return t, nil
}

// Create inserts a new todo with a generated id and current timestamps.
func (r *PGRepo) Create(ctx context.Context, input CreateInput) (Todo, error) {
	const query = `
INSERT INTO todos (id, title, description, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)`

	now := time.Now().UTC()
	t := Todo{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := r.DB.ExecContext(ctx, query, t.ID, t.Title, t.Description, t.CreatedAt, t.UpdatedAt); err != nil {
		telemetry.Error("todos.create", map[string]any{"error": err.Error()})
		return Todo{}, repoerr.ErrUnknown
	}
	return t, nil
}

// UpdateOne applies a partial update read-modify-write style. Supplied
// fields replace current values and every business column is written
// back with a fresh updated_at. Not atomic with respect to concurrent
// writers.
func (r *PGRepo) UpdateOne(ctx context.Context, id string, input UpdateInput) (Todo, error) {
	current, err := r.FindByID(ctx, id)
	if err != nil {
		return Todo{}, err
	}

	const query = `
UPDATE todos
SET title = $1, description = $2, updated_at = $3
WHERE id = $4`

	updated := current
	if input.Title != nil {
		updated.Title = *input.Title
	}
	if input.Description != nil {
		updated.Description = *input.Description
	}
	updated.UpdatedAt = time.Now().UTC()

	if _, err := r.DB.ExecContext(ctx, query, updated.Title, updated.Description, updated.UpdatedAt, updated.ID); err != nil {
		telemetry.Error("todos.update_one", map[string]any{"id": id, "error": err.Error()})
		return Todo{}, repoerr.ErrUnknown
	}
	return updated, nil
}

var _ Repo = (*PGRepo)(nil)
