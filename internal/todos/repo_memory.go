package todos

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"todo-backend/internal/shared/storage/repoerr"
)

// MemoryRepo is a map-backed Repo for dev mode and tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	todos map[string]Todo
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{todos: make(map[string]Todo)}
}

func (r *MemoryRepo) List(ctx context.Context) ([]Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, repoerr.ErrUnknown
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Todo, 0, len(r.todos))
	for _, t := range r.todos {
		out = append(out, t)
	}
	return out, nil
}

func (r *MemoryRepo) FindByID(ctx context.Context, id string) (Todo, error) {
	if err := ctx.Err(); err != nil {
		return Todo{}, repoerr.ErrUnknown
	}
	if _, err := uuid.Parse(id); err != nil {
		return Todo{}, repoerr.ErrInvalidID
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.todos[id]
	if !ok {
		return Todo{}, repoerr.ErrNotFound
	}
	return t, nil
}

func (r *MemoryRepo) Create(ctx context.Context, input CreateInput) (Todo, error) {
	if err := ctx.Err(); err != nil {
		return Todo{}, repoerr.ErrUnknown
	}
	now := time.Now().UTC()
	t := Todo{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.todos[t.ID] = t
	return t, nil
}

func (r *MemoryRepo) UpdateOne(ctx context.Context, id string, input UpdateInput) (Todo, error) {
	current, err := r.FindByID(ctx, id)
	if err != nil {
		return Todo{}, err
	}
	updated := current
	if input.Title != nil {
		updated.Title = *input.Title
	}
	if input.Description != nil {
		updated.Description = *input.Description
	}
	updated.UpdatedAt = time.Now().UTC()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.todos[id] = updated
	return updated, nil
}

var _ Repo = (*MemoryRepo)(nil)
