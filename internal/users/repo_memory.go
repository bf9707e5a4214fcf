package users

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
	users map[string]User
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{users: make(map[string]User)}
}

func (r *MemoryRepo) FindByID(ctx context.Context, id string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, repoerr.ErrUnknown
	}
	if _, err := uuid.Parse(id); err != nil {
		return User{}, repoerr.ErrInvalidID
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return User{}, repoerr.ErrNotFound
	}
	return u, nil
}

func (r *MemoryRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, repoerr.ErrUnknown
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			match := u
			return &match, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepo) Create(ctx context.Context, input CreateInput) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, repoerr.ErrUnknown
	}
	now := time.Now().UTC()
	u := User{
		ID:        uuid.NewString(),
		Email:     input.Email,
		FirstName: input.FirstName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return u, nil
}

func (r *MemoryRepo) UpdateOne(ctx context.Context, id string, input UpdateInput) (User, error) {
	current, err := r.FindByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	updated := current
	if input.Email != nil {
		updated.Email = *input.Email
	}
	if input.FirstName != nil {
		updated.FirstName = *input.FirstName
	}
	updated.UpdatedAt = time.Now().UTC()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[id] = updated
	return updated, nil
}

var _ Repo = (*MemoryRepo)(nil)
