package users

import (
	"context"

	"todo-backend/internal/shared/telemetry"
)

// Service defines the business operations over users. Errors are from
// this package's vocabulary (ErrNotFound, ErrBadInput, ErrUnknown).
type Service interface {
	Get(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, input CreateInput) (User, error)
	Update(ctx context.Context, id string, input UpdateInput) (User, error)
}

type service struct {
	repo Repo
}

// NewService constructs the production Service over the given repository.
func NewService(repo Repo) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context, id string) (User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return User{}, fromRepository(err)
	}
	return u, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (User, error) {
	taken, err := s.emailInUse(ctx, input.Email)
	if err != nil {
		return User{}, err
	}
	if taken {
		telemetry.Info("users.create.email_taken", map[string]any{"email": input.Email})
		return User{}, ErrBadInput
	}

	u, err := s.repo.Create(ctx, input)
	if err != nil {
		return User{}, fromRepository(err)
	}
	return u, nil
}

func (s *service) Update(ctx context.Context, id string, input UpdateInput) (User, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return User{}, fromRepository(err)
	}

	// An empty patch is a read, not a write.
	if input.Empty() {
		return current, nil
	}

	// Re-verify uniqueness only when the email actually changes; writing
	// a user's own email back is a no-op, not a conflict.
	if input.Email != nil && *input.Email != current.Email {
		taken, err := s.emailInUse(ctx, *input.Email)
		if err != nil {
			return User{}, err
		}
		if taken {
			telemetry.Info("users.update.email_taken", map[string]any{"email": *input.Email})
			return User{}, ErrBadInput
		}
	}

	u, err := s.repo.UpdateOne(ctx, id, input)
	if err != nil {
		return User{}, fromRepository(err)
	}
	return u, nil
}

// emailInUse is a read-then-act check. Two concurrent creates with the
// same email can both observe it free before either insert lands; the
// schema has no unique constraint to catch the loser. Known limitation.
func (s *service) emailInUse(ctx context.Context, email string) (bool, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return false, fromRepository(err)
	}
	return existing != nil, nil
}
