package todos

import "context"

// Service defines the business operations over todos. Errors are from
// this package's vocabulary (ErrNotFound, ErrBadInput, ErrUnknown).
type Service interface {
	List(ctx context.Context) ([]Todo, error)
	Get(ctx context.Context, id string) (Todo, error)
	Create(ctx context.Context, input CreateInput) (Todo, error)
	Update(ctx context.Context, id string, input UpdateInput) (Todo, error)
}

type service struct {
	repo Repo
}

// NewService constructs the production Service over the given repository.
func NewService(repo Repo) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Todo, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, fromRepository(err)
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id string) (Todo, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Todo{}, fromRepository(err)
	}
	return t, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (Todo, error) {
	t, err := s.repo.Create(ctx, input)
	if err != nil {
		return Todo{}, fromRepository(err)
	}
	return t, nil
}

func (s *service) Update(ctx context.Context, id string, input UpdateInput) (Todo, error) {
	// An empty patch is a read, not a write.
	if input.Empty() {
		return s.Get(ctx, id)
	}
	t, err := s.repo.UpdateOne(ctx, id, input)
	if err != nil {
		return Todo{}, fromRepository(err)
	}
	return t, nil
}
