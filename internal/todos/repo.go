package todos

import "context"

// CreateInput holds the fields required to create a todo.
type CreateInput struct {
	Title       string
	Description string
}

// UpdateInput is a partial update. A nil field keeps its current value.
type UpdateInput struct {
	Title       *string
	Description *string
}

// Empty reports whether the patch supplies no fields at all.
func (u UpdateInput) Empty() bool {
	return u.Title == nil && u.Description == nil
}

// Repo defines persistence operations for todos. Implementations fail
// with the repoerr vocabulary only.
type Repo interface {
	List(ctx context.Context) ([]Todo, error)
	FindByID(ctx context.Context, id string) (Todo, error)
	Create(ctx context.Context, input CreateInput) (Todo, error)
	UpdateOne(ctx context.Context, id string, input UpdateInput) (Todo, error)
}
