package users

import "context"

// CreateInput holds the fields required to create a user.
type CreateInput struct {
	Email     string
	FirstName string
}

// UpdateInput is a partial update. A nil field keeps its current value.
type UpdateInput struct {
	Email     *string
	FirstName *string
}

// Empty reports whether the patch supplies no fields at all.
func (u UpdateInput) Empty() bool {
	return u.Email == nil && u.FirstName == nil
}

// Repo defines persistence operations for users. Implementations fail
// with the repoerr vocabulary only. FindByEmail returns (nil, nil) when
// no user has the email: that outcome is expected, not exceptional, and
// is what the uniqueness check keys on.
type Repo interface {
	FindByID(ctx context.Context, id string) (User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, input CreateInput) (User, error)
	UpdateOne(ctx context.Context, id string, input UpdateInput) (User, error)
}
