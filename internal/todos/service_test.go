package todos

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// updateCounter wraps a Repo and records write attempts.
type updateCounter struct {
	Repo
	updates int
}

func (u *updateCounter) UpdateOne(ctx context.Context, id string, input UpdateInput) (Todo, error) {
	u.updates++
	return u.Repo.UpdateOne(ctx, id, input)
}

func strptr(s string) *string { return &s }

func TestTodoCreateGetRoundTrip(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Title: "A", Description: "B"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	_, err = uuid.Parse(created.ID)
	require.NoError(t, err, "id must be a well-formed uuid")

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestTodoUpdateMergesOnlySuppliedFields(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Title: "A", Description: "B"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UpdateInput{Title: strptr("C")})
	require.NoError(t, err)
	assert.Equal(t, "C", updated.Title)
	assert.Equal(t, "B", updated.Description, "absent field keeps prior value")

	updated, err = svc.Update(ctx, created.ID, UpdateInput{Description: strptr("D")})
	require.NoError(t, err)
	assert.Equal(t, "C", updated.Title)
	assert.Equal(t, "D", updated.Description)
}

func TestTodoEmptyPatchPerformsNoWrite(t *testing.T) {
	repo := &updateCounter{Repo: NewMemoryRepo()}
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Title: "A", Description: "B"})
	require.NoError(t, err)

	got, err := svc.Update(ctx, created.ID, UpdateInput{})
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Zero(t, repo.updates, "empty patch must not reach the repository write path")
}

func TestTodoGetInvalidIDIsBadInput(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	_, err := svc.Get(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrBadInput)
}

func TestTodoGetMissingIsNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	_, err := svc.Get(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTodoUpdateMissingIsNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	_, err := svc.Update(context.Background(), uuid.NewString(), UpdateInput{Title: strptr("C")})
	assert.ErrorIs(t, err, ErrNotFound)
}
