package cases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRepo struct {
	*MemoryRepo
	calls int
}

func (r *countingRepo) ListByUser(ctx context.Context, userID string) ([]Case, error) {
	r.calls++
	return r.MemoryRepo.ListByUser(ctx, userID)
}

func (r *countingRepo) Create(ctx context.Context, c Case) error {
	r.calls++
	return r.MemoryRepo.Create(ctx, c)
}

func TestCreateAndListNewestFirst(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	first, err := svc.Create(ctx, "user-1", "In re J.D.", "2026-DP-000123")
	require.NoError(t, err)
	// MemoryRepo sorts on CreatedAt; keep the two inserts apart.
	time.Sleep(2 * time.Millisecond)
	second, err := svc.Create(ctx, "user-1", "In re K.D.", "")
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	list, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest case comes first")
	assert.Equal(t, first.ID, list[1].ID)
}

func TestCreateRequiresName(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	_, err := svc.Create(context.Background(), "user-1", "   ", "2026-DP-000123")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCallerGuardRunsBeforeStoreAccess(t *testing.T) {
	repo := &countingRepo{MemoryRepo: NewMemoryRepo()}
	svc := &Service{Repo: repo}
	ctx := context.Background()

	_, err := svc.List(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Create(ctx, "", "In re J.D.", "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Get(ctx, "", "case-1")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	assert.Zero(t, repo.calls, "repo must not be touched without a principal")
}

func TestGetScopedToOwner(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", "In re J.D.", "")
	require.NoError(t, err)

	got, err := svc.Get(ctx, "user-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.Get(ctx, "user-2", created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
