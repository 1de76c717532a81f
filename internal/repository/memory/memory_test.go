package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seungpyo.lee/odinbook/internal/domain"
	"seungpyo.lee/odinbook/internal/repository/repotest"
)

func newStores(t *testing.T) repotest.Stores {
	t.Helper()
	return repotest.Stores{
		Users: NewUserRepository(),
		Posts: NewPostRepository(),
		Likes: NewLikeRepository(),
	}
}

func TestUserRepository(t *testing.T) { repotest.RunUserRepositoryTests(t, newStores) }

func TestPostRepository(t *testing.T) { repotest.RunPostRepositoryTests(t, newStores) }

func TestLikeRepository(t *testing.T) { repotest.RunLikeRepositoryTests(t, newStores) }

func TestWithClock(t *testing.T) {
	fixed := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	clock := WithClock(func() time.Time { return fixed })

	posts := NewPostRepository(clock)
	p, err := posts.Create(context.Background(), 1, "hello")
	require.NoError(t, err)
	assert.Equal(t, fixed, p.CreatedAt)

	users := NewUserRepository(clock)
	u := &domain.User{Username: "a", Email: "a@x.com"}
	require.NoError(t, users.Create(context.Background(), u))
	assert.Equal(t, fixed, u.CreatedAt)
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository()
	u := &domain.User{Username: "alice", Email: "alice@x.com", DisplayName: "Alice"}
	require.NoError(t, users.Create(ctx, u))

	u.DisplayName = "mutated by caller"
	got, ok, err := users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Alice", got.DisplayName)

	got.DisplayName = "mutated again"
	again, _, _ := users.FindByID(ctx, u.ID)
	assert.Equal(t, "Alice", again.DisplayName)
}
