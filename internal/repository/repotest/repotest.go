// Package repotest holds the behavior every store backend must share. Backend
// packages run these from their own tests.
package repotest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seungpyo.lee/odinbook/internal/domain"
)

// Stores is one fresh, empty set of stores.
type Stores struct {
	Users domain.UserRepository
	Posts domain.PostRepository
	Likes domain.LikeRepository
}

type Factory func(t *testing.T) Stores

func newUser(username, email string) *domain.User {
	return &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$notarealhashbutopaque",
		DisplayName:  username,
	}
}

func RunUserRepositoryTests(t *testing.T, factory Factory) {
	ctx := context.Background()

	t.Run("create assigns unique ids and normalizes", func(t *testing.T) {
		users := factory(t).Users
		alice := newUser("Alice", " Alice@X.com ")
		require.NoError(t, users.Create(ctx, alice))
		bob := newUser("bob", "bob@x.com")
		require.NoError(t, users.Create(ctx, bob))

		assert.NotZero(t, alice.ID)
		assert.NotEqual(t, alice.ID, bob.ID)
		assert.Equal(t, "alice", alice.Username)
		assert.Equal(t, "alice@x.com", alice.Email)
		assert.False(t, alice.CreatedAt.IsZero())

		got, ok, err := users.FindByID(ctx, alice.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "alice@x.com", got.Email)
		assert.Equal(t, alice.PasswordHash, got.PasswordHash)
	})

	t.Run("duplicate email or username in any case", func(t *testing.T) {
		users := factory(t).Users
		require.NoError(t, users.Create(ctx, newUser("alice", "alice@x.com")))

		err := users.Create(ctx, newUser("bob", "ALICE@x.com"))
		assert.ErrorIs(t, err, domain.ErrDuplicateAccount)

		err = users.Create(ctx, newUser("ALICE", "other@x.com"))
		assert.ErrorIs(t, err, domain.ErrDuplicateAccount)

		n, err := users.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("failed create leaves the input untouched", func(t *testing.T) {
		users := factory(t).Users
		require.NoError(t, users.Create(ctx, newUser("alice", "alice@x.com")))

		dup := newUser(" Bob ", " ALICE@X.com ")
		before := *dup
		err := users.Create(ctx, dup)
		require.ErrorIs(t, err, domain.ErrDuplicateAccount)
		assert.Equal(t, before, *dup)
	})

	t.Run("lookups are case-insensitive and report absence", func(t *testing.T) {
		users := factory(t).Users
		alice := newUser("alice", "alice@x.com")
		require.NoError(t, users.Create(ctx, alice))

		got, ok, err := users.FindByEmail(ctx, "Alice@X.COM")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, alice.ID, got.ID)

		got, ok, err = users.FindByUsername(ctx, "ALICE")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, alice.ID, got.ID)

		got, ok, err = users.FindByEmail(ctx, "nobody@x.com")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, got)

		_, ok, err = users.FindByUsername(ctx, "nobody")
		assert.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = users.FindByID(ctx, alice.ID+100)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("list excluding keeps insertion order", func(t *testing.T) {
		users := factory(t).Users
		var ids []uint
		for _, name := range []string{"carol", "alice", "bob", "dave"} {
			u := newUser(name, name+"@x.com")
			require.NoError(t, users.Create(ctx, u))
			ids = append(ids, u.ID)
		}

		others, err := users.ListExcluding(ctx, ids[1])
		require.NoError(t, err)
		var names []string
		for _, u := range others {
			names = append(names, u.Username)
		}
		assert.Equal(t, []string{"carol", "bob", "dave"}, names)
	})

	t.Run("concurrent registrations with one email", func(t *testing.T) {
		users := factory(t).Users
		const workers = 16

		var wg sync.WaitGroup
		errs := make([]error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs[i] = users.Create(ctx, newUser(fmt.Sprintf("user%d", i), "same@x.com"))
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.True(t, errors.Is(err, domain.ErrDuplicateAccount), "unexpected error: %v", err)
		}
		assert.Equal(t, 1, succeeded)
	})
}

func RunPostRepositoryTests(t *testing.T, factory Factory) {
	ctx := context.Background()

	t.Run("create trims and rejects blank content", func(t *testing.T) {
		posts := factory(t).Posts

		_, err := posts.Create(ctx, 1, "   ")
		assert.ErrorIs(t, err, domain.ErrEmptyContent)

		p, err := posts.Create(ctx, 1, "  hi  ")
		require.NoError(t, err)
		assert.Equal(t, "hi", p.Content)
		assert.Equal(t, uint(1), p.UserID)
		assert.NotZero(t, p.ID)
		assert.False(t, p.CreatedAt.IsZero())

		got, ok, err := posts.FindByID(ctx, p.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "hi", got.Content)

		_, ok, err = posts.FindByID(ctx, p.ID+100)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("list all keeps insertion order", func(t *testing.T) {
		posts := factory(t).Posts
		for _, c := range []string{"first", "second", "third"} {
			_, err := posts.Create(ctx, 2, c)
			require.NoError(t, err)
		}

		all, err := posts.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "first", all[0].Content)
		assert.Equal(t, "third", all[2].Content)
		assert.Less(t, all[0].ID, all[1].ID)
		assert.Less(t, all[1].ID, all[2].ID)

		n, err := posts.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})
}

func RunLikeRepositoryTests(t *testing.T, factory Factory) {
	ctx := context.Background()

	t.Run("toggle round trip", func(t *testing.T) {
		likes := factory(t).Likes

		liked, err := likes.IsLikedBy(ctx, 1, 10)
		require.NoError(t, err)
		assert.False(t, liked, "initial state is unliked")

		liked, err = likes.Toggle(ctx, 1, 10)
		require.NoError(t, err)
		assert.True(t, liked)

		liked, err = likes.Toggle(ctx, 1, 10)
		require.NoError(t, err)
		assert.False(t, liked)

		liked, err = likes.IsLikedBy(ctx, 1, 10)
		require.NoError(t, err)
		assert.False(t, liked)

		n, err := likes.CountForPost(ctx, 10)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("count equals distinct liking users", func(t *testing.T) {
		likes := factory(t).Likes
		for _, uid := range []uint{1, 2, 3} {
			_, err := likes.Toggle(ctx, uid, 10)
			require.NoError(t, err)
		}
		_, err := likes.Toggle(ctx, 2, 10)
		require.NoError(t, err)
		_, err = likes.Toggle(ctx, 1, 11)
		require.NoError(t, err)

		n, err := likes.CountForPost(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		n, err = likes.CountForPost(ctx, 11)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		n, err = likes.CountForPost(ctx, 99)
		require.NoError(t, err)
		assert.Zero(t, n)

		liked, err := likes.IsLikedBy(ctx, 2, 10)
		require.NoError(t, err)
		assert.False(t, liked)
		liked, err = likes.IsLikedBy(ctx, 3, 10)
		require.NoError(t, err)
		assert.True(t, liked)
	})

	t.Run("toggle does not check post existence", func(t *testing.T) {
		likes := factory(t).Likes
		liked, err := likes.Toggle(ctx, 1, 424242)
		require.NoError(t, err)
		assert.True(t, liked)
	})

	t.Run("concurrent toggles on one pair", func(t *testing.T) {
		likes := factory(t).Likes
		const toggles = 25

		var wg sync.WaitGroup
		var mu sync.Mutex
		trues := 0
		for i := 0; i < toggles; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				liked, err := likes.Toggle(ctx, 7, 7)
				assert.NoError(t, err)
				if liked {
					mu.Lock()
					trues++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		// Serialized toggles alternate, so an odd number ends liked with one extra create.
		assert.Equal(t, toggles/2+1, trues)
		liked, err := likes.IsLikedBy(ctx, 7, 7)
		require.NoError(t, err)
		assert.True(t, liked)
		n, err := likes.CountForPost(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}
