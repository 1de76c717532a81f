// Package seed loads the demo accounts and posts into an empty store.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"seungpyo.lee/odinbook/internal/domain"
	"seungpyo.lee/odinbook/internal/util"
)

// DemoPassword is shared by every demo account.
const DemoPassword = "password123"

type demoUser struct {
	username, email, displayName, bio string
}

var demoUsers = []demoUser{
	{"johndoe", "john@example.com", "John Doe", "Software developer and coffee enthusiast ☕"},
	{"janesmith", "jane@example.com", "Jane Smith", "Designer who loves creating beautiful things ✨"},
}

// demoPosts reference demoUsers by index.
var demoPosts = []struct {
	author  int
	content string
}{
	{0, "Welcome to Odin-Book! 🚀 This is my first post."},
	{1, "Just finished an amazing design project! 🎨"},
	{0, "Coffee + Code = Perfect Morning ☕👨‍💻"},
}

// Run inserts the demo data unless the user store already holds accounts.
// It reports whether anything was written.
func Run(ctx context.Context, users domain.UserRepository, posts domain.PostRepository, log *slog.Logger) (bool, error) {
	n, err := users.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	if n > 0 {
		log.InfoContext(ctx, "store not empty, skipping demo data", "users", n)
		return false, nil
	}

	hash, err := util.HashPassword(DemoPassword)
	if err != nil {
		return false, fmt.Errorf("failed to hash demo password: %w", err)
	}

	ids := make([]uint, len(demoUsers))
	for i, d := range demoUsers {
		u := &domain.User{
			Username:     d.username,
			Email:        d.email,
			PasswordHash: hash,
			DisplayName:  d.displayName,
			Bio:          d.bio,
		}
		if err := users.Create(ctx, u); err != nil {
			return false, fmt.Errorf("failed to create demo user %s: %w", d.username, err)
		}
		ids[i] = u.ID
	}
	for _, p := range demoPosts {
		if _, err := posts.Create(ctx, ids[p.author], p.content); err != nil {
			return false, fmt.Errorf("failed to create demo post: %w", err)
		}
	}

	log.InfoContext(ctx, "demo data loaded", "users", len(demoUsers), "posts", len(demoPosts))
	return true, nil
}
