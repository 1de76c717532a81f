package gormrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"seungpyo.lee/odinbook/internal/domain"
	"seungpyo.lee/odinbook/internal/repository/repotest"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenDatabase(DriverSQLite, "")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newStores(t *testing.T) repotest.Stores {
	db := setupTestDB(t)
	return repotest.Stores{
		Users: NewUserRepository(db),
		Posts: NewPostRepository(db),
		Likes: NewLikeRepository(db),
	}
}

func TestUserRepository(t *testing.T) { repotest.RunUserRepositoryTests(t, newStores) }

func TestPostRepository(t *testing.T) { repotest.RunPostRepositoryTests(t, newStores) }

func TestLikeRepository(t *testing.T) { repotest.RunLikeRepositoryTests(t, newStores) }

func TestOpenDatabase_Errors(t *testing.T) {
	_, err := OpenDatabase("mysql", "whatever")
	assert.ErrorContains(t, err, "unsupported database driver")

	_, err = OpenDatabase(DriverPostgres, "")
	assert.ErrorContains(t, err, "requires DATABASE_URL")
}

func TestLikeRepository_AuditFields(t *testing.T) {
	db := setupTestDB(t)
	fixed := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	likes := NewLikeRepository(db, WithClock(func() time.Time { return fixed }))

	_, err := likes.Toggle(context.Background(), 1, 2)
	require.NoError(t, err)

	var stored domain.Like
	require.NoError(t, db.First(&stored).Error)
	assert.Len(t, stored.ID, 36)
	assert.True(t, fixed.Equal(stored.CreatedAt))
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	return db, mock
}

func TestUserRepository_DriverErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("query failure is an error, not absence", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnError(errors.New("connection reset"))

		user, ok, err := NewUserRepository(db).FindByEmail(ctx, "alice@x.com")
		assert.Error(t, err)
		assert.False(t, ok)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result is absence", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}))

		user, ok, err := NewUserRepository(db).FindByUsername(ctx, "nobody")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("uniqueness check failure aborts create", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).WillReturnError(errors.New("timeout"))
		mock.ExpectRollback()

		u := &domain.User{Username: "Alice ", Email: "ALICE@x.com"}
		err := NewUserRepository(db).Create(ctx, u)
		assert.ErrorContains(t, err, "uniqueness")
		assert.NotErrorIs(t, err, domain.ErrDuplicateAccount)
		assert.Equal(t, domain.User{Username: "Alice ", Email: "ALICE@x.com"}, *u)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLikeRepository_DriverErrors(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	liked, err := NewLikeRepository(db).Toggle(context.Background(), 1, 1)
	assert.Error(t, err)
	assert.False(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}
