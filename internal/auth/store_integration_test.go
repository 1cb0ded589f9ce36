package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newIntegrationStore spins up a disposable Postgres container and returns a
// migrated store backed by it. Skipped in -short runs.
func newIntegrationStore(t *testing.T) *UserStore {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping user store integration test in short mode")
	}

	ctx := context.Background()
	ctr, err := pgcontainer.Run(ctx, "postgres:16-alpine",
		pgcontainer.WithDatabase("semcat_test"),
		pgcontainer.WithUsername("semcat"),
		pgcontainer.WithPassword("semcat"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, ctr.Terminate(context.Background()))
	})

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}))

	store := NewUserStoreFromDB(db)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestUserStore_RegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	store := newIntegrationStore(t)

	require.NoError(t, store.Register(ctx, "alice", "s3cret"))

	assert.NoError(t, store.Authenticate(ctx, "alice", "s3cret"))
	assert.ErrorIs(t, store.Authenticate(ctx, "alice", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, store.Authenticate(ctx, "nobody", "s3cret"), ErrInvalidCredentials)
}

func TestUserStore_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	store := newIntegrationStore(t)

	require.NoError(t, store.Register(ctx, "alice", "s3cret"))
	assert.ErrorIs(t, store.Register(ctx, "alice", "other"), ErrUserExists)
}

func TestUserStore_PasswordsAreHashed(t *testing.T) {
	ctx := context.Background()
	store := newIntegrationStore(t)

	require.NoError(t, store.Register(ctx, "alice", "s3cret"))

	var user User
	require.NoError(t, store.db.WithContext(ctx).Where("username = ?", "alice").First(&user).Error)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "s3cret")
}
