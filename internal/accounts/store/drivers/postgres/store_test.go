package postgres_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/postgres"
)

/*
 * These tests run against a real Postgres in a container. They are skipped
 * with -short or when no Docker provider is reachable.
 */

const (
	pgUser     = "accounts"
	pgPassword = "accounts"
	pgDatabase = "accounts"
)

// setupPostgres starts a throwaway Postgres container and returns a migrated store.
func setupPostgres(t *testing.T) *postgres.Store {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       pgDatabase,
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		pgUser, pgPassword, host, port.Port(), pgDatabase)

	st, err := postgres.NewStore(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func johnWick() domain.Account {
	return domain.Account{
		Username:     "johnwick",
		Email:        "john@continental.com",
		PasswordHash: "$argon2id$v=19$m=64,t=1,p=1$c2FsdA$aGFzaA",
	}
}

func TestPostgresStore(t *testing.T) {
	st := setupPostgres(t)
	ctx := context.Background()

	t.Run("migrations are idempotent", func(t *testing.T) {
		require.NoError(t, st.ApplyMigrations())
		version, dirty, err := st.MigrationVersion()
		require.NoError(t, err)
		require.False(t, dirty)
		require.Equal(t, uint(1), version)
	})

	t.Run("insert and find", func(t *testing.T) {
		created, err := st.Accounts().Insert(ctx, johnWick())
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		require.False(t, created.CreatedAt.IsZero())

		got, err := st.Accounts().FindByUsername(ctx, "johnwick")
		require.NoError(t, err)
		require.Equal(t, created.ID, got.ID)

		got, err = st.Accounts().FindByUsernameOrEmail(ctx, "nobody", "john@continental.com")
		require.NoError(t, err)
		require.Equal(t, created.ID, got.ID)

		_, err = st.Accounts().FindByUsername(ctx, "nobody")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unique violations map to ErrAlreadyExists", func(t *testing.T) {
		sameEmail := johnWick()
		sameEmail.Username = "babayaga"
		_, err := st.Accounts().Insert(ctx, sameEmail)
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		sameUsername := johnWick()
		sameUsername.Email = "other@continental.com"
		_, err = st.Accounts().Insert(ctx, sameUsername)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("rollback on error", func(t *testing.T) {
		acct := domain.Account{Username: "winston", Email: "winston@continental.com", PasswordHash: "x"}
		err := st.WithTx(ctx, func(tx store.Tx) error {
			if _, err := tx.Accounts().Insert(ctx, acct); err != nil {
				return err
			}
			return store.ErrAlreadyExists
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		_, err = st.Accounts().FindByUsername(ctx, "winston")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("concurrent inserts have a single winner", func(t *testing.T) {
		const workers = 8
		acct := domain.Account{Username: "charon", Email: "charon@continental.com", PasswordHash: "x"}

		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := st.Accounts().Insert(ctx, acct)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		ok := 0
		for err := range errs {
			if err == nil {
				ok++
				continue
			}
			require.ErrorIs(t, err, store.ErrAlreadyExists)
		}
		require.Equal(t, 1, ok)
	})

	t.Run("count", func(t *testing.T) {
		n, err := st.Accounts().Count(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, n)
	})
}
