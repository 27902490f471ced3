package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Repositories hang off the Store (or a Tx) so a caller inside
// a transaction can only reach the transaction-scoped ones.
type Store interface {
	Accounts() Accounts

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error (or
	// panics) the transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// FindByUsernameOrEmail returns any account whose username equals
	// username OR whose email equals email.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (domain.Account, error)

	// FindByUsername returns the account with exactly this username.
	FindByUsername(ctx context.Context, username string) (domain.Account, error)

	// Insert persists a new account, assigning its ID and CreatedAt. A
	// username or email already claimed by another row yields ErrAlreadyExists.
	Insert(ctx context.Context, a domain.Account) (domain.Account, error)

	// Count returns the number of stored accounts.
	Count(ctx context.Context) (int, error)
}
