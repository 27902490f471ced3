package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/aussiebroadwan/accounts/internal/accounts/store"
)

var errNestedTx = errors.New("postgres: nested transactions are not supported")

// txStore keeps the context the transaction was opened with, since the
// store.Tx Commit/Rollback signatures carry none.
type txStore struct {
	ctx context.Context
	tx  pgx.Tx
}

func newTx(ctx context.Context, tx pgx.Tx) *txStore {
	return &txStore{ctx: ctx, tx: tx}
}

func (t *txStore) Commit() error { return t.tx.Commit(t.ctx) }

// Rollback uses a context detached from cancellation so a cancelled request
// still releases its connection.
func (t *txStore) Rollback() error {
	err := t.tx.Rollback(context.WithoutCancel(t.ctx))
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return err
}

func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) { return nil, errNestedTx }

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return errNestedTx
}

func (t *txStore) Accounts() store.Accounts { return &accountsRepo{q: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil }
