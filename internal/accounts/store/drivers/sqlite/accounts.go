package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/pkg/idx"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type accountsRepo struct {
	db dbtx
}

const accountColumns = `id, username, email, password_hash, created_at`

const findAccountByUsernameOrEmail = `SELECT ` + accountColumns + `
FROM accounts
WHERE username = ? OR email = ?
LIMIT 1`

const findAccountByUsername = `SELECT ` + accountColumns + `
FROM accounts
WHERE username = ?`

const insertAccount = `INSERT INTO accounts (id, username, email, password_hash, created_at)
VALUES (?, ?, ?, ?, ?)`

const countAccounts = `SELECT COUNT(*) FROM accounts`

func (r *accountsRepo) FindByUsernameOrEmail(
	ctx context.Context,
	username, email string,
) (domain.Account, error) {
	return scanAccount(r.db.QueryRowContext(ctx, findAccountByUsernameOrEmail, username, email))
}

func (r *accountsRepo) FindByUsername(ctx context.Context, username string) (domain.Account, error) {
	return scanAccount(r.db.QueryRowContext(ctx, findAccountByUsername, username))
}

func (r *accountsRepo) Insert(ctx context.Context, a domain.Account) (domain.Account, error) {
	if a.ID == "" {
		a.ID = idx.New().String()
	}
	a.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	_, err := r.db.ExecContext(ctx, insertAccount,
		a.ID,
		a.Username,
		a.Email,
		a.PasswordHash,
		a.CreatedAt,
	)
	if err != nil {
		return domain.Account{}, mapConstraint(err)
	}
	return a, nil
}

func (r *accountsRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countAccounts).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanAccount(row *sql.Row) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}
