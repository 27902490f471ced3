package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/pkg/idx"
)

// querier is satisfied by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type accountsRepo struct {
	q querier
}

const accountColumns = `id, username, email, password_hash, created_at`

func (r *accountsRepo) FindByUsernameOrEmail(
	ctx context.Context,
	username, email string,
) (domain.Account, error) {
	q := `SELECT ` + accountColumns + ` FROM accounts WHERE username = $1 OR email = $2 LIMIT 1`
	return scanAccount(r.q.QueryRow(ctx, q, username, email))
}

func (r *accountsRepo) FindByUsername(ctx context.Context, username string) (domain.Account, error) {
	q := `SELECT ` + accountColumns + ` FROM accounts WHERE username = $1`
	return scanAccount(r.q.QueryRow(ctx, q, username))
}

func (r *accountsRepo) Insert(ctx context.Context, a domain.Account) (domain.Account, error) {
	if a.ID == "" {
		a.ID = idx.New().String()
	}

	q := `INSERT INTO accounts (id, username, email, password_hash) VALUES ($1, $2, $3, $4) RETURNING created_at`
	var createdAt time.Time
	err := r.q.QueryRow(ctx, q, a.ID, a.Username, a.Email, a.PasswordHash).Scan(&createdAt)
	if err != nil {
		return domain.Account{}, mapConstraint(err)
	}
	a.CreatedAt = createdAt.UTC()
	return a, nil
}

func (r *accountsRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanAccount(row pgx.Row) (domain.Account, error) {
	var a domain.Account
	if err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt); err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	a.CreatedAt = a.CreatedAt.UTC()
	return a, nil
}
