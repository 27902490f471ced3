package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

var errHashing = errors.New("hash password")

// CredentialService validates registrations, enforces account uniqueness and
// authenticates logins. It keeps no state between requests.
type CredentialService struct {
	Store     store.Store
	Hasher    *cryptox.Hasher
	Validator *validator.Validate
}

func NewCredentialService(st store.Store, hasher *cryptox.Hasher) *CredentialService {
	return &CredentialService{
		Store:     st,
		Hasher:    hasher,
		Validator: NewValidator(),
	}
}

// Register creates a new account. It performs the following steps:
// 1. Validates that every field is present and the email is shaped correctly
// 2. Looks for an existing account with the same username or email
// 3. Hashes the password with Argon2id
// 4. Inserts the account
// Steps 2-4 share one transaction, and a unique-constraint hit on insert is
// reported as ErrConflict just like a hit on the lookup.
func (s *CredentialService) Register(ctx context.Context, in RegisterInput) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	if err := s.Validator.Struct(in); err != nil {
		err = classify(err, ErrMissingFields)
		log.Warn("registration rejected", slog.Any("reason", err))
		return domain.Account{}, err
	}

	var created domain.Account
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 2. Check uniqueness
		_, err := tx.Accounts().FindByUsernameOrEmail(ctx, in.Username, in.Email)
		if err == nil {
			return ErrConflict
		}
		if !errors.Is(err, store.ErrNotFound) {
			return storeErr("lookup account", err)
		}

		// 3. Hash the password
		hash, err := s.Hasher.Hash(in.Password)
		if err != nil {
			return fmt.Errorf("%w: %w", errHashing, err)
		}

		// 4. Insert
		created, err = tx.Accounts().Insert(ctx, domain.Account{
			Username:     in.Username,
			Email:        in.Email,
			PasswordHash: hash,
		})
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrConflict
		}
		if err != nil {
			return storeErr("insert account", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrConflict) {
			log.Warn("registration conflict", slog.String("username", in.Username))
			return domain.Account{}, ErrConflict
		}
		if !errors.Is(err, errHashing) {
			err = storeErr("register", err)
		}
		log.Error("registration failed", slog.Any("error", err))
		return domain.Account{}, err
	}

	log.Info("account registered",
		slog.String("account_id", created.ID),
		slog.String("username", created.Username),
	)
	return created, nil
}

// Login authenticates a username/password pair. An unknown username and a
// wrong password both yield ErrUnauthorized.
func (s *CredentialService) Login(ctx context.Context, in LoginInput) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	if err := s.Validator.Struct(in); err != nil {
		return domain.Account{}, classify(err, ErrMissingCredentials)
	}

	acct, err := s.Store.Accounts().FindByUsername(ctx, in.Username)
	if errors.Is(err, store.ErrNotFound) {
		log.Debug("login for unknown username")
		return domain.Account{}, ErrUnauthorized
	}
	if err != nil {
		err = storeErr("lookup account", err)
		log.Error("login failed", slog.Any("error", err))
		return domain.Account{}, err
	}

	if err := s.Hasher.Verify(in.Password, acct.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrMismatchedPassword) {
			log.Error("stored password hash unreadable",
				slog.String("account_id", acct.ID),
				slog.Any("error", err),
			)
		}
		return domain.Account{}, ErrUnauthorized
	}

	log.Info("login succeeded", slog.String("account_id", acct.ID))
	return acct, nil
}
