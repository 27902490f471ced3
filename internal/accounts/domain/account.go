package domain

import "time"

// Account is one registered user. Username and Email are each unique across
// all accounts and never change after registration.
type Account struct {
	ID           string // ULID assigned by the store on insert
	Username     string
	Email        string
	PasswordHash string // argon2id PHC string
	CreatedAt    time.Time
}
