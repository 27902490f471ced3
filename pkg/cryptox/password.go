package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	// ErrMismatchedPassword is returned when a plaintext password does not
	// verify against an encoded hash.
	ErrMismatchedPassword = errors.New("password does not match")

	// ErrInvalidHash is returned when an encoded hash cannot be parsed.
	ErrInvalidHash = errors.New("invalid hash format")
)

// Params are the Argon2id cost parameters used when deriving new hashes.
// Verification always uses the parameters stored in the encoded hash.
type Params struct {
	Memory      uint32 // KiB
	Iterations  uint32
	Parallelism uint8
	KeyLength   uint32
	SaltLength  uint32
}

// Upper bounds accepted from a stored hash. A hash outside them is treated as
// corrupt rather than run, so one bad row cannot pin a login on a huge
// allocation.
const (
	MaxMemory      = 1 << 20 // KiB (1 GiB)
	MaxIterations  = 64
	MaxParallelism = 64
	MaxKeyLength   = 1024
	MaxSaltLength  = 1024
)

// DefaultParams follows the OWASP minimum for Argon2id (19 MiB, t=2, p=1).
func DefaultParams() Params {
	return Params{
		Memory:      19 * 1024,
		Iterations:  2,
		Parallelism: 1,
		KeyLength:   32,
		SaltLength:  16,
	}
}

// Hasher derives and verifies PHC-format Argon2id password hashes. The
// pepper is appended to every password before hashing and is never stored.
type Hasher struct {
	Params Params
	Pepper string
}

// NewHasher returns a Hasher, filling zero-valued params from DefaultParams.
func NewHasher(params Params, pepper string) *Hasher {
	def := DefaultParams()
	if params.Memory == 0 {
		params.Memory = def.Memory
	}
	if params.Iterations == 0 {
		params.Iterations = def.Iterations
	}
	if params.Parallelism == 0 {
		params.Parallelism = def.Parallelism
	}
	if params.KeyLength == 0 {
		params.KeyLength = def.KeyLength
	}
	if params.SaltLength == 0 {
		params.SaltLength = def.SaltLength
	}
	return &Hasher{Params: params, Pepper: pepper}
}

// Hash generates a PHC-format Argon2id hash string including a fresh random
// salt and the cost parameters.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.Params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("cryptox: read salt: %w", err)
	}

	key := argon2.IDKey(
		[]byte(password+h.Pepper),
		salt,
		h.Params.Iterations,
		h.Params.Memory,
		h.Params.Parallelism,
		h.Params.KeyLength,
	)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.Params.Memory,
		h.Params.Iterations,
		h.Params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify compares a plaintext password against a PHC-format Argon2id hash.
// It returns nil on a match, ErrMismatchedPassword on a mismatch, and an
// error wrapping ErrInvalidHash when encodedHash is malformed.
func (h *Hasher) Verify(password, encodedHash string) error {
	// ["", "argon2id", "v=19", "m=X,t=Y,p=Z", "salt", "hash"]
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return fmt.Errorf("%w: expected 6 parts", ErrInvalidHash)
	}
	if parts[1] != "argon2id" {
		return fmt.Errorf("%w: not argon2id", ErrInvalidHash)
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return fmt.Errorf("%w: wrong version", ErrInvalidHash)
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("%w: parameters: %w", ErrInvalidHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("%w: salt: %w", ErrInvalidHash, err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("%w: key: %w", ErrInvalidHash, err)
	}

	if err := checkStored(mem, iters, par, salt, expected); err != nil {
		return err
	}

	computed := argon2.IDKey(
		[]byte(password+h.Pepper),
		salt,
		iters,
		mem,
		par,
		uint32(len(expected)), // #nosec G115 - key length is tiny
	)

	if subtle.ConstantTimeCompare(computed, expected) == 1 {
		return nil
	}
	return ErrMismatchedPassword
}

// checkStored rejects parameters argon2.IDKey would panic on or that exceed
// the accepted bounds.
func checkStored(mem, iters uint32, par uint8, salt, key []byte) error {
	switch {
	case iters < 1 || iters > MaxIterations:
		return fmt.Errorf("%w: iterations %d out of range", ErrInvalidHash, iters)
	case par < 1 || par > MaxParallelism:
		return fmt.Errorf("%w: parallelism %d out of range", ErrInvalidHash, par)
	case mem < 8*uint32(par) || mem > MaxMemory:
		return fmt.Errorf("%w: memory %d out of range", ErrInvalidHash, mem)
	case len(salt) == 0 || len(salt) > MaxSaltLength:
		return fmt.Errorf("%w: salt length %d out of range", ErrInvalidHash, len(salt))
	case len(key) == 0 || len(key) > MaxKeyLength:
		return fmt.Errorf("%w: key length %d out of range", ErrInvalidHash, len(key))
	}
	return nil
}
