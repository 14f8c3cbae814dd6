// Package password hashes and verifies buyer passwords with bcrypt.
package password

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const redacted = "[REDACTED]"

// MaxBytes is the longest password bcrypt accepts.
const MaxBytes = 72

var (
	// ErrEmptyPassword is returned when hashing an empty password.
	ErrEmptyPassword = errors.New("password cannot be empty")
	// ErrTooLong is returned when a password exceeds MaxBytes.
	ErrTooLong = errors.New("password exceeds 72 bytes")
	// ErrCorruptCredential is returned when a stored hash cannot be parsed.
	ErrCorruptCredential = errors.New("stored password hash is malformed")
)

// Secret holds a password hash. It never renders its value through fmt, json or zap.
type Secret string

func (s Secret) String() string   { return redacted }
func (s Secret) GoString() string { return redacted }

func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

func (s Secret) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

type Hasher interface {
	Hash(plain string) (Secret, error)
	// Verify returns (false, nil) on mismatch and ErrCorruptCredential when hash is unusable.
	Verify(plain string, hash Secret) (bool, error)
	// Unusable returns a hash no caller knows the password for.
	Unusable() (Secret, error)
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a Hasher with the given cost; out of range costs fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(plain string) (Secret, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	if len(plain) > MaxBytes {
		return "", ErrTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt generate: %w", err)
	}
	return Secret(hashed), nil
}

func (h *bcryptHasher) Verify(plain string, hash Secret) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrCorruptCredential, err)
	}
}

func (h *bcryptHasher) Unusable() (Secret, error) {
	return h.Hash(uuid.NewString())
}
