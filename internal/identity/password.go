package identity

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost matches the work factor used for existing digests.
const DefaultBcryptCost = 10

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string, cost int) (string, error) {
	if len(password) == 0 {
		return "", errors.New("identity: password is empty")
	}
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashing, err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored digest.
// A malformed digest is a mismatch, not a panic.
func VerifyPassword(digest, password string) error {
	if digest == "" {
		return errors.New("identity: password digest is empty")
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
}
