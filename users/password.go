package users

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// PasswordHasher hashes and verifies plaintext passwords. The digest format
// is opaque to the rest of the system.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(password string, digest string) bool
}

func NewPasswordHasher() PasswordHasher {
	return &bcryptHasher{}
}

type bcryptHasher struct{}

var _ PasswordHasher = &bcryptHasher{}

func (h *bcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h *bcryptHasher) Compare(password string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// IsStrongPassword requires at least 8 characters with upper, lower, number
// and special character.
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSpecial
}
