package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// ValidatePassword checks a candidate password against the account
// password policy. It returns a human-readable reason when the password
// is rejected.
func ValidatePassword(password string) (string, bool) {
	if len([]rune(password)) < 8 {
		return "Password must be at least 8 characters long", false
	}

	allDigits := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return "Password cannot be entirely numeric", false
	}

	return "", true
}

// HashPassword hashes a password with bcrypt at the default cost
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a bcrypt hash with a candidate password
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
