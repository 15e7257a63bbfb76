package utils

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Security answers are compared case-insensitively with surrounding
// whitespace ignored ("Fluffy", "fluffy" and " Fluffy " all verify).
func normalizeSecurityAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

func HashSecurityAnswer(answer string) (string, error) {
	return HashPassword(normalizeSecurityAnswer(answer))
}

func CheckSecurityAnswer(answer, hash string) bool {
	return CheckPasswordHash(normalizeSecurityAnswer(answer), hash)
}
