package service

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword rechaza contraseñas vacías antes de derivar el digest.
var ErrEmptyPassword = errors.New("empty password")

// PasswordHasher deriva y verifica digests bcrypt.
// Cada digest lleva su propia sal, dos llamadas sobre el mismo texto difieren.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher crea un hasher con el costo dado; fuera de rango usa el default.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	if strings.TrimSpace(plaintext) == "" {
		return "", ErrEmptyPassword
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify compara en tiempo constante. Un digest corrupto cuenta como fallo
// de verificación, nunca como pánico.
func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
