// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// SessionSecretBytes is the size of the generated session secret (256 bits)
const SessionSecretBytes = 32

var (
	ErrEmptyPassword   = errors.New("password must not be empty")
	ErrInvalidPassword = errors.New("invalid password")
	ErrSecretTooShort  = errors.New("secret must be at least 32 bytes")
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)

// GenerateSecret creates a random hex secret of the specified byte length.
// byteLen must be at least SessionSecretBytes.
func GenerateSecret(byteLen int) (string, error) {
	if byteLen < SessionSecretBytes {
		return "", ErrSecretTooShort
	}
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// ValidatePassword reports whether HashPassword would accept password
func ValidatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	// bcrypt silently ignores anything past 72 bytes
	if len(password) > 72 {
		return ErrPasswordTooLong
	}
	return nil
}

// HashPassword hashes an admin password with bcrypt at the default cost
func HashPassword(password string) (string, error) {
	if err := ValidatePassword(password); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches a hash from HashPassword
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidPassword
	}
	return nil
}
