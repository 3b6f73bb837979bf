// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateSecret(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"session secret", SessionSecretBytes, 64},
		{"48 bytes", 48, 96},
		{"64 bytes", 64, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret, err := GenerateSecret(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateSecret() error = %v", err)
			}
			if len(secret) != tt.wantLen {
				t.Errorf("GenerateSecret() length = %d, want %d", len(secret), tt.wantLen)
			}
			// Verify it's valid hex
			for _, c := range secret {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateSecret() contains invalid hex char: %c", c)
				}
			}
		})
	}

	// Test randomness - two secrets should be different
	s1, _ := GenerateSecret(SessionSecretBytes)
	s2, _ := GenerateSecret(SessionSecretBytes)
	if s1 == s2 {
		t.Error("GenerateSecret() produced duplicate secrets (extremely unlikely)")
	}
}

func TestGenerateSecretTooShort(t *testing.T) {
	_, err := GenerateSecret(16)
	if !errors.Is(err, ErrSecretTooShort) {
		t.Errorf("expected ErrSecretTooShort, got %v", err)
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "correct horse battery staple" {
		t.Error("HashPassword() returned the plaintext")
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("expected bcrypt hash, got %q", hash)
	}

	if err := CheckPassword(hash, "correct horse battery staple"); err != nil {
		t.Errorf("CheckPassword() rejected the right password: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}

	// Salted: same input, different hash
	hash2, _ := HashPassword("correct horse battery staple")
	if hash == hash2 {
		t.Error("HashPassword() is not salted")
	}
}

func TestHashPasswordRejects(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     error
	}{
		{"empty", "", ErrEmptyPassword},
		{"too long", strings.Repeat("x", 73), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HashPassword(tt.password)
			if !errors.Is(err, tt.want) {
				t.Errorf("HashPassword() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     error
	}{
		{"empty", "", ErrEmptyPassword},
		{"too long", strings.Repeat("x", 73), ErrPasswordTooLong},
		{"at limit", strings.Repeat("x", 72), nil},
		{"spaces only", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidatePassword(tt.password); !errors.Is(err, tt.want) {
				t.Errorf("ValidatePassword() error = %v, want %v", err, tt.want)
			}
		})
	}
}
