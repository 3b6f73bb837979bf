// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides secret generation and password hashing for the installer.

# Session Secret

The configuration artifact carries a session secret for the platform:

	secret, err := auth.GenerateSecret(auth.SessionSecretBytes)

Secrets come from crypto/rand and are hex encoded. Anything shorter than
SessionSecretBytes (256 bits) is refused.

# Admin Passwords

The seeded admin row stores a bcrypt hash, never the plaintext:

	hash, err := auth.HashPassword(pass)
	err = auth.CheckPassword(hash, pass)

Passwords over 72 bytes are rejected instead of being silently truncated.
*/
package auth
