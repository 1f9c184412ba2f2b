// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session tokens and password hashing.

# Session Tokens

Session tokens are a signed payload: URL-safe base64 JSON claims, a dot,
and an HMAC-SHA256 signature over the encoded claims:

	token, err := auth.GenerateSessionToken(userID, username, secret)
	claims, err := auth.ValidateSessionToken(token, secret)

Claims carry the user id, username, and a unix expiry (10 hours from
issue). Validation returns ErrInvalidToken for malformed or tampered
tokens and ErrTokenExpired once the expiry has passed.

# Password Hashing

Passwords are hashed with a per-user random 16-byte salt and
HMAC-SHA256, stored as "salt$digest" (hex):

	hash, err := auth.HashPassword(password)
	ok := auth.CheckPassword(password, hash)

Comparison is constant time.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
