// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// TokenTTL is the lifetime of a session token.
const TokenTTL = 10 * time.Hour

// Claims is the payload carried by a session token.
type Claims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Expires  int64  `json:"exp"`
}

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateSessionToken creates a signed bearer token for a user.
// The token is payload "." signature, both URL-safe base64 without
// padding; the signature is HMAC-SHA256 over the payload bytes.
func GenerateSessionToken(userID, username, secret string) (string, error) {
	claims := Claims{
		UserID:   userID,
		Username: username,
		Expires:  time.Now().Add(TokenTTL).Unix(),
	}

	payload, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to encode token claims: %w", err)
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + signPayload(encoded, secret), nil
}

// ValidateSessionToken verifies a token's signature and expiry and
// returns the embedded claims.
func ValidateSessionToken(token, secret string) (Claims, error) {
	encoded, sig, ok := strings.Cut(token, ".")
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	expected := signPayload(encoded, secret)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return Claims{}, ErrInvalidToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return Claims{}, ErrInvalidToken
	}
	if claims.UserID == "" {
		return Claims{}, ErrInvalidToken
	}
	if time.Now().Unix() >= claims.Expires {
		return Claims{}, ErrTokenExpired
	}

	return claims, nil
}

func signPayload(payload, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

// HashPassword hashes a password with a fresh random salt.
// The result is "salt$digest", both hex encoded.
func HashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate password salt: %w", err)
	}
	return hex.EncodeToString(salt) + "$" + digestPassword(password, salt), nil
}

// CheckPassword reports whether the password matches the stored hash.
func CheckPassword(password, stored string) bool {
	saltHex, digest, ok := strings.Cut(stored, "$")
	if !ok {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(digest), []byte(digestPassword(password, salt)))
}

func digestPassword(password string, salt []byte) string {
	h := hmac.New(sha256.New, salt)
	h.Write([]byte(password))
	return hex.EncodeToString(h.Sum(nil))
}
